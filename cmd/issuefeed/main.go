// Command issuefeed serves Atom feeds of Git forge issue activity.
package main

import (
	"context"
	"os"

	"github.com/custodia-labs/issuefeed/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
