// Package cli implements the issuefeed command line.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issuefeed/internal/adapters/driven/config/file"
	"github.com/custodia-labs/issuefeed/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/issuefeed/internal/connectors/forge"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driven"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driving"
	"github.com/custodia-labs/issuefeed/internal/core/services"
	"github.com/custodia-labs/issuefeed/internal/logger"
)

// Config keys read by the commands.
const (
	configKeyTimeout     = "upstream.timeout"
	configKeyServerAddr  = "server.addr"
	configKeyServerRate  = "server.rate"
	configKeyServerBurst = "server.burst"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Services used by the commands. They are built on first use so tests can
// inject mocks beforehand.
var (
	configStore  driven.ConfigStore
	feedService  driving.FeedService
	hostRegistry driving.HostRegistry
)

var (
	verboseFlag bool
	configDir   string
	noConfig    bool
	timeoutFlag time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "issuefeed",
	Short: "Atom feeds of Git forge issue activity",
	Long: `issuefeed turns the issues and comments of a GitHub, Gitea or Forgejo
repository into an Atom feed.

Run "issuefeed serve" to answer feed readers over HTTP, or
"issuefeed feed owner/repo" to print a single feed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Config directory (default ~/.issuefeed)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "Ignore the config file and use built-in defaults")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", forge.DefaultTimeout, "Upstream request timeout")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// initServices wires the services that were not injected.
func initServices(cmd *cobra.Command) error {
	if configStore == nil && noConfig {
		configStore = memory.NewConfigStore()
		logger.Debug("Config file disabled")
	}

	if configStore == nil {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		configStore = store
		logger.Debug("Config file: %s", store.Path())
	}

	if hostRegistry == nil {
		hostRegistry = services.NewHostRegistry(configStore)
	}

	if feedService == nil {
		timeout, err := upstreamTimeout(cmd)
		if err != nil {
			return err
		}
		aggregator := services.NewAggregator(forge.NewFactory(timeout))
		feedService = services.NewFeedService(aggregator, version)
	}

	return nil
}

// upstreamTimeout returns --timeout when given, else the config value,
// else the default.
func upstreamTimeout(cmd *cobra.Command) (time.Duration, error) {
	if cmd.Root().PersistentFlags().Changed("timeout") {
		return timeoutFlag, nil
	}
	raw := configStore.GetString(configKeyTimeout)
	if raw == "" {
		return forge.DefaultTimeout, nil
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", configKeyTimeout, raw, err)
	}
	return timeout, nil
}
