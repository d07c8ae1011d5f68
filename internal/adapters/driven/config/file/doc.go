// Package file provides the TOML file implementation of driven.ConfigStore.
//
// The file lives at <config dir>/config.toml (default ~/.issuefeed):
//
//	[server]
//	addr = ":8000"
//	rate = 5.0
//	burst = 10
//
//	[upstream]
//	timeout = "20s"
//
//	[hosts.codeberg]
//	family = "gitea"
//	api_host = "codeberg.org"
//	git_host = "codeberg.org"
//
// Nested tables are flattened into dot-separated keys. Watch reloads the
// file whenever it changes on disk.
package file
