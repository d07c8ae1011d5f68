package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issuefeed/internal/adapters/driving/web"
	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/logger"
)

// configWatcher is implemented by config stores that can reload on change.
type configWatcher interface {
	Watch(ctx context.Context, onReload func(error)) error
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve feeds over HTTP",
	Long: `Start the HTTP feed endpoint.

Every GET request is a feed request described by its query parameters:

  repo          repository path as owner/name (required)
  host_type     github, gitea, forgejo or a configured host (required)
  since         ISO-8601 timestamp (default 48 hours ago)
  page, limit   pagination (default 1 and 50, limit at most 100)
  title         feed title
  pretty        indent the document
  api_host, git_host, api_issues, api_comments
                override the endpoints of the host type

Examples:
  issuefeed serve
  issuefeed serve --addr 127.0.0.1:9000 --rate 2 --burst 5 --watch

  curl 'http://localhost:8000/?repo=golang/go&host_type=github'`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :8000, config server.addr)")
	serveCmd.Flags().Float64("rate", 0, "Inbound requests per second, 0 = unlimited (config server.rate)")
	serveCmd.Flags().Int("burst", 1, "Inbound request burst (config server.burst)")
	serveCmd.Flags().Bool("watch", false, "Reload the config file when it changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if feedService == nil || hostRegistry == nil {
		return fmt.Errorf("feed service: %w", domain.ErrMissingService)
	}

	addr := stringSetting(cmd, "addr", configKeyServerAddr, web.DefaultAddr)

	rate, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}
	if !cmd.Flags().Changed("rate") && configStore != nil {
		rate = configStore.GetFloat(configKeyServerRate)
	}

	burst, err := cmd.Flags().GetInt("burst")
	if err != nil {
		return fmt.Errorf("getting burst flag: %w", err)
	}
	if !cmd.Flags().Changed("burst") && configStore != nil && configStore.GetInt(configKeyServerBurst) > 0 {
		burst = configStore.GetInt(configKeyServerBurst)
	}

	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.SetTimestamps(true)
	defer logger.SetTimestamps(false)

	if watch {
		watcher, ok := configStore.(configWatcher)
		if !ok {
			return errors.New("config store does not support --watch")
		}
		if err := watcher.Watch(ctx, nil); err != nil {
			return fmt.Errorf("failed to watch config: %w", err)
		}
		logger.Info("Watching %s", configStore.Path())
	}

	if rate > 0 {
		logger.Info("Limiting inbound requests to %.2f/s (burst %d)", rate, burst)
	}

	server := web.NewServer(feedService, hostRegistry, web.WithRateLimit(rate, burst))
	fmt.Fprintf(cmd.OutOrStdout(), "Serving feeds on %s\n", addr)
	return server.Run(ctx, addr)
}

// stringSetting returns the flag value when given, else the config value,
// else def.
func stringSetting(cmd *cobra.Command, flag, key, def string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if configStore != nil {
		if v := configStore.GetString(key); v != "" {
			return v
		}
	}
	return def
}
