package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/services"
)

var feedCmd = &cobra.Command{
	Use:   "feed <owner/repo>",
	Short: "Print the Atom feed of a repository",
	Long: `Fetch recently updated issues and comments of a repository and print
them as an Atom feed.

The document is indented when standard output is a terminal; use
--pretty=false or --pretty to force either form.

Examples:
  issuefeed feed golang/go
  issuefeed feed forgejo/forgejo --host-type forgejo --since 2024-01-01T00:00:00Z
  issuefeed feed octo/hello --api-host ghe.example.com/api/v3 --git-host ghe.example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runFeed,
}

func init() {
	feedCmd.Flags().String("host-type", domain.HostTypeGitHub, "Host type (see 'issuefeed hosts')")
	feedCmd.Flags().String("since", "", "Only include activity after this ISO-8601 timestamp (default 48h ago)")
	feedCmd.Flags().String("title", "", "Feed title (default '<repo> issue updates')")
	feedCmd.Flags().Int("page", domain.DefaultPage, "Page number")
	feedCmd.Flags().IntP("limit", "n", domain.DefaultLimit, "Items per page and resource (max 100)")
	feedCmd.Flags().Bool("pretty", false, "Indent the document (default when stdout is a terminal)")
	feedCmd.Flags().String("api-host", "", "Override the API host")
	feedCmd.Flags().String("git-host", "", "Override the web host")
	feedCmd.Flags().String("api-issues", "", "Override the issues path template ({repo} is replaced)")
	feedCmd.Flags().String("api-comments", "", "Override the comments path template ({repo} is replaced)")
	rootCmd.AddCommand(feedCmd)
}

func runFeed(cmd *cobra.Command, args []string) error {
	if feedService == nil || hostRegistry == nil {
		return fmt.Errorf("feed service: %w", domain.ErrMissingService)
	}

	flags := cmd.Flags()
	hostType, _ := flags.GetString("host-type")
	since, _ := flags.GetString("since")
	title, _ := flags.GetString("title")
	page, _ := flags.GetInt("page")
	limit, _ := flags.GetInt("limit")
	apiHost, _ := flags.GetString("api-host")
	gitHost, _ := flags.GetString("git-host")
	apiIssues, _ := flags.GetString("api-issues")
	apiComments, _ := flags.GetString("api-comments")

	pretty := isTerminal(cmd)
	if flags.Changed("pretty") {
		pretty, _ = flags.GetBool("pretty")
	}

	req, err := services.BuildFeedRequest(hostRegistry, domain.FeedParams{
		Repo:     args[0],
		HostType: hostType,
		Since:    since,
		Title:    title,
		Pretty:   pretty,
		Page:     page,
		Limit:    limit,
		Overrides: domain.HostOverrides{
			APIHost:      apiHost,
			GitHost:      gitHost,
			IssuesPath:   apiIssues,
			CommentsPath: apiComments,
		},
	}, time.Now())
	if err != nil {
		return err
	}

	body, err := feedService.Render(cmd.Context(), req)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(body)
	return err
}

// isTerminal reports whether the command writes to a terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
