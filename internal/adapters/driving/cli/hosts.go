package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A"))
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List host types",
	Long: `List the host types usable as host_type, with their endpoints.

Built-in types are github, gitea and forgejo. More can be added in the
config file:

  [hosts.internal]
  family = "gitea"
  api_host = "git.example.com"
  git_host = "git.example.com"`,
	RunE: runHosts,
}

func init() {
	rootCmd.AddCommand(hostsCmd)
}

func runHosts(cmd *cobra.Command, _ []string) error {
	if hostRegistry == nil {
		return fmt.Errorf("host registry: %w", domain.ErrMissingService)
	}

	profiles := hostRegistry.Profiles()
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.Name, p.Family.String(), p.APIHost, p.GitHost, p.IssuesPath, p.CommentsPath,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("NAME", "FAMILY", "API HOST", "GIT HOST", "ISSUES PATH", "COMMENTS PATH").
		Rows(rows...)

	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
