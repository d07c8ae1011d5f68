package cli

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issuefeed/internal/adapters/driving/mcp"
)

const configKeyMCPPort = "mcp.port"

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose feeds to MCP clients",
	Long: `Expose issue updates to MCP clients.

Tools:
  issue_updates   entries of one page as structured output
  issue_feed      the same page rendered as an Atom document

Resources:
  issuefeed://hosts          every usable host type
  issuefeed://hosts/{name}   one host profile

The server speaks JSON-RPC over stdio unless a port is given with --port
or the mcp.port config key, in which case it serves the streamable HTTP
transport on that port.

Examples:
  issuefeed mcp serve
  issuefeed mcp serve --port 8081`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "Serve HTTP on this port instead of stdio (config mcp.port)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := mcpPort(cmd)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Feed: feedService, Hosts: hostRegistry})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if port == 0 {
		return server.Run(ctx)
	}
	addr := net.JoinHostPort("", strconv.Itoa(port))
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
	return server.RunHTTP(ctx, addr)
}

// mcpPort returns --port when given, else mcp.port, else 0 for stdio.
func mcpPort(cmd *cobra.Command) (int, error) {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return 0, fmt.Errorf("getting port flag: %w", err)
	}
	if !cmd.Flags().Changed("port") && configStore != nil {
		port = configStore.GetInt(configKeyMCPPort)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("invalid MCP port %d", port)
	}
	return port, nil
}
