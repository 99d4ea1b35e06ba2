package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/billcraft/billcraft/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the Billcraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start Billcraft MCP server (stdio)",
		Long:  "Start the Billcraft MCP server using stdio transport, exposing invoice rendering, tax quoting and processing as tools.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewBillcraftMCPServer()
			return server.ServeStdio(s)
		},
	}
}
