package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/billcraft/billcraft/internal/adapters/outbound/notify"
	"github.com/billcraft/billcraft/internal/adapters/outbound/render"
	"github.com/billcraft/billcraft/internal/application"
	"github.com/billcraft/billcraft/internal/domain"
)

// registerTools registers all Billcraft MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. billcraft_render
	s.AddTool(
		mcplib.NewTool("billcraft_render",
			mcplib.WithDescription("Render an invoice as its canonical two-line text summary"),
			mcplib.WithString("customer", mcplib.Required(), mcplib.Description("Customer the invoice is addressed to")),
			mcplib.WithNumber("amount", mcplib.Required(), mcplib.Description("Invoice amount, non-negative")),
		),
		handleRender(),
	)

	// 2. billcraft_quote
	s.AddTool(
		mcplib.NewTool("billcraft_quote",
			mcplib.WithDescription("Compute tax and total for an invoice without notifying anyone. Returns JSON."),
			mcplib.WithString("customer", mcplib.Required(), mcplib.Description("Customer the invoice is addressed to")),
			mcplib.WithNumber("amount", mcplib.Required(), mcplib.Description("Invoice amount, non-negative")),
			mcplib.WithString("jurisdiction", mcplib.Description("Tax jurisdiction: IN or SG (default IN)")),
		),
		handleQuote(),
	)

	// 3. billcraft_process
	s.AddTool(
		mcplib.NewTool("billcraft_process",
			mcplib.WithDescription("Run the full billing pipeline: tax, total, and a simulated notification. Returns JSON with the delivery transcript."),
			mcplib.WithString("customer", mcplib.Required(), mcplib.Description("Customer the invoice is addressed to")),
			mcplib.WithNumber("amount", mcplib.Required(), mcplib.Description("Invoice amount, non-negative")),
			mcplib.WithString("jurisdiction", mcplib.Description("Tax jurisdiction: IN or SG (default IN)")),
			mcplib.WithString("channel", mcplib.Description("Notification channel: email or sms (default email)")),
		),
		handleProcess(),
	)
}

func invoiceFromRequest(request mcplib.CallToolRequest) (domain.Invoice, error) {
	customer, err := request.RequireString("customer")
	if err != nil {
		return domain.Invoice{}, err
	}
	amount, err := request.RequireFloat("amount")
	if err != nil {
		return domain.Invoice{}, err
	}
	return domain.NewInvoice(customer, amount)
}

func handleRender() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		inv, err := invoiceFromRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult(render.Text(inv)), nil
	}
}

func handleQuote() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		inv, err := invoiceFromRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		policy, err := domain.PolicyFor(request.GetString("jurisdiction", domain.JurisdictionIN))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		tax := policy.CalculateTax(inv.Amount)
		receipt := domain.Receipt{Invoice: inv, Tax: tax, Total: inv.Amount + tax}
		return jsonResult(receipt)
	}
}

func handleProcess() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		inv, err := invoiceFromRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		policy, err := domain.PolicyFor(request.GetString("jurisdiction", domain.JurisdictionIN))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		deliveries := new(bytes.Buffer)
		notifier, err := notify.For(request.GetString("channel", domain.ChannelEmail), deliveries)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewInvoiceService(policy, notifier)
		receipt, err := svc.Process(inv)
		if err != nil {
			return errorResult(fmt.Sprintf("processing failed: %v", err)), nil
		}

		return jsonResult(struct {
			domain.Receipt
			Delivery string `json:"delivery"`
		}{Receipt: receipt, Delivery: deliveries.String()})
	}
}

// jsonResult marshals v as indented JSON tool output.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
