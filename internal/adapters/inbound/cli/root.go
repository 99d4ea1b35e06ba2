package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/billcraft/billcraft/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "billcraft",
		Short:         "Small-shop invoicing from the terminal",
		Long:          "Billcraft renders, files and processes customer invoices with pluggable tax jurisdictions and notification channels.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newSaveCmd())
	cmd.AddCommand(newProcessCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// invoiceFromArgs builds a validated invoice from <customer> <amount>
// positional arguments.
func invoiceFromArgs(args []string) (domain.Invoice, error) {
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("parsing amount %q: %w", args[1], err)
	}
	return domain.NewInvoice(args[0], amount)
}
