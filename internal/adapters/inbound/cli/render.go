package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billcraft/billcraft/internal/adapters/outbound/render"
)

func newRenderCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "render <customer> <amount>",
		Short: "Print an invoice to the terminal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := invoiceFromArgs(args)
			if err != nil {
				return err
			}
			if plain {
				fmt.Fprint(cmd.OutOrStdout(), render.Text(inv))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Invoice(inv))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print the raw two-line summary")

	return cmd
}
