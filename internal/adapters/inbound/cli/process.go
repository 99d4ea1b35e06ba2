package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appconfig "github.com/billcraft/billcraft/internal/adapters/outbound/config"
	"github.com/billcraft/billcraft/internal/adapters/outbound/notify"
	"github.com/billcraft/billcraft/internal/adapters/outbound/render"
	"github.com/billcraft/billcraft/internal/application"
	"github.com/billcraft/billcraft/internal/domain"
)

func newProcessCmd() *cobra.Command {
	var (
		jurisdiction string
		channel      string
	)

	cmd := &cobra.Command{
		Use:   "process <customer> <amount>",
		Short: "Compute tax and total, then notify the customer",
		Long:  "Run the full billing pipeline: calculate tax for the chosen jurisdiction, add it to the amount, and send the total over the chosen notification channel.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := invoiceFromArgs(args)
			if err != nil {
				return err
			}

			var loader domain.ConfigLoader = appconfig.New()
			cfg, err := loader.Load(".")
			if err != nil {
				return err
			}
			if jurisdiction == "" {
				jurisdiction = cfg.Jurisdiction
			}
			if channel == "" {
				channel = cfg.Channel
			}

			policy, err := domain.PolicyFor(jurisdiction)
			if err != nil {
				return err
			}
			notifier, err := notify.For(channel, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			svc := application.NewInvoiceService(policy, notifier)
			receipt, err := svc.Process(inv)
			if err != nil {
				return fmt.Errorf("processing invoice: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Receipt(receipt))
			return nil
		},
	}

	cmd.Flags().StringVar(&jurisdiction, "jurisdiction", "", "Tax jurisdiction: IN or SG (defaults to config)")
	cmd.Flags().StringVar(&channel, "channel", "", "Notification channel: email or sms (defaults to config)")

	return cmd
}
