package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appconfig "github.com/billcraft/billcraft/internal/adapters/outbound/config"
	"github.com/billcraft/billcraft/internal/adapters/outbound/filestore"
	"github.com/billcraft/billcraft/internal/adapters/outbound/ledger"
	"github.com/billcraft/billcraft/internal/application"
	"github.com/billcraft/billcraft/internal/domain"
)

func newSaveCmd() *cobra.Command {
	var (
		outDir   string
		toLedger bool
	)

	cmd := &cobra.Command{
		Use:   "save <customer> <amount>",
		Short: "Write an invoice to a flat text file",
		Long:  "Write the invoice's two-line summary to <customer>_invoice.txt, optionally archiving it in the git-backed ledger.",
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
			if outDir == "" {
				outDir = cfg.OutputDir
			}

			var archive domain.InvoiceArchive
			if toLedger || cfg.Ledger.Enabled {
				archive = ledger.New(cfg.Ledger.Path)
			}

			svc := application.NewFilingService(filestore.New(outDir), archive)
			path, err := svc.File(inv)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			if archive != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "archived to %s\n", cfg.Ledger.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (defaults to config output_dir)")
	cmd.Flags().BoolVar(&toLedger, "ledger", false, "Also archive the invoice in the ledger")

	return cmd
}
