package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/nfcfactory/internal/wire"
)

var scanCmd = &cobra.Command{
	Use:     "scan [barcode...]",
	Aliases: []string{"split"},
	Short:   "Split barcodes into prefix, number and suffix",
	Long: `Split each barcode into the prefix, number and suffix used to fill
the write form, and show the ID that would be written next.

Examples:
  nfcfactory scan E1645X489
  nfcfactory split ETF0099 P-44`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetInt("format")

		adapter, err := wire.TagAdapterWithOutput(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		_, err = adapter.Scan(cmd.Context(), format, args)
		return err
	},
}

func init() {
	scanCmd.Flags().IntP("format", "f", -1, "Barcode symbology reported by the scanner")
}

// ScanCmd returns the scan command
func ScanCmd() *cobra.Command {
	return scanCmd
}
