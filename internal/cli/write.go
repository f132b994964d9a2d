package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/nfcfactory/internal/core/writeform"
	"github.com/example/nfcfactory/internal/wire"
)

var writeCmd = &cobra.Command{
	Use:   "write [id]",
	Short: "Write sequential equipment IDs to tags",
	Long: `Write an equipment ID to each tag file given with --tag, in order.

After every successful write the number part of the ID is increased by one,
so a stack of blank tags receives consecutive IDs. A failed write keeps the
number for the next tag.

The starting ID is either a single argument, split into prefix, number and
suffix like a scanned barcode, or given field by field with --prefix,
--number and --suffix.

Examples:
  nfcfactory write E1645X --tag a.yaml --tag b.yaml
  nfcfactory write --prefix ETF --number 0099 --tag a.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, _ := cmd.Flags().GetStringArray("tag")
		limit, _ := cmd.Flags().GetInt("limit")

		if len(tags) == 0 {
			return fmt.Errorf("at least one --tag is required")
		}

		form, err := writeFormFromArgs(cmd, args)
		if err != nil {
			return err
		}

		adapter, err := wire.TagAdapterWithOutput(cmd.OutOrStdout(), tags...)
		if err != nil {
			return err
		}

		summary, err := adapter.Write(cmd.Context(), form, limit)
		if err != nil {
			return err
		}
		if summary.Written < summary.Attempted {
			return fmt.Errorf("%d tag(s) could not be written", summary.Attempted-summary.Written)
		}
		return nil
	},
}

func writeFormFromArgs(cmd *cobra.Command, args []string) (writeform.Form, error) {
	prefix, _ := cmd.Flags().GetString("prefix")
	number, _ := cmd.Flags().GetString("number")
	suffix, _ := cmd.Flags().GetString("suffix")
	fields := prefix != "" || number != "" || suffix != ""

	switch {
	case len(args) == 1 && fields:
		return writeform.Form{}, fmt.Errorf("give either an ID argument or --prefix/--number/--suffix, not both")
	case len(args) == 1:
		return writeform.FromBarcode(-1, args[0]), nil
	case fields:
		return writeform.Form{Prefix: prefix, Number: number, Suffix: suffix}, nil
	default:
		return writeform.Form{}, fmt.Errorf("an ID is required")
	}
}

func init() {
	writeCmd.Flags().StringArrayP("tag", "t", nil, "Tag file to write (repeatable)")
	writeCmd.Flags().IntP("limit", "n", 0, "Stop after this many tags (0 for all)")
	writeCmd.Flags().String("prefix", "", "ID prefix")
	writeCmd.Flags().String("number", "", "ID number")
	writeCmd.Flags().String("suffix", "", "ID suffix")
}

// WriteCmd returns the write command
func WriteCmd() *cobra.Command {
	return writeCmd
}
