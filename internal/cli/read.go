package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/nfcfactory/internal/wire"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read an equipment tag",
	Long: `Read the first tag file given with --tag and print its NDEF content
along with the equipment ID found on it.

With --write-next the ID found is stepped and written to the next tag.

Examples:
  nfcfactory read --tag tags/pump-01.yaml
  nfcfactory read --tag tags/pump-01.yaml --tag tags/pump-02.yaml --write-next`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, _ := cmd.Flags().GetStringArray("tag")
		writeNext, _ := cmd.Flags().GetBool("write-next")
		step, _ := cmd.Flags().GetInt64("step")

		if len(tags) == 0 {
			return fmt.Errorf("at least one --tag is required")
		}
		if writeNext && len(tags) < 2 {
			return fmt.Errorf("--write-next needs a second --tag to write to")
		}

		adapter, err := wire.TagAdapterWithOutput(cmd.OutOrStdout(), tags...)
		if err != nil {
			return err
		}

		if writeNext {
			_, err = adapter.WriteNext(cmd.Context(), step)
			return err
		}
		_, err = adapter.Read(cmd.Context())
		return err
	},
}

func init() {
	readCmd.Flags().StringArrayP("tag", "t", nil, "Tag file to present (repeatable)")
	readCmd.Flags().Bool("write-next", false, "Write the following ID to the next tag")
	readCmd.Flags().Int64("step", 1, "Amount to step the ID by with --write-next")
}

// ReadCmd returns the read command
func ReadCmd() *cobra.Command {
	return readCmd
}
