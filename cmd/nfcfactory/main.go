package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/nfcfactory/internal/cli"
	"github.com/example/nfcfactory/internal/version"
	"github.com/example/nfcfactory/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "nfcfactory",
		Short:   "nfcfactory - Equipment tag reader and writer",
		Version: version.String(),
		Long: `nfcfactory reads and writes the NFC tags that identify equipment.
Each tag carries an equipment ID record and an application record; tag files
stand in for the physical tags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			debug, _ := cmd.Flags().GetBool("debug")
			return wire.InitLogging(level, debug)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ReadCmd())
	rootCmd.AddCommand(cli.WriteCmd())
	rootCmd.AddCommand(cli.ScanCmd())
	rootCmd.AddCommand(cli.TagCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
