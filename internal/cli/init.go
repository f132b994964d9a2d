package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/nfcfactory/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file in the current directory",
		Long: `Create .nfcfactory/config.json with the default payload MIME type,
application package and log level.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			return initConfig(cmd, dir, force)
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	return cmd
}

func initConfig(cmd *cobra.Command, dir string, force bool) error {
	path := config.Path(dir)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check config: %w", err)
	}

	if err := config.SaveConfig(dir, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Config written to %s\n", path)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  nfcfactory tag init tags/first.yaml")
	fmt.Fprintln(out, "  nfcfactory write E1645X --tag tags/first.yaml")
	return nil
}
