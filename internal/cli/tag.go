package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/nfcfactory/internal/adapters/filesystem"
)

// defaultCapacity is the NDEF area of an NTAG213.
const defaultCapacity = 137

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tag files",
	Long:  "Create the YAML files that stand in for physical NFC tags",
}

var tagInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Create a blank tag file",
	Long: `Create a blank tag file with the given UID and NDEF capacity.

Without --uid a random 7-byte UID is generated.

Examples:
  nfcfactory tag init tags/pump-01.yaml
  nfcfactory tag init tags/locked.yaml --uid 04a224b2c35e80 --read-only`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		uid, _ := cmd.Flags().GetString("uid")
		capacity, _ := cmd.Flags().GetInt("capacity")
		readOnly, _ := cmd.Flags().GetBool("read-only")

		if uid == "" {
			uid = randomUID()
		}

		if err := filesystem.CreateTagFile(path, uid, capacity, readOnly); err != nil {
			return fmt.Errorf("failed to create tag file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created tag %s (uid 0x%s, %d bytes", path, uid, capacity)
		if readOnly {
			fmt.Fprint(cmd.OutOrStdout(), ", read-only")
		}
		fmt.Fprintln(cmd.OutOrStdout(), ")")
		return nil
	},
}

// randomUID returns a 7-byte UID in the NXP layout, manufacturer byte first.
func randomUID() string {
	id := uuid.New()
	id[0] = 0x04
	return hex.EncodeToString(id[:7])
}

func init() {
	tagInitCmd.Flags().String("uid", "", "Tag UID as hex (random if empty)")
	tagInitCmd.Flags().IntP("capacity", "c", defaultCapacity, "NDEF capacity in bytes")
	tagInitCmd.Flags().Bool("read-only", false, "Create a locked tag")

	tagCmd.AddCommand(tagInitCmd)
}

// TagCmd returns the tag command
func TagCmd() *cobra.Command {
	return tagCmd
}
