package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/keyforge-io/slip39/pkg/crypto/slip39"
	"github.com/spf13/cobra"
)

// NewVerifyCommand checks a single SLIP-0039 mnemonic for structural
// and checksum validity and prints its header fields.
func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [mnemonic words...]",
		Short: "Verify a SLIP-0039 share mnemonic",
		Long:  `Verify that a SLIP-0039 mnemonic is well-formed and checksums correctly, and show its header fields.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic := strings.Join(args, " ")

			if err := slip39.ValidateMnemonic(mnemonic); err != nil {
				red := color.New(color.FgRed, color.Bold)
				red.Println("Invalid mnemonic")
				return err
			}

			info, err := slip39.GetShareInfo(mnemonic)
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen, color.Bold)
			yellow := color.New(color.FgYellow)

			fmt.Println()
			green.Println("Mnemonic is valid")
			fmt.Println()
			yellow.Println("Share details:")
			fmt.Println(info.String())

			return nil
		},
	}

	return cmd
}
