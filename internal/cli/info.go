package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/keyforge-io/slip39/pkg/crypto/slip39"
	"github.com/spf13/cobra"
)

// NewInfoCommand decodes a single SLIP-0039 mnemonic and prints its
// header fields. Unlike verify, it makes no claim about whether the
// share can recover anything - it only decodes what a single share
// carries on its own.
func NewInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [mnemonic words...]",
		Short: "Decode a SLIP-0039 share's header fields",
		Long:  `Decode a single SLIP-0039 mnemonic and print its identifier, group/member indices, and thresholds, without attempting recovery.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic := strings.Join(args, " ")

			info, err := slip39.GetShareInfo(mnemonic)
			if err != nil {
				return fmt.Errorf("failed to decode share: %w", err)
			}

			cyan := color.New(color.FgCyan, color.Bold)
			fmt.Println()
			cyan.Println("Share header:")
			fmt.Println(info.String())

			return nil
		},
	}

	return cmd
}
