package cli

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/keyforge-io/slip39/pkg/crypto/legacyshamir"
	"github.com/keyforge-io/slip39/pkg/secure"
	"github.com/spf13/cobra"
)

// NewLegacyCommand groups the flat, non-hierarchical Shamir split and
// combine commands. These shares carry no digest and are not
// compatible with SLIP-0039 or hardware wallets; they exist for
// recovering backups made before a project adopted the hierarchical
// format.
func NewLegacyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legacy",
		Short: "Flat (non-hierarchical) Shamir operations",
		Long: `Flat Shamir's Secret Sharing operations with no mnemonic encoding,
no groups, and no integrity digest.

These commands are NOT compatible with SLIP-0039 or hardware wallets.
Use them only to recover shares created this way previously; for new
backups, use the top-level 'split' and 'combine' commands.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			yellow := color.New(color.FgYellow, color.Bold)
			yellow.Println("Using flat, non-SLIP-0039 Shamir sharing")
			fmt.Println()
		},
	}

	cmd.AddCommand(
		newLegacySplitCommand(),
		newLegacyCombineCommand(),
	)

	return cmd
}

func newLegacySplitCommand() *cobra.Command {
	var (
		parts      int
		threshold  int
		useStdin   bool
		outputHex  bool
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret with flat Shamir sharing",
		RunE: func(cmd *cobra.Command, args []string) error {
			var secret []byte
			var err error
			if useStdin {
				secret, err = readLegacyStdin()
			} else {
				secret, err = readSecretInteractive()
			}
			if err != nil {
				return fmt.Errorf("failed to read secret: %w", err)
			}
			defer secure.Zero(secret)

			shares, err := legacyshamir.Split(secret, legacyshamir.Config{
				Parts:     parts,
				Threshold: threshold,
			})
			if err != nil {
				return fmt.Errorf("failed to split secret: %w", err)
			}

			green := color.New(color.FgGreen, color.Bold)
			green.Printf("Created %d shares, threshold %d\n\n", parts, threshold)

			for _, s := range shares {
				if outputHex {
					fmt.Printf("Share %d: %s\n", s.Index, hex.EncodeToString(s.Data))
				} else {
					fmt.Printf("Share %d: %s\n", s.Index, base64.StdEncoding.EncodeToString(s.Data))
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&parts, "parts", "n", 5, "Total number of shares to create")
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 3, "Minimum shares needed to reconstruct")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read secret from stdin")
	cmd.Flags().BoolVar(&outputHex, "hex", false, "Output shares as hex instead of base64")

	return cmd
}

func newLegacyCombineCommand() *cobra.Command {
	var useHex bool

	cmd := &cobra.Command{
		Use:   "combine [share...]",
		Short: "Combine flat Shamir shares to recover a secret",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares := make([]legacyshamir.Share, len(args))
			for i, arg := range args {
				var data []byte
				var err error
				if useHex {
					data, err = hex.DecodeString(arg)
				} else {
					data, err = base64.StdEncoding.DecodeString(arg)
				}
				if err != nil {
					return fmt.Errorf("invalid share %d: %w", i+1, err)
				}
				shares[i] = legacyshamir.Share{Index: byte(i + 1), Data: data}
			}

			secret, err := legacyshamir.Combine(shares)
			if err != nil {
				return fmt.Errorf("failed to combine shares: %w", err)
			}
			defer legacyshamir.SecureZero(secret)

			green := color.New(color.FgGreen, color.Bold)
			green.Println("Recovered secret:")
			fmt.Printf("%s\n", string(secret))

			return nil
		},
	}

	cmd.Flags().BoolVar(&useHex, "hex", false, "Shares are hex-encoded instead of base64")

	return cmd
}

func readLegacyStdin() ([]byte, error) {
	scanner := bufio.NewScanner(os.Stdin)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return []byte(strings.Join(lines, "\n")), nil
}
