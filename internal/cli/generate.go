package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/keyforge-io/slip39/pkg/crypto/hdkey"
	"github.com/keyforge-io/slip39/pkg/crypto/slip39"
	"github.com/spf13/cobra"
)

// NewGenerateCommand generates a new cryptographically random master
// secret suitable for splitting with 'split --secret'.
func NewGenerateCommand() *cobra.Command {
	var (
		length     int
		outputJSON bool
		derivePath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random SLIP-0039 master secret",
		Long: `Generate a new cryptographically secure master secret that can be
split into SLIP-0039 shares with 'slip39 split --secret'.`,
		Example: `  # Generate a 128-bit secret
  slip39 generate --length 16

  # Generate a 256-bit secret and preview its Ethereum key
  slip39 generate --length 32 --path "m/44'/60'/0'/0/0"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := slip39.GenerateMasterSecret(length)
			if err != nil {
				return fmt.Errorf("failed to generate secret: %w", err)
			}

			var publicKeyHex string
			if derivePath != "" {
				masterKey, err := hdkey.NewMasterKey(secret)
				if err != nil {
					return fmt.Errorf("failed to create master key: %w", err)
				}
				derivedKey, err := masterKey.DerivePath(derivePath)
				if err != nil {
					return fmt.Errorf("failed to derive key: %w", err)
				}
				publicKeyHex = derivedKey.PublicKeyHex()
			}

			if outputJSON {
				result := map[string]string{"secret_hex": fmt.Sprintf("%x", secret)}
				if publicKeyHex != "" {
					result["path"] = derivePath
					result["public_key"] = publicKeyHex
				}
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			green := color.New(color.FgGreen, color.Bold)
			yellow := color.New(color.FgYellow)

			fmt.Println()
			green.Println("=== GENERATED MASTER SECRET ===")
			fmt.Println()
			yellow.Println("Secret (hex):")
			fmt.Printf("  %x\n\n", secret)

			if publicKeyHex != "" {
				yellow.Printf("Public key at %s:\n", derivePath)
				fmt.Printf("  %s\n\n", publicKeyHex)
			}

			fmt.Println("Run 'slip39 split --secret <hex>' to turn this into SLIP-0039 shares.")

			for i := range secret {
				secret[i] = 0
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 16, "Secret length in bytes (even, >=16)")
	cmd.Flags().StringVarP(&derivePath, "path", "d", "", "Preview a BIP32 public key at this derivation path")
	cmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "Output as JSON")

	return cmd
}
