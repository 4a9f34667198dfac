package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/keyforge-io/slip39/internal/validation"
	"github.com/keyforge-io/slip39/pkg/crypto/hdkey"
	"github.com/keyforge-io/slip39/pkg/crypto/slip39"
	"github.com/keyforge-io/slip39/pkg/secure"
	"github.com/spf13/cobra"
)

// DeriveResult is the JSON-serializable form of a derived key.
type DeriveResult struct {
	Path      string `json:"path"`
	PublicKey string `json:"public_key"`
}

// NewDeriveCommand derives BIP32 keys directly from a recovered
// SLIP-0039 master secret - there is no BIP-39 seed phrase anywhere in
// this path.
func NewDeriveCommand() *cobra.Command {
	var (
		path        string
		account     uint32
		secretHex   string
		outputJSON  bool
		showPrivate bool
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive HD keys from a recovered SLIP-0039 master secret",
		Long: `Derive BIP32 hierarchical deterministic keys from a master secret
recovered via SLIP-0039 shares. The master secret is used directly as
the BIP32 seed - no BIP-39 mnemonic is involved.`,
		Example: `  # Combine shares first, then derive
  slip39 derive --secret <hex master secret> --path "m/44'/60'/0'/0/0"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var seed []byte
			if secretHex != "" {
				decoded, err := hex.DecodeString(secretHex)
				if err != nil {
					return fmt.Errorf("invalid hex secret: %w", err)
				}
				seed = decoded
			} else {
				collected, err := combineFromStdin()
				if err != nil {
					return err
				}
				seed = collected
			}
			defer secure.Zero(seed)

			masterKey, err := hdkey.NewMasterKey(seed)
			if err != nil {
				return fmt.Errorf("failed to create master key: %w", err)
			}

			var derivedKey *hdkey.HDKey
			if path != "" {
				if err := validation.ValidateDerivationPath(path); err != nil {
					return fmt.Errorf("invalid derivation path: %w", err)
				}
				derivedKey, err = masterKey.DerivePath(path)
			} else {
				derivedKey, err = masterKey.DeriveLedgerPath(account)
				path = fmt.Sprintf("m/44'/60'/%d'", account)
			}
			if err != nil {
				return fmt.Errorf("failed to derive key: %w", err)
			}

			result := DeriveResult{
				Path:      path,
				PublicKey: derivedKey.PublicKeyHex(),
			}

			if outputJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			return outputDeriveText(derivedKey, showPrivate)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "d", "", "BIP32 derivation path")
	cmd.Flags().Uint32VarP(&account, "account", "a", 0, "Account number for the default Ledger path")
	cmd.Flags().StringVar(&secretHex, "secret", "", "Master secret in hex (skips the interactive combine step)")
	cmd.Flags().BoolVar(&showPrivate, "show-private", false, "Show the private key (DANGEROUS)")
	cmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "Output as JSON")

	return cmd
}

// combineFromStdin reads SLIP-0039 mnemonics interactively and
// combines them into a master secret for derivation.
func combineFromStdin() ([]byte, error) {
	fmt.Println("No --secret given; combining SLIP-0039 shares from stdin.")
	mnemonics, err := collectSlip39Mnemonics()
	if err != nil {
		return nil, err
	}

	passphrase, err := readPassphrase("Enter passphrase (press Enter if none): ")
	if err != nil {
		return nil, err
	}

	return slip39.RecoverMasterSecret(mnemonics, passphrase)
}

func outputDeriveText(key *hdkey.HDKey, showPrivate bool) error {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed, color.Bold)

	fmt.Println()
	green.Println("=== DERIVED KEY ===")
	fmt.Println()

	yellow.Println("Derivation Path:")
	fmt.Printf("  %s\n\n", key.Path())

	yellow.Println("Public Key:")
	fmt.Printf("  %s\n\n", key.PublicKeyHex())

	yellow.Println("Extended Public Key:")
	fmt.Printf("  %s\n\n", key.ExtendedPublicKey())

	if showPrivate {
		red.Println("PRIVATE KEY (KEEP SECRET):")
		fmt.Printf("  %s\n\n", key.PrivateKeyHex())

		red.Println("Extended Private Key:")
		fmt.Printf("  %s\n\n", key.ExtendedPrivateKey())
	}

	return nil
}
