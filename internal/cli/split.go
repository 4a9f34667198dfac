package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/keyforge-io/slip39/internal/validation"
	"github.com/keyforge-io/slip39/pkg/config"
	"github.com/keyforge-io/slip39/pkg/crypto/slip39"
	"github.com/spf13/cobra"
)

// NewSplitCommand builds the default split command, which produces
// SLIP-0039 mnemonic shares.
func NewSplitCommand() *cobra.Command {
	var (
		threshold         int
		shares            int
		groupThreshold    int
		groupsSpec        string
		passphrase        string
		secretHex         string
		secretLength      int
		iterationExponent int
		extendable        bool
		outputFile        string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into SLIP-0039 mnemonic shares",
		Long: `Split a master secret into SLIP-0039 mnemonic shares using
hierarchical Shamir's Secret Sharing with encryption.

Examples:
  # Simple 2-of-3 sharing
  slip39 split --threshold 2 --shares 3

  # Generate a random 256-bit secret and split it
  slip39 split --threshold 3 --shares 5 --length 32

  # Advanced: multiple groups, 2 of 2 groups required
  slip39 split --group-threshold 2 --groups "2/3,3/5"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := config.NewConfigManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			var groups []slip39.GroupConfiguration
			var actualGroupThreshold byte

			switch {
			case groupsSpec != "":
				parsed, err := parseGroupsSpec(groupsSpec)
				if err != nil {
					return fmt.Errorf("invalid groups specification: %w", err)
				}
				groups = parsed

				if groupThreshold <= 0 || groupThreshold > len(groups) {
					groupThreshold = len(groups)
				}
				actualGroupThreshold = byte(groupThreshold)
			case threshold > 0 && shares > 0:
				if err := validation.ValidateSplitParams(shares, threshold); err != nil {
					return fmt.Errorf("invalid --threshold/--shares: %w", err)
				}
				groups = slip39.SimpleConfiguration(byte(threshold), byte(shares))
				actualGroupThreshold = 1
			default:
				profile := &config.ShareProfile{}
				cm.ApplyDefaults(profile)
				groups = profile.Groups
				actualGroupThreshold = profile.GroupThreshold
			}

			var masterSecret []byte
			switch {
			case secretHex != "":
				decoded, err := hex.DecodeString(secretHex)
				if err != nil {
					return fmt.Errorf("invalid hex secret: %w", err)
				}
				masterSecret = decoded
			case secretLength > 0:
				if !validation.ValidateMasterSecretLength(secretLength) {
					return fmt.Errorf("--length must be even and at least 16 bytes (got %d)", secretLength)
				}
				generated, err := slip39.GenerateMasterSecret(secretLength)
				if err != nil {
					return fmt.Errorf("failed to generate secret: %w", err)
				}
				masterSecret = generated

				yellow := color.New(color.FgYellow, color.Bold)
				yellow.Printf("Generated master secret: %x\n\n", masterSecret)
			default:
				secret, err := readSecretInteractive()
				if err != nil {
					return err
				}
				masterSecret = secret
			}

			if passphrase == "" && !cmd.Flags().Changed("passphrase") {
				pass, err := readPassphrase("Enter passphrase (optional, press Enter to skip): ")
				if err != nil {
					return err
				}
				passphrase = pass
			}
			if err := validation.ValidatePassphrase(passphrase); err != nil {
				return fmt.Errorf("invalid passphrase: %w", err)
			}
			if err := cm.ValidatePassphrasePolicy(passphrase); err != nil {
				return fmt.Errorf("passphrase policy: %w", err)
			}

			if !cmd.Flags().Changed("iteration-exponent") {
				iterationExponent = cm.GetConfig().SLIP039.IterationExponent
			}
			if !cmd.Flags().Changed("extendable") {
				extendable = cm.GetConfig().SLIP039.Extendable
			}

			mnemonics, err := slip39.SplitMasterSecret(
				masterSecret,
				passphrase,
				actualGroupThreshold,
				groups,
				byte(iterationExponent),
				extendable,
			)
			if err != nil {
				return fmt.Errorf("failed to split secret: %w", err)
			}

			if outputFile != "" {
				return saveSlip39ToFile(mnemonics, actualGroupThreshold, groups, outputFile)
			}

			displaySlip39Shares(mnemonics, actualGroupThreshold, groups)

			for i := range masterSecret {
				masterSecret[i] = 0
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "Member threshold for simple mode")
	cmd.Flags().IntVarP(&shares, "shares", "n", 0, "Number of shares for simple mode")
	cmd.Flags().IntVar(&groupThreshold, "group-threshold", 0, "Number of groups required (advanced mode)")
	cmd.Flags().StringVar(&groupsSpec, "groups", "", "Groups specification (e.g., '2/3,3/5')")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "Passphrase for encryption")
	cmd.Flags().StringVar(&secretHex, "secret", "", "Master secret in hex")
	cmd.Flags().IntVarP(&secretLength, "length", "l", 0, "Generate a random secret of the given byte length (even, >=16)")
	cmd.Flags().IntVarP(&iterationExponent, "iteration-exponent", "e", int(slip39.DefaultIterationExponent), "PBKDF2 iteration exponent (0-15)")
	cmd.Flags().BoolVar(&extendable, "extendable", false, "Produce extendable backup shares")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write shares to a JSON file instead of stdout")

	return cmd
}

func saveSlip39ToFile(mnemonics [][]string, groupThreshold byte, groups []slip39.GroupConfiguration, filename string) error {
	type shareFile struct {
		Standard       string                      `json:"standard"`
		GroupThreshold int                         `json:"group_threshold"`
		Groups         []slip39.GroupConfiguration `json:"groups"`
		Shares         [][]string                  `json:"shares"`
	}

	data := shareFile{
		Standard:       "SLIP-0039",
		GroupThreshold: int(groupThreshold),
		Groups:         groups,
		Shares:         mnemonics,
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	green := color.New(color.FgGreen, color.Bold)
	green.Printf("Shares saved to %s\n", filename)

	return nil
}
