package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/keyforge-io/slip39/internal/validation"
	"github.com/keyforge-io/slip39/pkg/crypto/slip39"
	"github.com/spf13/cobra"
)

// NewCombineCommand builds the default combine command, recovering a
// master secret from SLIP-0039 mnemonic shares.
func NewCombineCommand() *cobra.Command {
	var (
		inputFile  string
		passphrase string
		outputHex  bool
		outputText bool
	)

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Combine SLIP-0039 shares to recover a secret",
		Long: `Combine SLIP-0039 mnemonic shares to recover the original master secret.

Examples:
  # Combine shares interactively
  slip39 combine

  # Combine shares from a file written by 'split --output'
  slip39 combine --input shares.json

  # Combine with a passphrase
  slip39 combine --passphrase "my passphrase"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var mnemonics []string

			if inputFile != "" {
				loaded, err := readSlip39FromFile(inputFile)
				if err != nil {
					return err
				}
				mnemonics = loaded
			} else {
				collected, err := collectSlip39Mnemonics()
				if err != nil {
					return err
				}
				mnemonics = collected
			}

			if len(mnemonics) == 0 {
				return fmt.Errorf("no mnemonics provided")
			}

			if passphrase == "" && !cmd.Flags().Changed("passphrase") {
				pass, err := readPassphrase("Enter passphrase (press Enter if none): ")
				if err != nil {
					return err
				}
				passphrase = pass
			}

			masterSecret, err := slip39.RecoverMasterSecret(mnemonics, passphrase)
			if err != nil {
				return fmt.Errorf("failed to recover secret: %w", err)
			}

			green := color.New(color.FgGreen, color.Bold)
			cyan := color.New(color.FgCyan, color.Bold)

			fmt.Println()
			green.Println("Successfully recovered master secret")
			fmt.Println()

			switch {
			case outputHex:
				cyan.Println("Master Secret (hex):")
				fmt.Printf("%x\n", masterSecret)
			case outputText:
				cyan.Println("Master Secret (text):")
				fmt.Printf("%s\n", string(masterSecret))
			default:
				cyan.Println("Master Secret:")
				fmt.Printf("  Hex:  %x\n", masterSecret)
			}

			for i := range masterSecret {
				masterSecret[i] = 0
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "File containing shares (from 'split --output')")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "Passphrase used during splitting")
	cmd.Flags().BoolVar(&outputHex, "hex", false, "Output only as hexadecimal")
	cmd.Flags().BoolVar(&outputText, "text", false, "Output only as text")

	return cmd
}

// collectSlip39Mnemonics interactively collects SLIP-0039 mnemonics.
func collectSlip39Mnemonics() ([]string, error) {
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Println()
	yellow.Println("Enter SLIP-0039 mnemonic shares (one per line)")
	fmt.Println("Press Enter on an empty line when done")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	var mnemonics []string
	shareNum := 1

	for {
		fmt.Printf("Share %d: ", shareNum)
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			if len(mnemonics) == 0 {
				continue
			}
			break
		}

		if err := validation.ValidateMnemonicShape(line); err != nil {
			red.Printf("  invalid share: %v\n", err)
			continue
		}

		if err := slip39.ValidateMnemonic(line); err != nil {
			red.Printf("  invalid share: %v\n", err)
			continue
		}

		info, err := slip39.GetShareInfo(line)
		if err == nil {
			green.Printf("  valid share (group %d, member %d)\n", info.GroupIndex, info.MemberIndex)
		} else {
			green.Println("  valid share")
		}

		mnemonics = append(mnemonics, line)
		shareNum++
	}

	if len(mnemonics) == 0 {
		return nil, fmt.Errorf("no valid shares provided")
	}

	fmt.Printf("\nCollected %d shares\n", len(mnemonics))
	return mnemonics, nil
}

// readSlip39FromFile reads SLIP-0039 shares from a JSON file written
// by 'split --output'.
func readSlip39FromFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data struct {
		Standard   string     `json:"standard"`
		Shares     [][]string `json:"shares"`
		FlatShares []string   `json:"flat_shares"`
	}

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	var mnemonics []string
	if len(data.FlatShares) > 0 {
		mnemonics = data.FlatShares
	} else {
		for _, group := range data.Shares {
			mnemonics = append(mnemonics, group...)
		}
	}

	if len(mnemonics) == 0 {
		return nil, fmt.Errorf("no shares found in file")
	}

	green := color.New(color.FgGreen)
	green.Printf("Loaded %d shares from %s\n", len(mnemonics), filename)

	return mnemonics, nil
}
