package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/keyforge-io/slip39/internal/cli"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "slip39",
		Short: "SLIP-0039 Shamir's Secret Sharing for secure backups",
		Long: `slip39 implements SLIP-0039: Shamir's Secret-Sharing for Mnemonic Codes.

This tool provides hierarchical secret sharing with encryption, compatible
with Trezor and other hardware wallets supporting SLIP-0039.

Features:
- SLIP-0039 standard implementation
- Two-level hierarchical sharing (groups and members)
- Mnemonic encoding with a fixed 1024-word wordlist
- Passphrase encryption with plausible deniability
- BIP32 key derivation directly from the recovered master secret

For non-standard flat shares, use the 'legacy' subcommand.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewSplitCommand(),
		cli.NewCombineCommand(),
		cli.NewVerifyCommand(),
		cli.NewInfoCommand(),
		cli.NewDeriveCommand(),
		cli.NewGenerateCommand(),
		cli.NewLegacyCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
