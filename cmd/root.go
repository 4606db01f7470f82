package cmd

import (
	"fmt"
	"os"

	"github.com/Mohsinsiddi/nftreg/internal/config"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/nftreg/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "nftreg",
	Short: "NFT ownership registry with signature permits",
	Long: `nftreg — an NFT ownership registry you drive from the terminal.

  Mint, transfer, approve, and burn tokens in a local registry with
  gap-free enumerations, and authorize spenders off-chain with
  EIP-712 permit signatures from keychain-stored wallets.

The registry state lives in a JSON snapshot under the config directory
(default: ~/.nftreg). Create one with: nftreg init`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// NFTREG_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("NFTREG_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.nftreg)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Register all sub-commands.
	rootCmd.AddCommand(
		initCmd,
		statusCmd,
		mintCmd,
		transferCmd,
		approveCmd,
		operatorCmd,
		burnCmd,
		permitCmd,
		signPermitCmd,
		tokenCmd,
		tokensCmd,
		supportsCmd,
		walletCmd,
		configCmd,
		keccakCmd,
		checksumCmd,
	)
}
