package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/registry"
	"github.com/Mohsinsiddi/nftreg/internal/state"
	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

var (
	initName      string
	initSymbol    string
	initVersion   string
	initBaseURI   string
	initChainID   uint64
	initContract  string
	initMinter    string
	initMaxSupply uint64
	initForce     bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new registry",
	Long: `Create a new registry snapshot in the config directory.

With --name and --minter given, the registry is created non-interactively;
otherwise the setup wizard collects the domain parameters.

The name, version, chain ID, and contract address bind all permit
signatures to this registry instance and cannot change afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := state.NewFileStore(cfg.RegistryFile)
		if _, err := os.Stat(store.Path()); err == nil && !initForce {
			return fmt.Errorf("registry already exists at %s (use --force to overwrite)", store.Path())
		}

		if initName == "" || initMinter == "" {
			fmt.Println(ui.Banner())
			result, err := ui.RunWizard()
			if err != nil {
				return err
			}
			if result.Name == "" || result.Minter == "" {
				fmt.Println(ui.Meta("Cancelled."))
				return nil
			}
			initName = result.Name
			initSymbol = result.Symbol
			initBaseURI = result.BaseURI
			initMinter = result.Minter
			if result.ChainID != "" {
				id, err := strconv.ParseUint(result.ChainID, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid chain ID %q: %w", result.ChainID, err)
				}
				initChainID = id
			}
			if result.MaxSupply != "" {
				max, err := strconv.ParseUint(result.MaxSupply, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid max supply %q: %w", result.MaxSupply, err)
				}
				initMaxSupply = max
			}
		}

		minter, err := resolveAddress(initMinter)
		if err != nil {
			return fmt.Errorf("minter: %w", err)
		}
		var contract common.Address
		if initContract != "" {
			contract, err = resolveAddress(initContract)
			if err != nil {
				return fmt.Errorf("contract: %w", err)
			}
		}

		reg := registry.New(registry.Config{
			Name:      initName,
			Symbol:    initSymbol,
			Version:   initVersion,
			BaseURI:   initBaseURI,
			ChainID:   initChainID,
			Contract:  contract,
			Minter:    minter,
			MaxSupply: initMaxSupply,
		})
		if err := saveRegistry(store, reg); err != nil {
			return err
		}

		pairs := [][2]string{
			{"Name", ui.Val(initName)},
			{"Symbol", initSymbol},
			{"Version", initVersion},
			{"Chain ID", strconv.FormatUint(initChainID, 10)},
			{"Minter", ui.Addr(minter.Hex())},
			{"Domain separator", ui.Addr(reg.DomainSeparator().Hex())},
			{"State file", store.Path()},
		}
		fmt.Println(ui.KeyValueBlock("Registry Created", pairs))
		fmt.Println(ui.Hint("Mint the first token with: nftreg mint <to> [uri]"))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "collection name (binds permit signatures)")
	initCmd.Flags().StringVar(&initSymbol, "symbol", "", "collection symbol")
	initCmd.Flags().StringVar(&initVersion, "domain-version", "1.0.0", "domain version string")
	initCmd.Flags().StringVar(&initBaseURI, "base-uri", "", "token URI prefix")
	initCmd.Flags().Uint64Var(&initChainID, "chain-id", 1, "network identifier for domain separation")
	initCmd.Flags().StringVar(&initContract, "contract", "", "registry identity address for domain separation")
	initCmd.Flags().StringVar(&initMinter, "minter", "", "wallet name or address allowed to mint")
	initCmd.Flags().Uint64Var(&initMaxSupply, "max-supply", 0, "cap on tokens ever minted (0 = unlimited)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing registry")
}
