package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

var mintCmd = &cobra.Command{
	Use:   "mint <to> [uri]",
	Short: "Mint the next token to an account",
	Long: `Mint a new token to the given account. Token IDs are assigned
monotonically starting at 1 and are never reused.

Only the registry's configured minter account may mint.

Examples:
  nftreg mint alice 1.json
  nftreg mint 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045 --caller minter`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := resolveAddress(args[0])
		if err != nil {
			return err
		}
		uri := ""
		if len(args) > 1 {
			uri = args[1]
		}
		caller, err := resolveCaller()
		if err != nil {
			return err
		}

		reg, store, err := openRegistry()
		if err != nil {
			return err
		}

		id, err := reg.Mint(caller, to, uri)
		if err != nil {
			return err
		}
		if err := saveRegistry(store, reg); err != nil {
			return err
		}

		tokenURI, _ := reg.TokenURI(id)
		pairs := [][2]string{
			{"Token", ui.Val(fmt.Sprintf("#%d", id))},
			{"Owner", ui.Addr(to.Hex())},
			{"URI", tokenURI},
			{"Total supply", fmt.Sprintf("%d", reg.TotalSupply())},
		}
		fmt.Println(ui.KeyValueBlock("Minted", pairs))
		return nil
	},
}

func init() {
	addCallerFlag(mintCmd)
}
