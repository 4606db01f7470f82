package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/typeddata"
	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the registry's configuration and supply",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, store, err := openRegistry()
		if err != nil {
			return err
		}
		c := reg.Config()

		maxSupply := "unlimited"
		if c.MaxSupply > 0 {
			maxSupply = fmt.Sprintf("%d", c.MaxSupply)
		}

		pairs := [][2]string{
			{"Name", ui.Val(c.Name)},
			{"Symbol", ui.Val(c.Symbol)},
			{"Version", c.Version},
			{"Base URI", ui.Meta(c.BaseURI)},
			{"Chain ID", fmt.Sprintf("%d", c.ChainID)},
			{"Contract", ui.Addr(c.Contract.Hex())},
			{"Minter", ui.Addr(c.Minter.Hex())},
			{"Max supply", maxSupply},
			{"Live supply", ui.Val(fmt.Sprintf("%d", reg.TotalSupply()))},
			{"Minted", fmt.Sprintf("%d", reg.Minted())},
			{"Burned", fmt.Sprintf("%d", reg.Burned())},
			{"File", ui.Meta(store.Path())},
		}
		fmt.Println(ui.KeyValueBlock("Registry", pairs))

		domainPairs := [][2]string{
			{"Domain separator", ui.Meta(reg.DomainSeparator().Hex())},
			{"Domain typehash", ui.Meta(typeddata.DomainTypehash.Hex())},
			{"Permit typehash", ui.Meta(typeddata.PermitTypehash.Hex())},
		}
		fmt.Println(ui.KeyValueBlock("Signing domain", domainPairs))
		return nil
	},
}
