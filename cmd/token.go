package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

var tokenCmd = &cobra.Command{
	Use:   "token <id>",
	Short: "Show a single token's record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTokenID(args[0])
		if err != nil {
			return err
		}

		reg, _, err := openRegistry()
		if err != nil {
			return err
		}
		owner, err := reg.OwnerOf(id)
		if err != nil {
			return err
		}
		approved, _ := reg.GetApproved(id)
		nonce, _ := reg.Nonce(id)
		uri, _ := reg.TokenURI(id)

		pairs := [][2]string{
			{"Token", ui.Val(fmt.Sprintf("#%d", id))},
			{"Owner", ui.Addr(owner.Hex())},
			{"Approved", formatAddr(approved)},
			{"Nonce", fmt.Sprintf("%d", nonce)},
			{"URI", ui.Meta(uri)},
			{"Owner balance", fmt.Sprintf("%d", reg.BalanceOf(owner))},
		}
		fmt.Println(ui.KeyValueBlock(fmt.Sprintf("%s #%d", reg.Symbol(), id), pairs))
		return nil
	},
}
