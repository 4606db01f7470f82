package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

var burnYes bool

var burnCmd = &cobra.Command{
	Use:   "burn <id>",
	Short: "Destroy a token permanently",
	Long: `Burn token <id>. The caller must be the owner, the approved spender,
or an operator of the owner.

The ID is retired from both enumerations and is never reassigned. The
token's nonce still advances, so any outstanding permit signatures for
it are dead.

Examples:
  nftreg burn 3 --caller alice
  nftreg burn 3 --yes --caller alice   # skip the confirmation prompt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTokenID(args[0])
		if err != nil {
			return err
		}
		caller, err := resolveCaller()
		if err != nil {
			return err
		}

		reg, store, err := openRegistry()
		if err != nil {
			return err
		}
		owner, err := reg.OwnerOf(id)
		if err != nil {
			return err
		}

		if !burnYes {
			fmt.Println(ui.DangerBox(fmt.Sprintf("Burning token #%d owned by %s.\nThis cannot be undone and the ID is never reused.", id, ui.TruncateAddr(owner.Hex()))))
			if !ui.ConfirmDanger(fmt.Sprintf("Burn token #%d?", id)) {
				fmt.Println(ui.Warn("Aborted."))
				return nil
			}
		}

		if err := reg.Burn(caller, id); err != nil {
			return err
		}
		if err := saveRegistry(store, reg); err != nil {
			return err
		}

		pairs := [][2]string{
			{"Token", ui.Val(fmt.Sprintf("#%d", id))},
			{"Previous owner", ui.Addr(owner.Hex())},
			{"Supply", fmt.Sprintf("%d", reg.TotalSupply())},
			{"Burned", fmt.Sprintf("%d", reg.Burned())},
		}
		fmt.Println(ui.KeyValueBlock("Burned", pairs))
		return nil
	},
}

func init() {
	addCallerFlag(burnCmd)
	burnCmd.Flags().BoolVarP(&burnYes, "yes", "y", false, "skip the confirmation prompt")
}
