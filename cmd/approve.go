package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

var approveClear bool

var approveCmd = &cobra.Command{
	Use:   "approve <spender> <id>",
	Short: "Approve a spender for a single token",
	Long: `Grant <spender> permission to transfer token <id>. Only one approval
exists per token; approving replaces any previous one, and the approval
is cleared automatically when the token moves.

The caller must be the token's owner or one of the owner's operators.

Examples:
  nftreg approve bob 1 --caller alice
  nftreg approve --clear 1 --caller alice   # revoke`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var spender common.Address
		idArg := args[0]
		if approveClear {
			if len(args) != 1 {
				return fmt.Errorf("usage: approve --clear <id>")
			}
		} else {
			if len(args) != 2 {
				return fmt.Errorf("usage: approve <spender> <id>")
			}
			var err error
			spender, err = resolveAddress(args[0])
			if err != nil {
				return err
			}
			idArg = args[1]
		}
		id, err := parseTokenID(idArg)
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
		if err := reg.Approve(caller, spender, id); err != nil {
			return err
		}
		if err := saveRegistry(store, reg); err != nil {
			return err
		}

		owner, _ := reg.OwnerOf(id)
		pairs := [][2]string{
			{"Token", ui.Val(fmt.Sprintf("#%d", id))},
			{"Owner", ui.Addr(owner.Hex())},
			{"Approved", formatAddr(spender)},
		}
		title := "Approval set"
		if approveClear {
			title = "Approval cleared"
		}
		fmt.Println(ui.KeyValueBlock(title, pairs))
		return nil
	},
}

func init() {
	addCallerFlag(approveCmd)
	approveCmd.Flags().BoolVar(&approveClear, "clear", false, "revoke the approval instead of granting it")
}
