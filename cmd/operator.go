package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

var operatorRevoke bool

var operatorCmd = &cobra.Command{
	Use:   "operator <operator>",
	Short: "Grant or revoke operator rights over all your tokens",
	Long: `Make <operator> an operator for the caller. Operators may transfer,
approve, and burn every token the caller owns now or acquires later, and
the grant is independent of per-token approvals.

Examples:
  nftreg operator bob --caller alice
  nftreg operator bob --revoke --caller alice`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		operator, err := resolveAddress(args[0])
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
		if err := reg.SetApprovalForAll(caller, operator, !operatorRevoke); err != nil {
			return err
		}
		if err := saveRegistry(store, reg); err != nil {
			return err
		}

		verb := "granted"
		if operatorRevoke {
			verb = "revoked"
		}
		pairs := [][2]string{
			{"Owner", ui.Addr(caller.Hex())},
			{"Operator", ui.Addr(operator.Hex())},
			{"Status", verb},
		}
		fmt.Println(ui.KeyValueBlock("Operator rights "+verb, pairs))
		return nil
	},
}

func init() {
	addCallerFlag(operatorCmd)
	operatorCmd.Flags().BoolVar(&operatorRevoke, "revoke", false, "revoke the operator grant instead of making one")
}
