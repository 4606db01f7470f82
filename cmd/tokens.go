package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/registry"
	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

var (
	tokensOwner       string
	tokensInteractive bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List tokens in enumeration order",
	Long: `Walk the live-token enumeration and print each token's record.

Without flags the global enumeration is walked (indices 1..supply).
With --owner only that account's tokens are listed, in the owner's
enumeration order (indices 0..balance-1). Both orders are dense and
shift when tokens burn or transfer.

Examples:
  nftreg tokens
  nftreg tokens --owner alice
  nftreg tokens --interactive`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}

		var ids []registry.TokenID
		var scope string
		if tokensOwner != "" {
			owner, err := resolveAddress(tokensOwner)
			if err != nil {
				return err
			}
			n := reg.BalanceOf(owner)
			for i := uint64(0); i < n; i++ {
				id, err := reg.TokenOfOwnerByIndex(owner, i)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			scope = fmt.Sprintf("owned by %s", ui.TruncateAddr(owner.Hex()))
		} else {
			n := reg.TotalSupply()
			for i := uint64(1); i <= n; i++ {
				id, err := reg.TokenByIndex(i)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			scope = "all live tokens"
		}

		if len(ids) == 0 {
			fmt.Println(ui.Info("No tokens yet."))
			fmt.Println(ui.Hint("Mint one with: nftreg mint <to> [uri]"))
			return nil
		}

		if tokensInteractive {
			rows := make([]ui.TokenRow, len(ids))
			for i, id := range ids {
				rows[i] = browserRow(reg, id)
			}
			return ui.BrowseTokens(fmt.Sprintf("%s ·  %s", reg.Symbol(), scope), rows)
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Token", Width: 8},
			{Title: "Owner", Width: 16},
			{Title: "Approved", Width: 16},
			{Title: "Nonce", Width: 6},
			{Title: "URI", Width: 28},
		})
		for _, id := range ids {
			owner, _ := reg.OwnerOf(id)
			approved, _ := reg.GetApproved(id)
			nonce, _ := reg.Nonce(id)
			uri, _ := reg.TokenURI(id)
			ap := ""
			if approved != (common.Address{}) {
				ap = ui.TruncateAddr(approved.Hex())
			}
			t.AddRow(ui.Row{
				ui.TokenTag(fmt.Sprintf("#%d", id)),
				ui.Addr(ui.TruncateAddr(owner.Hex())),
				ui.Meta(ap),
				fmt.Sprintf("%d", nonce),
				ui.Meta(uri),
			})
		}
		fmt.Println(t.Render())
		fmt.Println(ui.Meta(fmt.Sprintf("%d token(s), %s", len(ids), scope)))
		return nil
	},
}

func browserRow(reg *registry.Registry, id registry.TokenID) ui.TokenRow {
	owner, _ := reg.OwnerOf(id)
	approved, _ := reg.GetApproved(id)
	nonce, _ := reg.Nonce(id)
	uri, _ := reg.TokenURI(id)
	ap := ""
	if approved != (common.Address{}) {
		ap = approved.Hex()
	}
	return ui.TokenRow{
		ID:       fmt.Sprintf("#%d", id),
		Owner:    owner.Hex(),
		Approved: ap,
		Nonce:    fmt.Sprintf("%d", nonce),
		URI:      uri,
	}
}

func init() {
	tokensCmd.Flags().StringVar(&tokensOwner, "owner", "", "list only this account's tokens (wallet name or 0x address)")
	tokensCmd.Flags().BoolVarP(&tokensInteractive, "interactive", "i", false, "browse tokens in an interactive table")
}
