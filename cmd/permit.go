package cmd

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

var permitCmd = &cobra.Command{
	Use:   "permit <spender> <id> <deadline> <signature>",
	Short: "Apply a signed permit to approve a spender",
	Long: `Verify a 65-byte permit signature and, if it was produced by the
token's current owner over the current nonce, set <spender> as the
approved spender for token <id>.

Anyone may submit a permit; authority comes from the signature, not the
submitter. The approval itself does not consume the nonce, so the same
signature can be re-applied until the token moves or is burned.

The deadline is a unix timestamp, an RFC 3339 time, or a relative
duration like +1h, and must match the value that was signed.

Examples:
  nftreg permit bob 1 1924992000 0x4fe7...1b
  nftreg sign-permit bob 1 +24h --wallet alice   # produce the signature`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		spender, err := resolveAddress(args[0])
		if err != nil {
			return err
		}
		id, err := parseTokenID(args[1])
		if err != nil {
			return err
		}
		deadline, err := parseDeadline(args[2])
		if err != nil {
			return err
		}
		sig, err := hexutil.Decode(ensureHexPrefix(args[3]))
		if err != nil {
			return fmt.Errorf("signature: %w", err)
		}

		reg, store, err := openRegistry()
		if err != nil {
			return err
		}
		if err := reg.Permit(spender, id, deadline, sig); err != nil {
			return err
		}
		if err := saveRegistry(store, reg); err != nil {
			return err
		}

		owner, _ := reg.OwnerOf(id)
		pairs := [][2]string{
			{"Token", ui.Val(fmt.Sprintf("#%d", id))},
			{"Owner", ui.Addr(owner.Hex())},
			{"Approved", ui.Addr(spender.Hex())},
			{"Deadline", fmt.Sprintf("%d", deadline)},
		}
		fmt.Println(ui.KeyValueBlock("Permit accepted", pairs))
		return nil
	},
}

func ensureHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}
