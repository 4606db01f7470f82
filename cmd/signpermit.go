package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/ui"
	"github.com/Mohsinsiddi/nftreg/internal/wallet"
)

var signPermitWallet string

var signPermitCmd = &cobra.Command{
	Use:   "sign-permit <spender> <id> <deadline>",
	Short: "Sign a permit for a token you own",
	Long: `Produce a 65-byte permit signature approving <spender> for token <id>.

The digest is built over the token's current nonce, so the signature
dies as soon as the token transfers or burns. The signing wallet must be
the token's current owner for the permit to be accepted later.

The deadline may be a unix timestamp, an RFC 3339 time, or a relative
duration like +24h.

Examples:
  nftreg sign-permit bob 1 +24h --wallet alice
  nftreg sign-permit bob 1 1924992000          # picker if no default wallet`,
	Args: cobra.ExactArgs(3),
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

		name := signPermitWallet
		if name == "" {
			name = cfg.DefaultWallet
		}
		if name == "" {
			mgr := newWalletManager()
			var items []ui.PickerItem
			for _, w := range mgr.List() {
				if w.Type == wallet.TypeSigning {
					items = append(items, ui.PickerItem{
						Label:    w.Name,
						SubLabel: ui.TruncateAddr(w.Address),
						Value:    w.Name,
					})
				}
			}
			if len(items) == 0 {
				return fmt.Errorf("no signing wallets — add one with `nftreg wallet add <name> --key <private-key>`")
			}
			picked, err := ui.PickItem("Sign Permit  ·  select the owner wallet", items)
			if err != nil {
				return err
			}
			if picked == "" {
				fmt.Println(ui.Meta("Cancelled."))
				return nil
			}
			name = picked
		}

		w, _, err := loadSigningWallet(name)
		if err != nil {
			return err
		}
		warnIfNoSession()

		reg, _, err := openRegistry()
		if err != nil {
			return err
		}
		nonce, err := reg.Nonce(id)
		if err != nil {
			return err
		}
		digest, err := reg.PermitDigest(spender, id, deadline)
		if err != nil {
			return err
		}

		signer := wallet.NewSigner(w, wallet.DefaultKeystore())
		sig, err := signer.SignPermit(digest)
		if err != nil {
			return err
		}

		if owner, err := reg.OwnerOf(id); err == nil && owner != signer.Address() {
			fmt.Println(ui.Warn(fmt.Sprintf("Wallet %q does not own token #%d — this permit will be rejected.", name, id)))
		}

		pairs := [][2]string{
			{"Token", ui.Val(fmt.Sprintf("#%d", id))},
			{"Spender", ui.Addr(spender.Hex())},
			{"Signer", ui.Addr(signer.Address().Hex())},
			{"Nonce", fmt.Sprintf("%d", nonce)},
			{"Deadline", fmt.Sprintf("%d", deadline)},
			{"Digest", ui.Meta(digest.Hex())},
			{"Signature", ui.Val(hexutil.Encode(sig))},
		}
		fmt.Println(ui.KeyValueBlock("Permit signed", pairs))
		fmt.Println(ui.Hint(fmt.Sprintf("Apply with: nftreg permit %s %d %d %s", args[0], id, deadline, hexutil.Encode(sig))))
		return nil
	},
}

func init() {
	signPermitCmd.Flags().StringVar(&signPermitWallet, "wallet", "", "signing wallet name (defaults to the configured default)")
}
