package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/nftreg/internal/registry"
	"github.com/Mohsinsiddi/nftreg/internal/state"
	"github.com/Mohsinsiddi/nftreg/internal/ui"
)

// callerFlag names the acting account for mutating commands. Resolved
// against wallet names first, then treated as a raw address.
var callerFlag string

func addCallerFlag(c *cobra.Command) {
	c.Flags().StringVar(&callerFlag, "caller", "", "acting wallet name or 0x address (default: default wallet)")
}

// openRegistry loads the persisted registry with the event printer attached.
func openRegistry() (*registry.Registry, *state.FileStore, error) {
	store := state.NewFileStore(cfg.RegistryFile)
	reg, err := state.LoadRegistry(store, registry.WithObserver(printEvent))
	if err != nil {
		if err == state.ErrNoRegistry {
			return nil, nil, fmt.Errorf("no registry at %s; create one with `nftreg init`", store.Path())
		}
		return nil, nil, err
	}
	return reg, store, nil
}

// saveRegistry persists the registry after a successful mutation.
func saveRegistry(store *state.FileStore, reg *registry.Registry) error {
	if err := state.SaveRegistry(store, reg); err != nil {
		return fmt.Errorf("saving registry: %w", err)
	}
	return nil
}

// printEvent renders a registry notification on the terminal.
func printEvent(ev registry.Event) {
	switch e := ev.(type) {
	case registry.TransferEvent:
		from := ui.TruncateAddr(e.From.Hex())
		to := ui.TruncateAddr(e.To.Hex())
		switch {
		case e.From == (common.Address{}):
			fmt.Println(ui.Meta(fmt.Sprintf("  event  Transfer  ∅ → %s  #%d  (mint)", to, e.TokenID)))
		case e.To == (common.Address{}):
			fmt.Println(ui.Meta(fmt.Sprintf("  event  Transfer  %s → ∅  #%d  (burn)", from, e.TokenID)))
		default:
			fmt.Println(ui.Meta(fmt.Sprintf("  event  Transfer  %s → %s  #%d", from, to, e.TokenID)))
		}
	case registry.ApprovalEvent:
		fmt.Println(ui.Meta(fmt.Sprintf("  event  Approval  %s approves %s for #%d",
			ui.TruncateAddr(e.Owner.Hex()), ui.TruncateAddr(e.Approved.Hex()), e.TokenID)))
	case registry.ApprovalForAllEvent:
		verb := "grants"
		if !e.Approved {
			verb = "revokes"
		}
		fmt.Println(ui.Meta(fmt.Sprintf("  event  ApprovalForAll  %s %s operator %s",
			ui.TruncateAddr(e.Owner.Hex()), verb, ui.TruncateAddr(e.Operator.Hex()))))
	}
}

// resolveAddress maps a wallet name or hex string to an address.
func resolveAddress(arg string) (common.Address, error) {
	if common.IsHexAddress(arg) {
		return common.HexToAddress(arg), nil
	}
	mgr := newWalletManager()
	w, err := mgr.Get(arg)
	if err != nil {
		return common.Address{}, fmt.Errorf("%q is neither a wallet name nor a 0x address", arg)
	}
	if !common.IsHexAddress(w.Address) {
		return common.Address{}, fmt.Errorf("wallet %q has malformed address %q", arg, w.Address)
	}
	return common.HexToAddress(w.Address), nil
}

// resolveCaller resolves --caller, falling back to the default wallet.
func resolveCaller() (common.Address, error) {
	if callerFlag != "" {
		return resolveAddress(callerFlag)
	}
	if cfg.DefaultWallet != "" {
		return resolveAddress(cfg.DefaultWallet)
	}
	if w := newWalletManager().Default(); w != nil {
		return resolveAddress(w.Address)
	}
	return common.Address{}, fmt.Errorf("no --caller given and no default wallet configured")
}

// parseTokenID parses a decimal token ID argument.
func parseTokenID(arg string) (registry.TokenID, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid token ID %q: want a positive integer", arg)
	}
	return registry.TokenID(id), nil
}

// parseDeadline accepts a unix timestamp, an RFC3339 time, or a +duration
// offset from now (e.g. +24h).
func parseDeadline(arg string) (uint64, error) {
	if strings.HasPrefix(arg, "+") {
		d, err := time.ParseDuration(arg[1:])
		if err != nil {
			return 0, fmt.Errorf("invalid deadline offset %q: %w", arg, err)
		}
		return uint64(time.Now().Add(d).Unix()), nil
	}
	if ts, err := strconv.ParseUint(arg, 10, 64); err == nil {
		return ts, nil
	}
	when, err := time.Parse(time.RFC3339, arg)
	if err != nil {
		return 0, fmt.Errorf("invalid deadline %q: want unix seconds, RFC3339, or +duration", arg)
	}
	return uint64(when.Unix()), nil
}

// formatAddr renders the zero address as "none".
func formatAddr(a common.Address) string {
	if a == (common.Address{}) {
		return "none"
	}
	return a.Hex()
}
