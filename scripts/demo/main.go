// demo: runs a full registry lifecycle in memory (mint, approve, permit,
// transfer, burn) with freshly generated keys and prints the resulting token
// table plus every emitted event.
//
// Run from the module root:
//
//	go run ./scripts/demo
package main

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Mohsinsiddi/nftreg/internal/registry"
)

// ── config ────────────────────────────────────────────────────────────────────

const tokenCount = 5

var minter = common.HexToAddress("0x00000000000000000000000000000000000000A1")

// ── types ─────────────────────────────────────────────────────────────────────

type account struct {
	name string
	key  *ecdsa.PrivateKey
	addr common.Address
}

// ── main ──────────────────────────────────────────────────────────────────────

func main() {
	accounts := make([]account, 3)
	for i, name := range []string{"alice", "bob", "carol"} {
		key, err := crypto.GenerateKey()
		if err != nil {
			fail("generating key for %s: %v", name, err)
		}
		accounts[i] = account{name: name, key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}
	}
	alice, bob, carol := accounts[0], accounts[1], accounts[2]

	reg := registry.New(registry.Config{
		Name:     "Demo Collection",
		Symbol:   "DEMO",
		Version:  "1",
		BaseURI:  "https://tokens.example/",
		ChainID:  1337,
		Contract: common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Minter:   minter,
	}, registry.WithObserver(printEvent))

	fmt.Printf("domain separator: %s\n\n", reg.DomainSeparator().Hex())

	// Mint the collection to alice.
	var ids []registry.TokenID
	for i := 0; i < tokenCount; i++ {
		id, err := reg.Mint(minter, alice.addr, fmt.Sprintf("%d.json", i+1))
		if err != nil {
			fail("mint: %v", err)
		}
		ids = append(ids, id)
	}

	// Plain transfer and an operator grant.
	must(reg.Transfer(alice.addr, alice.addr, bob.addr, ids[0]))
	must(reg.SetApprovalForAll(alice.addr, carol.addr, true))
	must(reg.Transfer(carol.addr, alice.addr, carol.addr, ids[1]))

	// Off-chain permit: alice signs, bob presents the signature and then
	// pulls the token himself.
	deadline := uint64(time.Now().Add(time.Hour).Unix())
	digest, err := reg.PermitDigest(bob.addr, ids[2], deadline)
	if err != nil {
		fail("permit digest: %v", err)
	}
	sig, err := crypto.Sign(digest.Bytes(), alice.key)
	if err != nil {
		fail("sign: %v", err)
	}
	must(reg.Permit(bob.addr, ids[2], deadline, sig))
	must(reg.Transfer(bob.addr, alice.addr, bob.addr, ids[2]))

	// The same signature is dead now that the token moved.
	if err := reg.Permit(bob.addr, ids[2], deadline, sig); err != nil {
		fmt.Printf("\nreplayed permit rejected: %v\n", err)
	}

	must(reg.Burn(alice.addr, ids[4]))

	fmt.Println()
	printTokens(reg, accounts)
}

// ── output ────────────────────────────────────────────────────────────────────

func printEvent(ev registry.Event) {
	switch e := ev.(type) {
	case registry.TransferEvent:
		fmt.Printf("event  Transfer        %s -> %s  #%d\n", shortAddr(e.From), shortAddr(e.To), e.TokenID)
	case registry.ApprovalEvent:
		fmt.Printf("event  Approval        %s approves %s for #%d\n", shortAddr(e.Owner), shortAddr(e.Approved), e.TokenID)
	case registry.ApprovalForAllEvent:
		verb := "grants"
		if !e.Approved {
			verb = "revokes"
		}
		fmt.Printf("event  ApprovalForAll  %s %s %s\n", shortAddr(e.Owner), verb, shortAddr(e.Operator))
	}
}

func printTokens(reg *registry.Registry, accounts []account) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "TOKEN\tOWNER\tNONCE\tURI")
	fmt.Fprintln(w, strings.Repeat("-", 6)+"\t"+
		strings.Repeat("-", 14)+"\t"+
		strings.Repeat("-", 6)+"\t"+
		strings.Repeat("-", 28))

	for i := uint64(1); i <= reg.TotalSupply(); i++ {
		id, err := reg.TokenByIndex(i)
		if err != nil {
			fail("enumerating: %v", err)
		}
		owner, _ := reg.OwnerOf(id)
		nonce, _ := reg.Nonce(id)
		uri, _ := reg.TokenURI(id)
		fmt.Fprintf(w, "#%d\t%s\t%d\t%s\n", id, label(owner, accounts), nonce, uri)
	}
	w.Flush()

	fmt.Printf("\nsupply %d  minted %d  burned %d\n", reg.TotalSupply(), reg.Minted(), reg.Burned())
}

// ── helpers ───────────────────────────────────────────────────────────────────

func label(addr common.Address, accounts []account) string {
	for _, a := range accounts {
		if a.addr == addr {
			return a.name + " " + shortAddr(addr)
		}
	}
	return shortAddr(addr)
}

func shortAddr(addr common.Address) string {
	if addr == (common.Address{}) {
		return "0x0"
	}
	s := addr.Hex()
	return s[:6] + "…" + s[len(s)-4:]
}

func must(err error) {
	if err != nil {
		fail("%v", err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
