package structural

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Subsystems hidden behind the wallet facade

type account struct {
	name string
}

func (a *account) check(w io.Writer, name string) bool {
	if a.name != name {
		fmt.Fprintln(w, "account name does not match")
		return false
	}
	fmt.Fprintln(w, "account verified")
	return true
}

type securityCode struct {
	code int
}

func (s *securityCode) check(w io.Writer, code int) bool {
	if s.code != code {
		fmt.Fprintln(w, "security code is wrong")
		return false
	}
	fmt.Fprintln(w, "security code verified")
	return true
}

type balance struct {
	amount int
}

func (b *balance) credit(amount int) { b.amount += amount }

func (b *balance) debit(w io.Writer, amount int) bool {
	if b.amount < amount {
		fmt.Fprintln(w, "insufficient balance")
		return false
	}
	b.amount -= amount
	return true
}

type ledger struct{}

func (l *ledger) record(w io.Writer, entry string) {
	fmt.Fprintf(w, "ledger entry: %s\n", entry)
}

// WalletFacade exposes two simple calls over the four subsystems
type WalletFacade struct {
	account *account
	code    *securityCode
	balance *balance
	ledger  *ledger
}

// NewWalletFacade creates a wallet for the given owner
func NewWalletFacade(owner string, code int) *WalletFacade {
	return &WalletFacade{
		account: &account{name: owner},
		code:    &securityCode{code: code},
		balance: &balance{},
		ledger:  &ledger{},
	}
}

// Credit adds money after the subsystem checks pass
func (f *WalletFacade) Credit(w io.Writer, owner string, code, amount int) {
	fmt.Fprintf(w, "crediting %d\n", amount)
	if !f.account.check(w, owner) || !f.code.check(w, code) {
		return
	}
	f.balance.credit(amount)
	f.ledger.record(w, fmt.Sprintf("credit %d", amount))
}

// Debit removes money after the subsystem checks pass
func (f *WalletFacade) Debit(w io.Writer, owner string, code, amount int) {
	fmt.Fprintf(w, "debiting %d\n", amount)
	if !f.account.check(w, owner) || !f.code.check(w, code) {
		return
	}
	if f.balance.debit(w, amount) {
		f.ledger.record(w, fmt.Sprintf("debit %d", amount))
	}
}

// NewFacadeDemo creates the facade demo
func NewFacadeDemo() catalog.Demo {
	return catalog.New(
		"facade",
		catalog.GroupStructural,
		"Hides account, security, balance and ledger behind a wallet facade",
		func(w io.Writer) {
			wallet := NewWalletFacade("ada", 1234)

			wallet.Credit(w, "ada", 1234, 100)
			wallet.Debit(w, "ada", 1234, 30)
			wallet.Debit(w, "ada", 9999, 10)
		},
	)
}
