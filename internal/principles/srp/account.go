// Package srp demonstrates the Single Responsibility Principle with a bank
// account modeled twice: once as a type that both holds state and performs
// transactions, and once with those responsibilities split across two types.
//
// Neither design validates amounts. Deposits and withdrawals apply blindly and
// balances may go negative; the point of the example is where the behavior
// lives, not what it checks.
package srp

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the violating design: one type owns the account data, the
// transaction behavior, and the reporting.
type Account struct {
	Number  string
	Balance decimal.Decimal
}

// NewAccount opens an account with the given number and opening balance.
func NewAccount(number string, opening decimal.Decimal) *Account {
	return &Account{Number: number, Balance: opening}
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Withdraw subtracts amount from the balance.
func (a *Account) Withdraw(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}

// ReportInfo writes the account number and current balance to w.
func (a *Account) ReportInfo(w io.Writer) {
	fmt.Fprintf(w, "account %s: balance %s\n", a.Number, a.Balance)
}

// NewAccountNumber returns a fresh account number. Demos pass fixed numbers
// so their output stays deterministic; callers that don't care use this.
func NewAccountNumber() string {
	return "ACC-" + uuid.NewString()
}
