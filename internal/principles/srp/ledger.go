package srp

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// AccountInfo is the conforming design's data holder: identity, balance, and
// reporting only. Transactions live elsewhere.
type AccountInfo struct {
	Number  string
	Balance decimal.Decimal
}

// NewAccountInfo creates an account record with an opening balance.
func NewAccountInfo(number string, opening decimal.Decimal) *AccountInfo {
	return &AccountInfo{Number: number, Balance: opening}
}

// ReportInfo writes the account number and current balance to w.
func (a *AccountInfo) ReportInfo(w io.Writer) {
	fmt.Fprintf(w, "account %s: balance %s\n", a.Number, a.Balance)
}

// TransactionHandler performs deposits and withdrawals against one bound
// AccountInfo. It holds no state of its own beyond the binding.
type TransactionHandler struct {
	account *AccountInfo
}

// NewTransactionHandler binds a handler to one account.
func NewTransactionHandler(account *AccountInfo) *TransactionHandler {
	return &TransactionHandler{account: account}
}

// Deposit adds amount to the bound account's balance.
func (h *TransactionHandler) Deposit(amount decimal.Decimal) {
	h.account.Balance = h.account.Balance.Add(amount)
}

// Withdraw subtracts amount from the bound account's balance.
func (h *TransactionHandler) Withdraw(amount decimal.Decimal) {
	h.account.Balance = h.account.Balance.Sub(amount)
}
