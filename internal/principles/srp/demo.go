package srp

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Demo runs both designs through the same deposit/withdraw sequence and
// reports each, showing that only the distribution of responsibility differs.
func Demo(w io.Writer) {
	opening := decimal.NewFromInt(100)
	deposit := decimal.NewFromInt(50)
	withdrawal := decimal.NewFromInt(30)

	fmt.Fprintln(w, "-- one type does everything --")
	acct := NewAccount("ACC-1001", opening)
	acct.Deposit(deposit)
	acct.Withdraw(withdrawal)
	acct.ReportInfo(w)

	fmt.Fprintln(w, "-- data holder + transaction handler --")
	info := NewAccountInfo("ACC-1001", opening)
	handler := NewTransactionHandler(info)
	handler.Deposit(deposit)
	handler.Withdraw(withdrawal)
	info.ReportInfo(w)
}
