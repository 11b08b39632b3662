package dip

import (
	"fmt"
	"io"
)

// Demo sends the same notification through the flag-driven notifier and
// through two injected notifiers, showing that the conforming design swaps
// channels without touching notifier code.
func Demo(w io.Writer) {
	const (
		message   = "your order has shipped"
		recipient = "casey@example.com"
	)

	fmt.Fprintln(w, "-- notifier owns its channels --")
	tight := NewTightNotifier(w)
	tight.SendNotification(message, recipient, true)
	tight.SendNotification(message, recipient, false)

	fmt.Fprintln(w, "-- notifier receives its channel --")
	NewNotifier(NewEmailService(w)).SendNotification(message, recipient)
	NewNotifier(NewSMSService(w)).SendNotification(message, recipient)
}
