// Package dip demonstrates the Dependency Inversion Principle with a
// notification service. The violating notifier constructs and owns two
// concrete senders and branches between them; the conforming notifier
// depends on one MessageService abstraction injected at construction.
package dip

import (
	"fmt"
	"io"
)

// EmailSender is a concrete low-level channel in the violating design.
type EmailSender struct {
	out io.Writer
}

// SendEmail delivers message to recipient by email.
func (s *EmailSender) SendEmail(message, recipient string) {
	fmt.Fprintf(s.out, "[email] to %s: %s\n", recipient, message)
}

// SMSSender is the other concrete channel in the violating design.
type SMSSender struct {
	out io.Writer
}

// SendSMS delivers message to recipient by SMS.
func (s *SMSSender) SendSMS(message, recipient string) {
	fmt.Fprintf(s.out, "[sms] to %s: %s\n", recipient, message)
}

// TightNotifier is the violating high-level module: it self-constructs both
// concrete senders and picks one with a boolean flag at every call site.
type TightNotifier struct {
	email *EmailSender
	sms   *SMSSender
}

// NewTightNotifier builds a notifier that owns its channels outright.
func NewTightNotifier(out io.Writer) *TightNotifier {
	return &TightNotifier{
		email: &EmailSender{out: out},
		sms:   &SMSSender{out: out},
	}
}

// SendNotification branches on viaEmail to choose a concrete channel.
func (n *TightNotifier) SendNotification(message, recipient string, viaEmail bool) {
	if viaEmail {
		n.email.SendEmail(message, recipient)
	} else {
		n.sms.SendSMS(message, recipient)
	}
}
