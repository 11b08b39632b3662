package dip

import (
	"fmt"
	"io"
)

// MessageService is the abstraction both the notifier and the concrete
// channels depend on.
type MessageService interface {
	SendMessage(message, recipient string)
}

// EmailService implements MessageService over email.
type EmailService struct {
	out io.Writer
}

// NewEmailService creates an email channel that reports deliveries on out.
func NewEmailService(out io.Writer) *EmailService {
	return &EmailService{out: out}
}

// SendMessage implements MessageService.
func (s *EmailService) SendMessage(message, recipient string) {
	fmt.Fprintf(s.out, "[email] to %s: %s\n", recipient, message)
}

// SMSService implements MessageService over SMS.
type SMSService struct {
	out io.Writer
}

// NewSMSService creates an SMS channel that reports deliveries on out.
func NewSMSService(out io.Writer) *SMSService {
	return &SMSService{out: out}
}

// SendMessage implements MessageService.
func (s *SMSService) SendMessage(message, recipient string) {
	fmt.Fprintf(s.out, "[sms] to %s: %s\n", recipient, message)
}

// Notifier is the conforming high-level module. It knows only the
// MessageService contract; which channel fires is decided by whoever
// constructs it.
type Notifier struct {
	service MessageService
}

// NewNotifier builds a notifier around an injected message service.
func NewNotifier(service MessageService) *Notifier {
	return &Notifier{service: service}
}

// SendNotification delegates to the injected service.
func (n *Notifier) SendNotification(message, recipient string) {
	n.service.SendMessage(message, recipient)
}
