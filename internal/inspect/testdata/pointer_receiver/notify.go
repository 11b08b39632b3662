package notify

type MessageService interface {
	SendMessage(message, recipient string)
}

type EmailService struct {
	sent int
}

func (s *EmailService) SendMessage(message, recipient string) { s.sent++ }
