package dip

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ MessageService = (*EmailService)(nil)
	_ MessageService = (*SMSService)(nil)
)

func TestTightNotifier_BranchesOnFlag(t *testing.T) {
	var buf bytes.Buffer
	n := NewTightNotifier(&buf)

	n.SendNotification("hello", "casey@example.com", true)
	n.SendNotification("hello", "casey@example.com", false)

	assert.Equal(t,
		"[email] to casey@example.com: hello\n[sms] to casey@example.com: hello\n",
		buf.String())
}

func TestNotifier_DelegatesToInjectedService(t *testing.T) {
	tests := []struct {
		name    string
		service func(*bytes.Buffer) MessageService
		want    string
	}{
		{
			"email channel",
			func(b *bytes.Buffer) MessageService { return NewEmailService(b) },
			"[email] to casey@example.com: hello\n",
		},
		{
			"sms channel",
			func(b *bytes.Buffer) MessageService { return NewSMSService(b) },
			"[sms] to casey@example.com: hello\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n := NewNotifier(tt.service(&buf))
			n.SendNotification("hello", "casey@example.com")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// recorder is a test double proving the notifier type-checks against the
// abstraction alone.
type recorder struct {
	message, recipient string
}

func (r *recorder) SendMessage(message, recipient string) {
	r.message, r.recipient = message, recipient
}

func TestNotifier_KnowsOnlyTheContract(t *testing.T) {
	rec := &recorder{}
	NewNotifier(rec).SendNotification("ping", "ops")

	assert.Equal(t, "ping", rec.message)
	assert.Equal(t, "ops", rec.recipient)
}

func TestDemo_Output(t *testing.T) {
	var buf bytes.Buffer
	Demo(&buf)

	out := buf.String()
	require.Contains(t, out, "[email] to casey@example.com: your order has shipped")
	require.Contains(t, out, "[sms] to casey@example.com: your order has shipped")
	// Each channel fires once in the violating half and once in the conforming half.
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("[email]")))
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("[sms]")))
}
