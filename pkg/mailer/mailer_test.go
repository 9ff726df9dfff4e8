package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_NoHostIsNoop(t *testing.T) {
	m := New(SMTPConfig{})
	assert.False(t, m.Enabled())
	assert.NoError(t, m.Send("a@b.c", "s", "b"))
}

func TestNew_WithHost(t *testing.T) {
	m := New(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "it@example.com"})
	assert.True(t, m.Enabled())
	_, ok := m.(*SMTPMailer)
	assert.True(t, ok)
}
