package commands

//go:generate mockgen -source=contact.go -destination=../../../tests/mock/commands/contact_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"sync"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/pkg/errs"
)

type ContactCommands interface {
	Send(ctx context.Context, form contact.Form) (contact.Result, error)
}

type contactCommandsImpl struct {
	gateway ContactGateway
	logger  *slog.Logger

	mu      sync.Mutex
	sending bool
}

func NewContactCommands(gateway ContactGateway, logger *slog.Logger) ContactCommands {
	return &contactCommandsImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// Send posts a complete message. Only one message is in flight at a time; a
// second Send meanwhile fails with errs.ErrSubmissionInProgress.
func (c *contactCommandsImpl) Send(ctx context.Context, form contact.Form) (contact.Result, error) {
	msg, err := contact.NewMessage(form)
	if err != nil {
		return contact.ValidationResult(), nil
	}

	if !c.begin() {
		return contact.Result{}, errs.ErrSubmissionInProgress
	}
	defer c.finish()

	sent, err := c.gateway.SendContact(ctx, msg)
	switch {
	case err == nil && sent:
		return contact.SentResult(), nil
	case err == nil:
		return contact.NotSentResult(), nil
	case ctx.Err() != nil:
		return contact.Result{}, errs.Wrap(ctx.Err(), "send contact message")
	case errs.Is(err, errs.ErrRejected):
		c.logger.Info("Contact message rejected", "status_code", errs.RejectionStatus(err))
		return contact.NotSentResult(), nil
	default:
		c.logger.Warn("Contact request failed", "error", err)
		return contact.ConnectionResult(), nil
	}
}

func (c *contactCommandsImpl) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sending {
		return false
	}
	c.sending = true
	return true
}

func (c *contactCommandsImpl) finish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sending = false
}
