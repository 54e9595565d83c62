package backend

//go:generate mockgen -source=contact.go -destination=../../../tests/mock/backend/contact_mock.go -package=backendmock

import (
	"context"
	"log/slog"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/pkg/clock"
	"reservas-web/internal/usecase/shared"
)

type ContactCommands interface {
	Submit(ctx context.Context, msg contact.Message) error
}

type contactCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewContactCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ContactCommands {
	return &contactCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

// Submit files the message in the inbox. Delivery by mail is out of scope for
// the development backend; the message is logged instead.
func (c *contactCommandsImpl) Submit(ctx context.Context, msg contact.Message) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Contacts().Create(ctx, msg, c.clock.Now())
	})
	if err != nil {
		return err
	}

	c.logger.Info("Contact message received",
		"email", msg.Email(),
		"subject", msg.Subject(),
	)
	return nil
}
