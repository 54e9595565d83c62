package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/domain/user"
)

type ReservationGateway interface {
	CreateReservation(ctx context.Context, req reservation.Request) error
}

type ContactGateway interface {
	SendContact(ctx context.Context, msg contact.Message) (bool, error)
}

type AuthGateway interface {
	Login(ctx context.Context, creds user.Credentials) error
	Logout(ctx context.Context) error
}
