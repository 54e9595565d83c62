package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"net/http"

	"reservas-web/internal/domain/user"
	"reservas-web/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrLoginFailed        = errs.New("login failed")
)

type AuthCommands interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
}

type authCommandsImpl struct {
	gateway AuthGateway
	logger  *slog.Logger
}

func NewAuthCommands(gateway AuthGateway, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		gateway: gateway,
		logger:  logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) error {
	creds, err := user.NewCredentials(email, password)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	if err := a.gateway.Login(ctx, creds); err != nil {
		switch errs.RejectionStatus(err) {
		case http.StatusBadRequest, http.StatusUnauthorized:
			return errs.Mark(err, ErrInvalidCredentials)
		}
		a.logger.Warn("Login failed", "error", err)
		return errs.Mark(err, ErrLoginFailed)
	}
	return nil
}

// Logout asks the backend to end the session. A session that had already
// expired counts as logged out.
func (a *authCommandsImpl) Logout(ctx context.Context) error {
	err := a.gateway.Logout(ctx)
	if err != nil && !errs.Is(err, errs.ErrUnauthenticated) {
		a.logger.Warn("Logout failed", "error", err)
		return err
	}
	return nil
}
