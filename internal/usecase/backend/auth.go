package backend

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/backend/auth_mock.go -package=backendmock

import (
	"context"

	"reservas-web/internal/domain/user"
	"reservas-web/internal/infra"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/pkg/jwt"
	"reservas-web/internal/pkg/password"
	"reservas-web/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserNotFound       = errs.New("user not found")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type AuthCommands interface {
	Login(ctx context.Context, creds user.Credentials) (string, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.Account, error)
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

// Login checks the credentials and issues a session token. Unknown emails,
// wrong passwords and inactive accounts all fail the same way.
func (a *authCommandsImpl) Login(ctx context.Context, creds user.Credentials) (string, error) {
	account, err := a.uow.Reads().AccountByEmail(ctx, creds.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := password.Compare(account.PasswordHash(), creds.Password().Value()); err != nil {
		if errs.Is(err, password.ErrComparisonFailed) {
			return "", ErrInvalidCredentials
		}
		return "", errs.Wrap(err, "check password")
	}
	if !account.IsActive() {
		return "", errs.Mark(ErrUserInactive, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(account.ID())
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}
	return token, nil
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{uow: uow}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.Account, error) {
	account, err := q.uow.Reads().AccountByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !account.IsActive() {
		return nil, ErrUserInactive
	}
	return account, nil
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID()
}
