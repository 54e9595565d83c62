package queries

//go:generate mockgen -source=session.go -destination=../../../tests/mock/queries/session_mock.go -package=queriesmock

import (
	"context"
	"log/slog"

	"reservas-web/internal/domain/user"
	"reservas-web/internal/pkg/errs"
)

type SessionQueries interface {
	Check(ctx context.Context) user.Visibility
}

type sessionQueriesImpl struct {
	gateway SessionGateway
	logger  *slog.Logger
}

func NewSessionQueries(gateway SessionGateway, logger *slog.Logger) SessionQueries {
	return &sessionQueriesImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// Check probes the current user. Any failure, not only 401, leaves the page
// in the logged-out state.
func (q *sessionQueriesImpl) Check(ctx context.Context) user.Visibility {
	profile, err := q.gateway.CurrentUser(ctx)
	if err != nil {
		if !errs.Is(err, errs.ErrUnauthenticated) && ctx.Err() == nil {
			q.logger.Warn("Session check failed", "error", err)
		}
		return user.VisibilityFor(nil)
	}
	return user.VisibilityFor(profile)
}
