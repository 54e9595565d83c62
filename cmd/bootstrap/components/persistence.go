package components

import (
	"reservas-web/internal/infra/memstore"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		memstore.NewUnitOfWork,
	),
)
