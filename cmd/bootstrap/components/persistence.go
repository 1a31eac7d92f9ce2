package components

import (
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/infra/readstore"
	"loyalty-engine/internal/infra/uow"
	"loyalty-engine/internal/usecase/queries"
	"loyalty-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Benefit
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BenefitReadQueries)),
		),
		fx.Annotate(
			readstore.NewBenefitReadStore,
			fx.As(new(queries.BenefitReadStore)),
		),
		// Client
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClientReadQueries)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
			fx.As(new(queries.ClientOrderReadStore)),
		),
		// Conversion
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ConversionReadQueries)),
		),
		fx.Annotate(
			readstore.NewConversionReadStore,
			fx.As(new(queries.ConversionReadStore)),
		),
	),
)

// Write repositories are bound to a transaction, so the unit of work builds them per Within call.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
