package components

import (
	"fleet-reservations/internal/infra/capability"
	"fleet-reservations/internal/infra/db"
	"fleet-reservations/internal/infra/readstore"
	"fleet-reservations/internal/infra/uow"
	"fleet-reservations/internal/usecase/commands"
	"fleet-reservations/internal/usecase/queries"
	"fleet-reservations/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Read stores
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Capability resolver
		fx.Annotate(
			capability.NewStaticResolver,
			fx.As(new(commands.CapabilityResolver)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
