package components

import (
	"fleet-reservations/internal/pkg/clock"
	"fleet-reservations/internal/usecase/commands"
	"fleet-reservations/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewVehicleQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationViews,
		commands.NewReservationCommands,
		commands.NewIssueCommands,
		commands.NewAuthCommands,
	),
)
