package components

import (
	"hotelier/internal/pkg/clock"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewRoomCommands,
		commands.NewGuestCommands,
		commands.NewBillingCommands,
		commands.NewCatalogCommands,
		commands.NewMessageCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomQueries,
		queries.NewGuestQueries,
		queries.NewReservationQueries,
		queries.NewInvoiceQueries,
		queries.NewServiceQueries,
		queries.NewContractQueries,
		queries.NewMessageQueries,
		queries.NewDashboardQueries,
	),
)
