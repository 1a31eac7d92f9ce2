package components

import (
	"loyalty-engine/internal/pkg/clock"
	"loyalty-engine/internal/usecase"
	"loyalty-engine/internal/usecase/commands"
	"loyalty-engine/internal/usecase/queries"
	"loyalty-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewCalendar,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBenefitUseCase,
		commands.NewOrderUseCase,
		commands.NewConversionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBenefitQueries,
		queries.NewClientQueries,
		queries.NewOrderQueries,
		queries.NewConversionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
