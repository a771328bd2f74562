package components

import (
	"fitcoach-booking/internal/pkg/clock"
	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/usecase"
	"fitcoach-booking/internal/usecase/commands"
	"fitcoach-booking/internal/usecase/queries"

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
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	func(cfg config.Config) config.WorkerConfig { return cfg.Worker },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAvailabilityUseCase,
		commands.NewBookingUseCase,
		commands.NewAppointmentUseCase,
		commands.NewNotificationUseCase,
		commands.NewNotificationDispatcher,
		commands.NewMaintenanceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(slots queries.SlotReadStore, appointments queries.AppointmentReadStore, clk clock.Clock, cfg config.BookingConfig) queries.SlotQueries {
			return queries.NewSlotQueries(slots, appointments, clk, cfg.DefaultListWindow)
		},
		func(store queries.AppointmentReadStore, clk clock.Clock, cfg config.BookingConfig) queries.AppointmentQueries {
			return queries.NewAppointmentQueries(store, clk, cfg.DefaultListWindow)
		},
		queries.NewMemberQueries,
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
