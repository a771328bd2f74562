package components

import (
	"fitcoach-booking/internal/infra/readstore"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/infra/uow"
	"fitcoach-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotViewQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Appointment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentViewQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		// Member
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MemberReadQueries)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationViewQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Write repositories are created per transaction by the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
