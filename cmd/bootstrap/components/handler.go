package components

import (
	"fitcoach-booking/internal/handler"
	"fitcoach-booking/internal/handler/api"
	"fitcoach-booking/internal/handler/middleware"
	"fitcoach-booking/internal/infra/live"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewAppointmentHandler,
		api.NewMemberHandler,
		api.NewNotificationHandler,
		api.NewLiveHandler,
		NewHealthHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Availability *api.AvailabilityHandler
	Appointment  *api.AppointmentHandler
	Member       *api.MemberHandler
	Notification *api.NotificationHandler
	Live         *api.LiveHandler
	Health       *api.HealthHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Availability: p.Availability,
		Appointment:  p.Appointment,
		Member:       p.Member,
		Notification: p.Notification,
		Live:         p.Live,
		Health:       p.Health,
	}
}

// NewHealthHandler checks postgres, and redis when the live feed uses it.
func NewHealthHandler(pool *pgxpool.Pool, redis *live.RedisFeed) *api.HealthHandler {
	checks := map[string]api.Pinger{"postgres": pool}
	if redis != nil {
		checks["redis"] = redis
	}
	return api.NewHealthHandler(checks)
}
