package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fitcoach-booking/internal/domain/user"
	"fitcoach-booking/internal/handler/api"
	"fitcoach-booking/internal/handler/middleware"
	"fitcoach-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Appointment  *api.AppointmentHandler
	Member       *api.MemberHandler
	Notification *api.NotificationHandler
	Live         *api.LiveHandler
	Health       *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	trainer := authMiddleware.RequireRole(user.RoleCoach, user.RoleAdmin)
	member := authMiddleware.RequireRole(user.RoleMember)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Member.Me},
		})

		coaches := apiGroup.Group("/coaches")
		addRoutes(coaches, []route{
			{Method: http.MethodPost, Path: "/me/slots/preview", Handler: h.Availability.Preview, Mw: []gin.HandlerFunc{trainer}},
			{Method: http.MethodPost, Path: "/me/slots", Handler: h.Availability.Publish, Mw: []gin.HandlerFunc{trainer}},
			{Method: http.MethodDelete, Path: "/me/slots/:id", Handler: h.Availability.Delete, Mw: []gin.HandlerFunc{trainer}},
			{Method: http.MethodGet, Path: "/me/appointments", Handler: h.Appointment.ListForCoach, Mw: []gin.HandlerFunc{trainer}},
			{Method: http.MethodGet, Path: "/:coachID/slots", Handler: h.Availability.List},
			{Method: http.MethodPost, Path: "/:coachID/slots/:slotID/claim", Handler: h.Appointment.Claim, Mw: []gin.HandlerFunc{member}},
		})

		members := apiGroup.Group("/members")
		addRoutes(members, []route{
			{Method: http.MethodGet, Path: "/me/appointments", Handler: h.Appointment.ListForMember, Mw: []gin.HandlerFunc{member}},
			{Method: http.MethodGet, Path: "/:memberID/credit", Handler: h.Member.Credit},
		})

		appointments := apiGroup.Group("/appointments")
		addRoutes(appointments, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Appointment.Approve, Mw: []gin.HandlerFunc{trainer}},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Appointment.Reject, Mw: []gin.HandlerFunc{trainer}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointment.Cancel},
		})

		notifications := apiGroup.Group("/notifications")
		addRoutes(notifications, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
			{Method: http.MethodGet, Path: "/unread-count", Handler: h.Notification.UnreadCount},
			{Method: http.MethodPost, Path: "/read-all", Handler: h.Notification.MarkAllRead},
			{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
		})

		live := apiGroup.Group("/live")
		addRoutes(live, []route{
			{Method: http.MethodGet, Path: "/coaches/:coachID/calendar", Handler: h.Live.Calendar},
			{Method: http.MethodGet, Path: "/notifications", Handler: h.Live.Inbox},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
