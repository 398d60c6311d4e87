package routes

import (
	"resumatch/internal/delivery/http/handler"
	"resumatch/internal/delivery/http/middleware"
	"resumatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health   *handler.HealthHandler
	Auth     *handler.AuthHandler
	Resume   *handler.ResumeHandler
	Analysis *handler.AnalysisHandler
	Job      *handler.JobHandler
	Skill    *handler.SkillHandler
	WS       *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.Auth.RegisterRoutes(v1.Group("/auth"))

	authed := v1.Group("", r.AuthMW.Middleware())
	r.Resume.RegisterRoutes(authed)
	r.Analysis.RegisterRoutes(authed)
	r.Job.RegisterRoutes(authed)
	r.Skill.RegisterRoutes(authed)

	if r.WS != nil {
		app.Get("/ws/notifications", r.WS.HandleNotificationsWS)
	}
}
