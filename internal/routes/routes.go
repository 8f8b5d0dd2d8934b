package routes

import (
	"time"

	"github.com/deboeng/careers-backend/internal/config"
	"github.com/deboeng/careers-backend/internal/handlers"
	"github.com/deboeng/careers-backend/internal/middleware"
	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	healthHandler *handlers.HealthHandler,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Job board — public
	api.Get("/jobs", jobHandler.List)
	api.Get("/jobs/:id", jobHandler.Get)

	// Applicant endpoints (JWT + principal resolution)
	authed := api.Group("/applications", middleware.JWTProtected(cfg), middleware.ResolvePrincipal(db))
	authed.Post("/", applicationHandler.Submit)
	authed.Get("/", applicationHandler.ListMine)
	authed.Get("/:id", applicationHandler.Get)
	authed.Delete("/:id", applicationHandler.Withdraw)

	// Admin panel — capability checked per route
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.ResolvePrincipal(db))
	admin.Get("/applications", middleware.RequireOperation(policy.OpListAllApplications), adminHandler.ListApplications)
	admin.Get("/jobs/:job_id/applications", middleware.RequireOperation(policy.OpListAllApplications), adminHandler.ListJobApplications)
	admin.Put("/applications/:id/status", middleware.RequireOperation(policy.OpChangeApplicationStatus), applicationHandler.UpdateStatus)
	admin.Get("/applications/:id/history", middleware.RequireOperation(policy.OpViewAnyApplication), applicationHandler.History)

	admin.Get("/users", middleware.RequireOperation(policy.OpListUsers), adminHandler.ListUsers)
	admin.Get("/users/:id", middleware.RequireOperation(policy.OpViewUserDetail), adminHandler.GetUser)
	admin.Put("/users/:id/role", middleware.RequireOperation(policy.OpChangeUserRole), adminHandler.SetUserRole)
	admin.Delete("/users/:id", middleware.RequireOperation(policy.OpDeleteUser), adminHandler.DeleteUser)

	admin.Get("/dashboard", middleware.RequireOperation(policy.OpViewDashboard), adminHandler.DashboardStats)

	admin.Post("/jobs", middleware.RequireOperation(policy.OpManageJobPostings), jobHandler.Create)
	admin.Put("/jobs/:id", middleware.RequireOperation(policy.OpManageJobPostings), jobHandler.Update)
}
