package route

import (
	"momovender/src/internal/delivery/http"
	"momovender/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                    *fiber.App
	AuthController         *http.AuthController
	TransactionController  *http.TransactionController
	FloatController        *http.FloatController
	PayrollController      *http.PayrollController
	DashboardController    *http.DashboardController
	AgentController        *http.AgentController
	BranchController       *http.BranchController
	NotificationController *http.NotificationController
	ReportController       *http.ReportController
	AuthMiddleware         fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	c.SetupPublicRoutes()
	c.SetupProtectedRoutes()
}

func (c *RouteConfig) SetupPublicRoutes() {
	auth := c.App.Group("/api/auth")
	auth.Post("/register", c.AuthController.Register)
	auth.Post("/login", c.AuthController.Login)
}

func (c *RouteConfig) SetupProtectedRoutes() {
	api := c.App.Group("/api", c.AuthMiddleware)

	api.Post("/auth/logout", c.AuthController.Logout)

	api.Get("/profile", c.AuthController.Profile)
	api.Put("/profile", c.AuthController.UpdateProfile)
	api.Put("/profile/password", c.AuthController.ChangePassword)

	transactions := api.Group("/transactions", middleware.TransactingOnly())
	transactions.Post("/momo", c.TransactionController.LogMomo)
	transactions.Post("/bank", c.TransactionController.LogBank)
	transactions.Post("/airtime", c.TransactionController.LogAirtime)
	transactions.Post("/sim", c.TransactionController.LogSim)
	transactions.Post("/susu", c.TransactionController.LogSusu)
	transactions.Get("/:service", c.TransactionController.List)

	admin := api.Group("/admin", middleware.AdminOnly())
	admin.Get("/dashboard", c.DashboardController.Admin)
	admin.Get("/analytics/sales", c.DashboardController.SalesAnalytics)
	admin.Get("/agent-ranking", c.DashboardController.Ranking)
	admin.Get("/agents/stats", c.AgentController.Stats)
	admin.Get("/agents", c.AgentController.List)
	admin.Post("/agents", c.AgentController.Create)
	admin.Get("/agents/:id", c.AgentController.Get)
	admin.Put("/agents/:id", c.AgentController.Update)
	admin.Delete("/agents/:id", c.AgentController.Delete)
	admin.Patch("/agents/:id/status", c.AgentController.SetActive)
	admin.Get("/branches", c.BranchController.List)
	admin.Post("/branches", c.BranchController.Create)
	admin.Put("/branches/:id", c.BranchController.Update)
	admin.Delete("/branches/:id", c.BranchController.Delete)
	admin.Get("/reports", c.ReportController.Report)
	admin.Get("/float", c.FloatController.ListAgents)
	admin.Post("/float", c.FloatController.TopUp)
	admin.Post("/float/deduct", c.FloatController.Deduct)
	admin.Get("/float/stats", c.FloatController.Stats)
	admin.Get("/float/history", c.FloatController.History)

	manager := api.Group("/manager", middleware.ManagerOnly())
	manager.Get("/dashboard", c.DashboardController.Manager)
	manager.Get("/agents", c.AgentController.List)
	manager.Post("/agents", c.AgentController.Create)
	manager.Put("/agents/:id", c.AgentController.Update)
	manager.Delete("/agents/:id", c.AgentController.Delete)
	manager.Get("/float/requests", c.FloatController.PendingRequests)
	manager.Post("/float/requests/:id/process", c.FloatController.ProcessRequest)

	employee := api.Group("/employee")
	employee.Get("/dashboard", c.DashboardController.Employee)
	employee.Get("/activity", c.DashboardController.EmployeeActivity)
	employee.Post("/float/request", c.FloatController.CreateRequest)

	payroll := api.Group("/payroll", middleware.AdminOnly())
	payroll.Get("/admin", c.PayrollController.Reconcile)
	payroll.Post("/admin/pay", c.PayrollController.Pay)

	api.Get("/notifications", c.NotificationController.List)
	api.Post("/notifications/read", c.NotificationController.MarkRead)

	chat := api.Group("/chat")
	chat.Post("/send", c.NotificationController.SendChat)
	chat.Get("/online", c.NotificationController.Online)
	chat.Get("/:peerId", c.NotificationController.ChatHistory)
}
