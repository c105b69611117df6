// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lavacar/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	customerController *controller.CustomerController
	washController     *controller.WashController
	expenseController  *controller.ExpenseController
	closingController  *controller.ClosingController
	reportController   *controller.ReportController
	allowedOrigins     []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	customerController *controller.CustomerController,
	washController *controller.WashController,
	expenseController *controller.ExpenseController,
	closingController *controller.ClosingController,
	reportController *controller.ReportController,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:   healthController,
		customerController: customerController,
		washController:     washController,
		expenseController:  expenseController,
		closingController:  closingController,
		reportController:   reportController,
		allowedOrigins:     allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		if r.customerController != nil {
			customers := api.Group("/clientes")
			{
				customers.GET("", r.customerController.List)
				customers.GET("/:id", r.customerController.Get)
				customers.POST("", r.customerController.Create)
				customers.PUT("/:id", r.customerController.Update)
				customers.DELETE("/:id", r.customerController.Delete)
			}
		}

		if r.washController != nil {
			washes := api.Group("/lavagens")
			{
				washes.GET("", r.washController.List)
				washes.GET("/resumo", r.washController.DaySummary)
				washes.POST("", r.washController.Register)
				washes.PUT("/:id", r.washController.Update)
				washes.DELETE("/:id", r.washController.Delete)
			}
		}

		if r.expenseController != nil {
			expenses := api.Group("/despesas")
			{
				expenses.GET("", r.expenseController.List)
				expenses.GET("/resumo", r.expenseController.Summary)
				expenses.POST("", r.expenseController.Create)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		if r.closingController != nil {
			closings := api.Group("/fechamento")
			{
				closings.POST("", r.closingController.CloseDay)
				closings.GET("", r.closingController.List)
				closings.GET("/resumo", r.closingController.DaySummary)
				closings.GET("/verificar/:data", r.closingController.CheckDay)
			}
		}

		if r.reportController != nil {
			reports := api.Group("/relatorios")
			{
				reports.GET("/diario", r.reportController.Daily)
				reports.GET("/diario/:data", r.reportController.Daily)
				reports.GET("/semanal", r.reportController.Weekly)
				reports.GET("/mensal", r.reportController.Monthly)
				reports.GET("/mensal/:mes", r.reportController.Monthly)
			}
		}
	}
}
