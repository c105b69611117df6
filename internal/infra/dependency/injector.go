// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/lavacar/backend/config"
	"github.com/lavacar/backend/internal/application/usecase/closing"
	"github.com/lavacar/backend/internal/application/usecase/customer"
	"github.com/lavacar/backend/internal/application/usecase/expense"
	"github.com/lavacar/backend/internal/application/usecase/report"
	"github.com/lavacar/backend/internal/application/usecase/wash"
	"github.com/lavacar/backend/internal/infra/server/router"
	"github.com/lavacar/backend/internal/integration/entrypoint/controller"
	"github.com/lavacar/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	customerRepo := persistence.NewCustomerRepository(db)
	washRepo := persistence.NewWashRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	closingRepo := persistence.NewClosingRepository(db)
	reportRepo := persistence.NewReportRepository(db)

	// Create customer use cases
	listCustomersUseCase := customer.NewListCustomersUseCase(customerRepo, washRepo)
	getCustomerUseCase := customer.NewGetCustomerUseCase(customerRepo, washRepo)
	createCustomerUseCase := customer.NewCreateCustomerUseCase(customerRepo)
	updateCustomerUseCase := customer.NewUpdateCustomerUseCase(customerRepo)
	deleteCustomerUseCase := customer.NewDeleteCustomerUseCase(customerRepo)

	// Create wash use cases
	listWashesUseCase := wash.NewListWashesUseCase(washRepo)
	registerWashUseCase := wash.NewRegisterWashUseCase(washRepo, customerRepo)
	updateWashUseCase := wash.NewUpdateWashUseCase(washRepo, customerRepo)
	deleteWashUseCase := wash.NewDeleteWashUseCase(washRepo)
	washDaySummaryUseCase := wash.NewGetDaySummaryUseCase(reportRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	expenseSummaryUseCase := expense.NewGetSummaryUseCase(reportRepo)

	// Create closing use cases
	closeDayUseCase := closing.NewCloseDayUseCase(closingRepo, reportRepo)
	listClosingsUseCase := closing.NewListClosingsUseCase(closingRepo, cfg.Closing.ListLimit)
	checkDayUseCase := closing.NewCheckDayUseCase(closingRepo)
	closingDaySummaryUseCase := closing.NewGetDaySummaryUseCase(reportRepo)

	// Create report use cases
	dailyReportUseCase := report.NewGetDailyReportUseCase(washRepo, expenseRepo)
	weeklyReportUseCase := report.NewGetWeeklyReportUseCase(reportRepo)
	monthlyReportUseCase := report.NewGetMonthlyReportUseCase(reportRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	customerController := controller.NewCustomerController(
		listCustomersUseCase,
		getCustomerUseCase,
		createCustomerUseCase,
		updateCustomerUseCase,
		deleteCustomerUseCase,
	)

	washController := controller.NewWashController(
		listWashesUseCase,
		registerWashUseCase,
		updateWashUseCase,
		deleteWashUseCase,
		washDaySummaryUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		expenseSummaryUseCase,
	)

	closingController := controller.NewClosingController(
		closeDayUseCase,
		listClosingsUseCase,
		checkDayUseCase,
		closingDaySummaryUseCase,
	)

	reportController := controller.NewReportController(
		dailyReportUseCase,
		weeklyReportUseCase,
		monthlyReportUseCase,
	)

	appRouter := router.NewRouter(
		healthController,
		customerController,
		washController,
		expenseController,
		closingController,
		reportController,
		cfg.CORS.AllowedOrigins,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: appRouter,
	}
}
