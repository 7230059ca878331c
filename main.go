package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"geoportal/collections"
	"geoportal/handlers"
	"geoportal/services"
)

func main() {
	app := pocketbase.New()

	// Create collections, seed data and run migrations on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateLegacyStatuses(app); err != nil {
			log.Printf("Warning: status migration failed: %v", err)
		}
		if err := collections.MigrateDefaultReportSettings(app); err != nil {
			log.Printf("Warning: report settings migration failed: %v", err)
		}
		return se.Next()
	})

	// Chart snapshots live for the process lifetime; the dashboard
	// re-posts them whenever it re-renders.
	chartStore := services.NewChartStore()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Apply report period middleware globally
		se.Router.BindFunc(handlers.ReportPeriodMiddleware(app))

		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/dashboard", handlers.HandleDashboard(app))
		se.Router.GET("/api/dashboard/metrics", handlers.HandleDashboardMetrics(app))
		se.Router.POST("/api/dashboard/charts/{chartId}", handlers.HandleChartSnapshot(chartStore))

		// ── Reports ──────────────────────────────────────────────
		se.Router.GET("/reports/bi/pdf", handlers.HandleBIReportPDF(app, chartStore))
		se.Router.GET("/reports/{type}/excel", handlers.HandleListReportExcel(app))
		se.Router.GET("/reports/{type}/pdf", handlers.HandleListReportPDF(app))

		// ── Project CRUD ─────────────────────────────────────────
		se.Router.GET("/projects", handlers.HandleProjectList(app))
		se.Router.POST("/projects", handlers.HandleProjectSave(app))
		se.Router.POST("/projects/{id}/save", handlers.HandleProjectUpdate(app))
		se.Router.DELETE("/projects/{id}", handlers.HandleProjectDelete(app))

		// ── Inventory ────────────────────────────────────────────
		se.Router.GET("/inventory", handlers.HandleInventoryList(app))
		se.Router.POST("/inventory", handlers.HandleInventorySave(app))
		se.Router.POST("/inventory/{id}/stock", handlers.HandleInventoryAdjustStock(app))
		se.Router.DELETE("/inventory/{id}", handlers.HandleInventoryDelete(app))

		// ── Quotes ───────────────────────────────────────────────
		se.Router.GET("/quotes", handlers.HandleQuoteList(app))
		se.Router.POST("/quotes", handlers.HandleQuoteSave(app))
		se.Router.POST("/quotes/{id}/status", handlers.HandleQuoteStatus(app))
		se.Router.DELETE("/quotes/{id}", handlers.HandleQuoteDelete(app))
		se.Router.GET("/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))

		// ── Purchase orders ──────────────────────────────────────
		se.Router.GET("/purchases", handlers.HandlePurchaseList(app))
		se.Router.POST("/purchases", handlers.HandlePurchaseSave(app))
		se.Router.POST("/purchases/{id}/receive", handlers.HandlePurchaseReceive(app))
		se.Router.DELETE("/purchases/{id}", handlers.HandlePurchaseDelete(app))

		// ── Employees / payroll ──────────────────────────────────
		se.Router.GET("/employees", handlers.HandleEmployeeList(app))
		se.Router.POST("/employees", handlers.HandleEmployeeSave(app))
		se.Router.DELETE("/employees/{id}", handlers.HandleEmployeeDelete(app))
		se.Router.GET("/employees/{id}/payslip", handlers.HandlePayslipPDF(app))
		se.Router.GET("/employees/{id}/vacation/pdf", handlers.HandleVacationRequestPDF(app))
		se.Router.POST("/employees/{id}/vacation", handlers.HandleVacationProcess(app))

		// Redirect home to the dashboard
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/dashboard")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
