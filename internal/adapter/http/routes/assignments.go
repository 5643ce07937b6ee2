package routes

import (
	"assignment_ledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAssignments   = "/assignments"
	PathBeneficiaries = "/beneficiaries"
	PathCatalogItems  = "/catalog-items"
	PathCalendar      = "/calendar"
)

func addAssignmentRoutes(rg *gin.RouterGroup, assignmentHandler *handlers.AssignmentHandler, ledgerHandler *handlers.LedgerHandler) {
	assignments := rg.Group(PathAssignments)
	{
		assignments.POST("", assignmentHandler.CreateAssignment)
		assignments.GET("/:id", assignmentHandler.GetAssignment)
		assignments.DELETE("/:id", assignmentHandler.RemoveAssignment)
		assignments.PATCH("/:id/enable", assignmentHandler.EnableAssignment)
		assignments.PATCH("/:id/disable", assignmentHandler.DisableAssignment)
		assignments.PATCH("/:id/time-settings", assignmentHandler.AdjustTimeSettings)
		assignments.POST("/:id/receptions", assignmentHandler.RecordReception)
		assignments.GET("/:id/summary", assignmentHandler.GetSummary)

		// Fee bridge write-back and online collection.
		assignments.POST("/:id/payments", ledgerHandler.RecordPayment)
		assignments.POST("/:id/payments/online", ledgerHandler.CollectOnline)
		assignments.GET("/:id/payments", ledgerHandler.ListReceipts)
		assignments.POST("/:id/payments/:payment_id/apply", ledgerHandler.ApplyReceipt)
	}
}

func addBeneficiaryRoutes(rg *gin.RouterGroup, assignmentHandler *handlers.AssignmentHandler, ledgerHandler *handlers.LedgerHandler) {
	beneficiaries := rg.Group(PathBeneficiaries)
	{
		beneficiaries.GET("/:id/assignments", assignmentHandler.ListBeneficiaryAssignments)
		beneficiaries.GET("/:id/ledger", ledgerHandler.GetBeneficiaryLedger)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalogItems)
	{
		catalog.POST("", catalogHandler.CreateCatalogItem)
		catalog.GET("/:id", catalogHandler.GetCatalogItem)
	}
}

func addCalendarRoutes(rg *gin.RouterGroup, calendarHandler *handlers.CalendarHandler) {
	calendar := rg.Group(PathCalendar)
	{
		calendar.GET("", calendarHandler.GetCalendar)
		calendar.POST("/years", calendarHandler.CreateYear)
		calendar.POST("/terms", calendarHandler.CreateTerm)
	}
}
