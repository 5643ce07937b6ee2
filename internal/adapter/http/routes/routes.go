package routes

import (
	"log"

	_ "assignment_ledger/docs" // generated by swag init
	request "assignment_ledger/internal/adapter/http/dto/request"
	"assignment_ledger/internal/adapter/http/handlers"
	"assignment_ledger/internal/adapter/persistence/repository"
	"assignment_ledger/internal/infrastructure/config"
	"assignment_ledger/internal/infrastructure/database"
	"assignment_ledger/internal/infrastructure/payments"
	"assignment_ledger/internal/usecase"
	"assignment_ledger/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Assignment *handlers.AssignmentHandler
	Ledger     *handlers.LedgerHandler
	Catalog    *handlers.CatalogHandler
	Calendar   *handlers.CalendarHandler
}

// Run will start the server
func Run() {
	cfg := config.Load()
	router := NewRouter(buildHandlers(cfg))

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with middlewares, docs and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	if err := request.RegisterBindings(); err != nil {
		log.Fatalf("Failed to register request validations: %v", err)
	}

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAssignmentRoutes(v1, h.Assignment, h.Ledger)
	addBeneficiaryRoutes(v1, h.Assignment, h.Ledger)
	addCatalogRoutes(v1, h.Catalog)
	addCalendarRoutes(v1, h.Calendar)
	return router
}

func buildHandlers(cfg config.Config) Handlers {
	ddb := database.ConnectDynamoDB(cfg)

	assignmentRepo := repository.NewAssignmentDynamoRepository(ddb, cfg.AssignmentsTable)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb, cfg.CatalogTable)
	calendarRepo := repository.NewCalendarDynamoRepository(ddb, cfg.AcademicYearsTable, cfg.TermsTable)
	receiptRepo := repository.NewPaymentReceiptDynamoRepository(ddb, cfg.PaymentsTable)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	assignmentUseCase := usecase.NewAssignmentUseCase(assignmentRepo, catalogRepo, calendarRepo)
	ledgerUseCase := usecase.NewLedgerUseCase(assignmentRepo, receiptRepo, calendarRepo, paymentGateway, usecase.PaymentOptions{
		MockMode:          cfg.PaymentGatewayMock,
		SandboxPayerEmail: cfg.SandboxPayerEmail,
	})

	return Handlers{
		Assignment: handlers.NewAssignmentHandler(assignmentUseCase),
		Ledger:     handlers.NewLedgerHandler(ledgerUseCase, cfg.PaymentGatewayMock),
		Catalog:    handlers.NewCatalogHandler(usecase.NewCatalogUseCase(catalogRepo)),
		Calendar:   handlers.NewCalendarHandler(usecase.NewCalendarUseCase(calendarRepo)),
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
