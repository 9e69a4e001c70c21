package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	_ "maisonpro_dispatch/docs" // This will be auto-generated
	"maisonpro_dispatch/internal/adapter/http/handlers"
	"maisonpro_dispatch/internal/adapter/persistence/memory"
	repository2 "maisonpro_dispatch/internal/adapter/persistence/repository"
	"maisonpro_dispatch/internal/infrastructure/database"
	"maisonpro_dispatch/internal/infrastructure/portal"
	"maisonpro_dispatch/internal/infrastructure/seed"
	"maisonpro_dispatch/internal/usecase"
	"maisonpro_dispatch/internal/usecase/interfaces"
	"maisonpro_dispatch/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	jobRepo := memory.NewJobMemoryRepository()
	techRepo := memory.NewTechnicianMemoryRepository()
	clientRepo := memory.NewClientMemoryRepository()
	invoiceRepo := memory.NewInvoiceMemoryRepository()
	quoteRepo := memory.NewQuoteMemoryRepository()

	// Quotes are the only durable entity: their archive lives in DynamoDB
	// and is merged back into the store during bootstrap.
	ddb := database.ConnectDynamoDB()
	quoteArchive := repository2.NewQuoteDynamoRepository(ddb)

	var portalGateway interfaces.IPortalGateway
	pg, err := portal.NewPortalGateway(os.Getenv("PORTAL_API_URL"))
	if err != nil {
		log.Printf("Client portal gateway not configured: %v", err)
	} else {
		portalGateway = pg
	}

	notifier := usecase.NewNotifier()
	notifier.Subscribe(func(ev usecase.ChangeEvent) {
		log.Printf("[notifier] entity=%s action=%s id=%s division=%s", ev.Entity, ev.Action, ev.ID, ev.Division)
	})

	jobUseCase := usecase.NewJobUseCase(jobRepo, techRepo, clientRepo, invoiceRepo, notifier)
	dispatchUseCase := usecase.NewDispatchUseCase(jobUseCase, jobRepo, techRepo, usecase.NewRoundRobinStrategy())
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, jobRepo, clientRepo, notifier)
	technicianUseCase := usecase.NewTechnicianUseCase(techRepo, notifier)
	clientUseCase := usecase.NewClientUseCase(clientRepo, notifier)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, quoteArchive, portalGateway, notifier)

	bootstrap := usecase.NewBootstrap(jobRepo, techRepo, clientRepo, invoiceRepo, quoteRepo, quoteUseCase)
	go func() {
		if err := bootstrap.Run(context.Background(), seed.Demo()); err != nil {
			// The readiness gate keeps answering 503 until a restart fixes
			// the store.
			log.Printf("[bootstrap] failed, API stays unavailable: %v", err)
		}
	}()

	jobHandler := handlers.NewJobHandler(jobUseCase)
	dispatchHandler := handlers.NewDispatchHandler(dispatchUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	technicianHandler := handlers.NewTechnicianHandler(technicianUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// Routes publiques
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	scoped := v1.Group("", readinessGate(bootstrap))
	addBoardRoutes(scoped, jobHandler, dispatchHandler)
	addRosterRoutes(scoped, technicianHandler, clientHandler)
	addBillingRoutes(scoped, invoiceHandler)
	addIntakeRoutes(scoped, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// readinessGate refuses to serve until the bootstrap seeded the store and
// merged the quote archive. Serving earlier would expose a partial store.
func readinessGate(b *usecase.Bootstrap) gin.HandlerFunc {
	notReady := pkg.NewDomainErrorSimple("NOT_READY", "Store is initializing", http.StatusServiceUnavailable)
	return func(c *gin.Context) {
		if !b.Ready() {
			c.AbortWithStatusJSON(notReady.HTTPStatus, notReady.ToHTTPError())
			return
		}
		c.Next()
	}
}
