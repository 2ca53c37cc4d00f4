package routes

import (
	"os"
	"strconv"

	_ "notaria_backoffice/docs" // This will be auto-generated
	"notaria_backoffice/internal/adapter/http/handlers"
	repository2 "notaria_backoffice/internal/adapter/persistence/repository"
	"notaria_backoffice/internal/infrastructure/database"
	"notaria_backoffice/internal/infrastructure/notifications"
	"notaria_backoffice/internal/usecase"
	"notaria_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
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
	ddb := database.ConnectDynamoDB()

	escrituraRepo := repository2.NewEscrituraDynamoRepository(ddb)
	taxConfigRepo := repository2.NewTaxConfigDynamoRepository(ddb)

	var notifier interfaces.IReceiptNotifier
	waGateway, err := notifications.NewWhatsAppGateway(
		os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
	)
	if err != nil {
		log.Warnf("WhatsApp gateway not configured: %v", err)
	} else {
		notifier = waGateway
	}

	escrituraUseCase := usecase.NewEscrituraUseCase(escrituraRepo, taxConfigRepo, notifier)
	taxConfigUseCase := usecase.NewTaxConfigUseCase(taxConfigRepo)

	escrituraHandler := handlers.NewEscrituraHandler(escrituraUseCase)
	settingsHandler := handlers.NewSettingsHandler(taxConfigUseCase)
	catalogHandler := handlers.NewCatalogHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addEscrituraRoutes(v1, escrituraHandler)
	addSettingsRoutes(v1, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
