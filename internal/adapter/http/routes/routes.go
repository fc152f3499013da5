package routes

import (
	"log"
	"strconv"

	_ "controlimport/docs" // This will be auto-generated
	"controlimport/internal/adapter/http/handlers"
	repository2 "controlimport/internal/adapter/persistence/repository"
	"controlimport/internal/infrastructure/database"
	"controlimport/internal/usecase"

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
	ddb := database.ConnectDynamoDB()

	processRepo := repository2.NewProcessDynamoRepository(ddb)
	counterRepo := repository2.NewSequenceCounterDynamoRepository(ddb)

	processUseCase := usecase.NewProcessUseCase(processRepo, counterRepo)
	ingestUseCase := usecase.NewIngestUseCase(processRepo)

	processHandler := handlers.NewProcessHandler(processUseCase)
	ingestHandler := handlers.NewIngestHandler(ingestUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addImportRoutes(v1, processHandler, ingestHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
