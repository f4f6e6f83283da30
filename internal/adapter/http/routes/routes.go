package routes

import (
	"log"
	"os"
	"strconv"
	"strings"
	_ "tripwatch/docs" // This will be auto-generated
	"tripwatch/internal/adapter/http/handlers"
	repository2 "tripwatch/internal/adapter/persistence/repository"
	"tripwatch/internal/infrastructure/database"
	"tripwatch/internal/infrastructure/search"
	"tripwatch/internal/usecase"
	"tripwatch/internal/usecase/interfaces"

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
	var gateway interfaces.ISearchGateway
	tavily, err := search.NewTavilyGateway(os.Getenv("TAVILY_API_KEY"))
	if err != nil {
		log.Printf("Search gateway not configured, every quote will be simulated: %v", err)
	} else {
		gateway = tavily
	}

	// Persistence is a capability flag: without it price checks still work,
	// reports are just not stored.
	var reportRepo interfaces.IPriceReportRepository
	if isPersistenceEnabled() {
		ddb := database.ConnectDynamoDB()
		reportRepo = repository2.NewPriceReportDynamoRepository(ddb)
	} else {
		log.Printf("Report persistence disabled (set PERSIST_REPORTS=true to enable)")
	}

	priceCheckUseCase := usecase.NewPriceCheckUseCase(gateway, reportRepo)
	priceCheckHandler := handlers.NewPriceCheckHandler(priceCheckUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPriceCheckRoutes(v1, priceCheckHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isPersistenceEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PERSIST_REPORTS"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
