package routes

import (
	"tripwatch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPriceChecks = "/price-checks"
)

func addPriceCheckRoutes(rg *gin.RouterGroup, priceCheckHandler *handlers.PriceCheckHandler) {
	priceChecks := rg.Group(PathPriceChecks)
	{
		priceChecks.POST("", priceCheckHandler.CreatePriceCheck)
		priceChecks.GET("/:user_id", priceCheckHandler.ListPriceChecks)
	}
}
