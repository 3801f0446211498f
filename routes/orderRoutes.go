package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wanjiru-dev/fakestore-api/controllers"
	"github.com/wanjiru-dev/fakestore-api/store"
)

func OrderRoutes(server *gin.Engine, ledger *store.OrderLedger) {
	server.GET("/api/orders/:orderId", controllers.GetOrderByID(ledger))
}
