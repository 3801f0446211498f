package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wanjiru-dev/fakestore-api/controllers"
	"github.com/wanjiru-dev/fakestore-api/store"
)

func CheckoutRoutes(server *gin.Engine, processor *store.CheckoutProcessor) {
	server.POST("/api/checkout", controllers.Checkout(processor))
}
