package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wanjiru-dev/fakestore-api/controllers"
	"github.com/wanjiru-dev/fakestore-api/store"
)

func CartRoutes(server *gin.Engine, carts *store.CartStore) {
	server.POST("/api/cart", controllers.AddToCart(carts))
	server.GET("/api/cart", controllers.GetCart(carts))
	server.DELETE("/api/cart/:id", controllers.RemoveCartItem(carts))
}
