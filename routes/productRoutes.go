package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wanjiru-dev/fakestore-api/controllers"
	"github.com/wanjiru-dev/fakestore-api/store"
)

func ProductRoutes(server *gin.Engine, catalog *store.Catalog) {
	server.GET("/api/products", controllers.GetProducts(catalog))
}
