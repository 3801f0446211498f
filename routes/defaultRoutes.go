package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wanjiru-dev/fakestore-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
