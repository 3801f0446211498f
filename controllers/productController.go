package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanjiru-dev/fakestore-api/store"
)

func GetProducts(catalog *store.Catalog) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		products, err := catalog.List()
		if err != nil {
			log.Println("Error fetching products:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error retrieving products")
			return
		}
		ctx.JSON(http.StatusOK, products)
	}
}
