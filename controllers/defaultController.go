package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Fakestore API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

PRODUCT
- GET "/api/products" - List the product catalog

CART
- POST "/api/cart" - Add a product to a user's cart (increments qty on repeat)
- GET "/api/cart?user_id={id}" - List a user's cart
- DELETE "/api/cart/{id}" - Remove a cart line

CHECKOUT
- POST "/api/checkout" - Convert a user's cart into an order and get a receipt

ORDER
- GET "/api/orders/{orderId}" - Get a completed order by ID`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
