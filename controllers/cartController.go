package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wanjiru-dev/fakestore-api/store"
)

type addToCartInput struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID int    `json:"product_id" binding:"required"`
}

func AddToCart(carts *store.CartStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input addToCartInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			log.Println("Bind error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
			return
		}

		result, err := carts.AddOrIncrement(input.UserID, input.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
				return
			}
			log.Println("Error adding to cart:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add product to cart")
			return
		}

		if result.Created {
			sendJSONResponse(ctx, http.StatusCreated, gin.H{
				"message":    "Item added to cart",
				"cartItemId": result.Line.ID,
			})
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message":    "Quantity incremented",
			"cartItemId": result.Line.ID,
		})
	}
}

func GetCart(carts *store.CartStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.Query("user_id")
		if userID == "" {
			sendErrorResponse(ctx, http.StatusBadRequest, "user_id is required")
			return
		}

		entries, err := carts.ListForUser(userID)
		if err != nil {
			log.Println("Error fetching cart items:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error retrieving cart data")
			return
		}
		ctx.JSON(http.StatusOK, entries)
	}
}

func RemoveCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item id")
			return
		}

		if err := carts.RemoveLine(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
				return
			}
			log.Println("Error deleting from cart:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error deleting cart item")
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}
