package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanjiru-dev/fakestore-api/store"
)

type checkoutInput struct {
	UserID        string `json:"user_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

func Checkout(processor *store.CheckoutProcessor) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input checkoutInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			log.Println("Bind error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
			return
		}

		receipt, err := processor.Checkout(input.UserID, input.CustomerName, input.CustomerEmail)
		if err != nil {
			var vErr *store.ValidationError
			switch {
			case errors.As(err, &vErr):
				sendErrorResponse(ctx, http.StatusBadRequest, vErr.Error())
			case errors.Is(err, store.ErrEmptyCart):
				sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
			default:
				log.Println("Error during checkout:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, "Checkout failed")
			}
			return
		}

		ctx.JSON(http.StatusOK, receipt)
	}
}
