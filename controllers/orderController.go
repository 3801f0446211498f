package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wanjiru-dev/fakestore-api/store"
)

func GetOrderByID(ledger *store.OrderLedger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orderID, err := strconv.Atoi(ctx.Param("orderId"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order id")
			return
		}

		order, err := ledger.Get(orderID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
				return
			}
			log.Println("Error fetching order:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
	}
}
