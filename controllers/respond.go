package controllers

import "github.com/gin-gonic/gin"

func sendJSONResponse(ctx *gin.Context, statusCode int, payload gin.H) {
	ctx.JSON(statusCode, payload)
}

func sendErrorResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, gin.H{"error": message})
}
