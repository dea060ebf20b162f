package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError writes the uniform error envelope shared by every endpoint.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"status": "error", "message": message})
}

// respondSuccess writes the success envelope plus operation-specific fields.
func respondSuccess(c *gin.Context, fields gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
