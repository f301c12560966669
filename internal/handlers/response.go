package handlers

import (
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidFields = "invalid fields"
	msgInvalidID     = "invalid id"
	msgDuplicate     = "duplicate data"
)

func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"status": "success",
		"data":   data,
	})
}

func respondFailed(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  "failed",
		"message": message,
	})
}

// serverError hands err to middleware.ErrorHandler, which logs it and
// writes the 500 envelope.
func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
}
