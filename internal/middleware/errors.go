package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

// ErrorHandler logs every error attached with c.Error and, if the handler
// wrote nothing, answers with a generic 500 envelope.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(e.Err),
			)
		}
		if !c.Writer.Written() {
			abortWithMessage(c, http.StatusInternalServerError, internalErrorMessage)
		}
	}
}

// Recovery turns a panic into a logged 500 envelope.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				abortWithMessage(c, http.StatusInternalServerError, internalErrorMessage)
			}
		}()
		c.Next()
	}
}
