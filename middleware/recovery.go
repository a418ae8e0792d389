package middleware

import (
	"log"
	"net/http"

	"github.com/eventplanner/event-orders-api/services"
	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the 500 error envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("%s %s panicked: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"code":    services.KindUnexpected,
			"message": "An unexpected error occurred",
		})
	})
}
