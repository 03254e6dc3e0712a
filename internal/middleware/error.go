package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorLogger logs every request that ends in an error status, with enough
// context (method, path, request id) to correlate with the triggering call.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 400 {
			return
		}

		requestID, _ := c.Get(RequestIDKey)
		log.Printf("request %v %s %s failed with status %d", requestID, c.Request.Method, c.Request.URL.Path, status)
	}
}
