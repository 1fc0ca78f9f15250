package httpapi

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is echoed back so clients can quote the id when reporting
// a failed call.
const HeaderRequestID = "X-Request-ID"

const contextKeyRequestID = "request_id"

// RequestIDMiddleware tags every request with an id, honoring one supplied
// by the caller.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextKeyRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// RequestID returns the id attached by RequestIDMiddleware.
func RequestID(c *gin.Context) string {
	return c.GetString(contextKeyRequestID)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[%s] %s %s -> %d (%s)",
			RequestID(c), c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
