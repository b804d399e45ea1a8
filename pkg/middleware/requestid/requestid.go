package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header carries the request id on both requests and responses.
const Header = "X-Request-ID"

const contextKey = "request_id"

// Middleware tags every request with an id, honoring one supplied by the
// caller, and echoes it on the response.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextKey, id)
		c.Writer.Header().Set(Header, id)

		c.Next()
	}
}

// Value returns the id assigned to this request, or "" outside the
// middleware.
func Value(c *gin.Context) string {
	return c.GetString(contextKey)
}
