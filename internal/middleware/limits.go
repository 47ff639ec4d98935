package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/hidan-dev/employee-records-api/internal/errors"
)

// MaxBodySize rejects request bodies larger than limit bytes before any
// handler reads them. Requests that lie about Content-Length are still capped
// by MaxBytesReader while the body is consumed.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			apierrors.PayloadTooLarge(c, "")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
