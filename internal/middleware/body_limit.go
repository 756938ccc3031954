package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// bodySlack covers the JSON keys, file name and MIME type around the payload.
const bodySlack = 64 << 10

// MaxBodyBytes is the largest request body that can carry a base64 upload of
// maxFileBytes decoded bytes. It returns 0 when maxFileBytes is not positive.
func MaxBodyBytes(maxFileBytes int64) int64 {
	if maxFileBytes <= 0 {
		return 0
	}
	return (maxFileBytes+2)/3*4 + bodySlack
}

// BodyLimit caps the request body. Reading past the cap makes the body reader
// return *http.MaxBytesError, which handlers map to their own 400.
func (mw Middleware) BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.maxBodyBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, mw.maxBodyBytes)
		}
		c.Next()
	}
}
