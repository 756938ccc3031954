package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-planning-studio/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in the Resp envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Plain sends 200 JSON with data as the whole body, for endpoints whose wire
// contract predates the envelope.
func Plain(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. A *pkgErrors.HTTPError decides the status and
// message; any other error is reported as 400 with its own message.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status := http.StatusBadRequest
	code := ValidationErrorCode
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Status
		code = httpErr.Status
	}

	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   err.Error(),
		Error:     err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
		Error:     DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 with the given message.
func TooManyRequests(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   message,
		Error:     message,
	})
}
