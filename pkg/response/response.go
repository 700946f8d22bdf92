package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON wrapped in the envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// JSON sends 200 with data as the raw body.
func JSON(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Detail aborts with status and a {"detail": msg} body.
func Detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, DetailResp{Detail: msg})
}

// InternalError aborts with 500 and a generic detail.
func InternalError(c *gin.Context) {
	Detail(c, http.StatusInternalServerError, DefaultErrorMessage)
}

// Unavailable sends 503 wrapped in the envelope.
func Unavailable(c *gin.Context, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   http.StatusText(http.StatusServiceUnavailable),
		Data:      data,
	})
}
