package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the body of successful mutating calls.
type Message struct {
	Message string `json:"message"`
}

// Error is the body of every error response.
type Error struct {
	Detail string `json:"detail"`
}

// OK sends a 200 JSON response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OKMessage sends 200 with {"message": msg}.
func OKMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Message{Message: msg})
}

// BadRequest sends 400 with error detail.
func BadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, Error{Detail: detail})
}

// NotFound sends 404.
func NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, Error{Detail: detail})
}

// Unprocessable sends 422 for malformed request parameters.
func Unprocessable(c *gin.Context, detail string) {
	c.JSON(http.StatusUnprocessableEntity, Error{Detail: detail})
}

// Internal sends 500. The detail is generic; causes are logged, not returned.
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Error{Detail: "Internal Server Error"})
}
