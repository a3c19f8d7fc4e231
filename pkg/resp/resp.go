package resp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olvera93/FoodApp/pkg/apperr"
)

// Envelope is the shape of every API response: a status code, a
// human-readable message and an optional payload.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, Envelope{Status: http.StatusOK, Message: msg, Data: data})
}

func Created(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusCreated, Envelope{Status: http.StatusCreated, Message: msg, Data: data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Envelope{Status: http.StatusBadRequest, Message: msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, Envelope{Status: http.StatusUnauthorized, Message: msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, Envelope{Status: http.StatusForbidden, Message: msg})
}

// Error maps a service error onto the envelope using the apperr taxonomy.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrPreconditionFailed):
		status = http.StatusPreconditionFailed
	case errors.Is(err, apperr.ErrProcessing):
		status = http.StatusBadGateway
	}
	c.JSON(status, Envelope{Status: status, Message: apperr.Message(err)})
}
