package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidationError marks malformed or out-of-enumeration input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError marks a referenced row that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

func Validation(msg string) error   { return &ValidationError{Message: msg} }
func NotFound(msg string) error     { return &NotFoundError{Message: msg} }
func Conflict(msg string) error     { return &ConflictError{Message: msg} }
func Unauthorized(msg string) error { return &UnauthorizedError{Message: msg} }

// StatusFor maps an error to its HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	var (
		validation   *ValidationError
		notFound     *NotFoundError
		conflict     *ConflictError
		unauthorized *UnauthorizedError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a {success:false, message} body. The message is the
// error text verbatim, including for unexpected errors.
func Respond(c *gin.Context, err error) {
	Fail(c, StatusFor(err), err.Error())
}

func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Message: message})
}

// AllowOnly answers every method except the given one with 405.
func AllowOnly(method string, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != method {
			c.Header("Allow", method)
			Fail(c, http.StatusMethodNotAllowed, "Only "+method+" method is allowed")
			return
		}
		h(c)
	}
}
