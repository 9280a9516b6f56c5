package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Invalid answers 400 with one entry per failing field. Anything that is not
// a validator error (malformed JSON, wrong types) is reported without fields.
func Invalid(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "invalid_request",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "invalid_request",
		Message: "Invalid data.",
		Fields:  FieldErrors(verrs),
	})
}

// FieldErrors maps "parent.child" json paths to the failing rule.
func FieldErrors(verrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		fields[ns] = fe.Tag()
	}
	return fields
}

// FromError writes the response for an error returned by a use case or a
// repository. Unexpected errors are attached to the context so the request
// logger records them.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		Invalid(c, verrs)
	case errors.As(err, &be):
		if be.Code == CodeNotFound {
			NotFound(c, be.Code, "Resource not found.")
			return
		}
		BadRequest(c, be.Code, messages[be.Code])
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, CodeNotFound, "Resource not found.")
	case IsUniqueViolation(err):
		BadRequest(c, "already_exists", "A record with these values already exists.")
	default:
		_ = c.Error(err)
		Internal(c, "internal_error", "Internal error.")
	}
}

var messages = map[string]string{
	CodeEmailRequired:      "User must have an email address.",
	CodeEmailTaken:         "An account with this email already exists.",
	CodeTechnicianExists:   "This account already has a technician profile.",
	CodeInvalidCredentials: "Unable to authenticate with provided credentials.",
	CodeInvalidDate:        "Date must use the YYYY-MM-DD format.",
	CodeInvalidTime:        "Time must use the HH:MM[:SS] format.",
}
