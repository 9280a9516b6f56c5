package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Codes shared by the domain and the HTTP layer.
const (
	CodeEmailRequired      = "email_required"
	CodeEmailTaken         = "email_taken"
	CodeTechnicianExists   = "technician_exists"
	CodeInvalidCredentials = "invalid_credentials"
	CodeNotFound           = "not_found"
	CodeInvalidDate        = "invalid_date"
	CodeInvalidTime        = "invalid_time"
)

var ErrNotFound = ErrBusiness(CodeNotFound)
