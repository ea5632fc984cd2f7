package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token expired")
	ErrTokenRevoked         = fmt.Errorf("token revoked")
	ErrTokenNotFound        = fmt.Errorf("token not found")
	ErrTokenIsNotRefresh    = fmt.Errorf("token is not a refresh token")
	ErrTokenIsRefresh       = fmt.Errorf("refresh token cannot be used for access")

	// Authorization
	ErrEmptyAuthHeader   = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader = fmt.Errorf("invalid authorization header format")
	ErrUnauthorized      = fmt.Errorf("unauthorized")

	// Portal accounts
	ErrDuplicateEmail  = fmt.Errorf("Email Id should not be a duplicate in database")
	ErrAccountNotExist = fmt.Errorf("Account not exist")
	ErrInvalidPassword = fmt.Errorf("Invalid Password")
	ErrUserIDNotInCtx  = fmt.Errorf("user id not found in request context")

	// Forms
	ErrSubjectRequired        = fmt.Errorf("Please enter a subject")
	ErrWorkCenterNameRequired = fmt.Errorf("Please enter a work center name")
	ErrNameRequired           = fmt.Errorf("Please enter a name")
	ErrInvalidStage           = fmt.Errorf("invalid stage")
	ErrInvalidPeriod          = fmt.Errorf("invalid reporting period")
	ErrInvalidMonth           = fmt.Errorf("invalid month, expected YYYY-MM")

	// Common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

var statusBySentinel = []struct {
	err  error
	code int
}{
	{ErrNotFound, http.StatusNotFound},
	{ErrAccountNotExist, http.StatusNotFound},
	{ErrDuplicateEmail, http.StatusConflict},
	{ErrInvalidPassword, http.StatusUnauthorized},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrInvalidToken, http.StatusUnauthorized},
	{ErrTokenExpired, http.StatusUnauthorized},
	{ErrTokenRevoked, http.StatusUnauthorized},
	{ErrTokenNotFound, http.StatusUnauthorized},
	{ErrTokenIsNotRefresh, http.StatusUnauthorized},
	{ErrTokenIsRefresh, http.StatusUnauthorized},
	{ErrInvalidSigningMethod, http.StatusUnauthorized},
	{ErrEmptyAuthHeader, http.StatusUnauthorized},
	{ErrInvalidAuthHeader, http.StatusUnauthorized},
	{ErrUserIDNotInCtx, http.StatusUnauthorized},
	{ErrSubjectRequired, http.StatusBadRequest},
	{ErrWorkCenterNameRequired, http.StatusBadRequest},
	{ErrNameRequired, http.StatusBadRequest},
	{ErrInvalidStage, http.StatusBadRequest},
	{ErrInvalidPeriod, http.StatusBadRequest},
	{ErrInvalidMonth, http.StatusBadRequest},
	{ErrBadRequest, http.StatusBadRequest},
}

// StatusFor returns the HTTP status bound to a known sentinel in err's chain.
func StatusFor(err error) (int, bool) {
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return s.code, true
		}
	}
	return 0, false
}

// HttpError carries a status code and a client-safe message. Err is logged, never returned.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

// FromError wraps err into an HttpError using the sentinel table, defaulting to 500.
func FromError(err error, fallbackMessage string) *HttpError {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	if code, ok := StatusFor(err); ok {
		return &HttpError{Code: code, Message: rootMessage(err), Err: err}
	}
	return &HttpError{Code: http.StatusInternalServerError, Message: fallbackMessage, Err: err}
}

func rootMessage(err error) string {
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return s.err.Error()
		}
	}
	return err.Error()
}
