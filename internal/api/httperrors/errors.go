package httperrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github/chapool/cosmos-wallet/internal/types"
)

// HTTPError is an error carrying the response it should be rendered as.
type HTTPError struct {
	types.HTTPError
	Internal       error                  `json:"-"`
	AdditionalData map[string]interface{} `json:"-"`
}

type HTTPValidationError struct {
	types.HTTPError
	Internal       error                  `json:"-"`
	AdditionalData map[string]interface{} `json:"-"`
}

func NewHTTPError(code int, errorType types.PublicHTTPErrorType, title string) *HTTPError {
	return &HTTPError{
		HTTPError: types.HTTPError{
			Status: code,
			Type:   errorType,
			Title:  title,
		},
	}
}

func NewHTTPErrorWithDetail(code int, errorType types.PublicHTTPErrorType, title string, detail string) *HTTPError {
	return &HTTPError{
		HTTPError: types.HTTPError{
			Status: code,
			Type:   errorType,
			Title:  title,
			Detail: detail,
		},
	}
}

func NewFromEcho(e *echo.HTTPError) *HTTPError {
	return &HTTPError{
		HTTPError: types.HTTPError{
			Status: e.Code,
			Type:   types.PublicHTTPErrorTypeGeneric,
			Title:  fmt.Sprintf("%v", e.Message),
		},
		Internal: e.Internal,
	}
}

func (e *HTTPError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "HTTPError %d (%s): %s", e.Status, e.Type, e.Title)

	if len(e.Detail) > 0 {
		fmt.Fprintf(&b, " - %s", e.Detail)
	}
	if e.Internal != nil {
		fmt.Fprintf(&b, ", %v", e.Internal)
	}
	if len(e.AdditionalData) > 0 {
		b.WriteString(". Additional: ")
		first := true
		for k, v := range e.AdditionalData {
			if !first {
				b.WriteString(", ")
			}
			first = false
			fmt.Fprintf(&b, "%s=%v", k, v)
		}
	}

	return b.String()
}

func NewHTTPValidationError(code int, errorType types.PublicHTTPErrorType, title string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		HTTPError: types.HTTPError{
			Status:           code,
			Type:             errorType,
			Title:            title,
			ValidationErrors: validationErrors,
		},
	}
}

func (e *HTTPValidationError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "HTTPValidationError %d (%s): %s", e.Status, e.Type, e.Title)

	if len(e.Detail) > 0 {
		fmt.Fprintf(&b, " - %s", e.Detail)
	}
	if e.Internal != nil {
		fmt.Fprintf(&b, ", %v", e.Internal)
	}

	b.WriteString(" - Validation: ")
	for i, ve := range e.ValidationErrors {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s (in %s): %s", deref(ve.Key), deref(ve.In), deref(ve.Error))
	}

	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var (
	ErrBadRequestInvalidCycles = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDCYCLES, "X-Attached-Cycles must be an unsigned integer.")
	ErrForbiddenNotAdmin       = NewHTTPError(http.StatusForbidden, types.PublicHTTPErrorTypeGeneric, "Administrative role required.")
	ErrUnauthorizedToken       = NewHTTPError(http.StatusUnauthorized, types.PublicHTTPErrorTypeINVALIDTOKEN, "The bearer token is invalid or expired.")
)
