// Package apperr maps upstream and precondition failures to the fixed
// user-facing messages the app surfaces. No exception-style propagation:
// every service operation returns one of these as a plain error value.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Precondition errors detected client-side before any network call.
var (
	ErrNoSession    = errors.New("Authentication required. Please sign in again.")
	ErrNoActiveFarm = errors.New("No active farm selected. Please select a farm first.")
)

// Fixed user-facing messages for upstream status classes.
const (
	msgForbidden   = "You do not have permission to perform this action."
	msgNotFound    = "The requested record was not found."
	msgServer      = "Server error. Please try again later."
	msgDamOrSire   = "Invalid dam or sire selected."
	msgDuplicate   = "This breeding record already exists."
	msgUnavailable = "Could not reach the server. Please check your connection."
)

// ValidationError reports client-side input validation failures: the
// operation was rejected before any network call.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string { return e.Message }

// MissingFields builds a ValidationError naming exactly the absent required
// fields, in stable order.
func MissingFields(fields []string) *ValidationError {
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	return &ValidationError{
		Message: "Missing required fields: " + strings.Join(sorted, ", "),
		Fields:  sorted,
	}
}

// InvalidDate reports an unparseable date-valued input field.
func InvalidDate(field string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("Invalid date format for %s.", field),
		Fields:  []string{field},
	}
}

// UpstreamError carries the HTTP status of a failed upstream call together
// with the message already mapped for display.
type UpstreamError struct {
	StatusCode int
	Message    string
	// Raw keeps the unmapped upstream message for callers that refine the
	// generic server-error message (see ForBreedingCreate).
	Raw string
}

func (e *UpstreamError) Error() string { return e.Message }

// FromStatus converts an upstream HTTP failure into the taxonomy's
// user-facing message. 400 passes the backend's own message through; other
// classes map to fixed strings.
func FromStatus(status int, upstreamMessage string) error {
	switch {
	case status == http.StatusBadRequest:
		msg := upstreamMessage
		if msg == "" {
			msg = "The server rejected the request."
		}
		return &UpstreamError{StatusCode: status, Message: msg}
	case status == http.StatusUnauthorized:
		return &UpstreamError{StatusCode: status, Message: ErrNoSession.Error()}
	case status == http.StatusForbidden:
		return &UpstreamError{StatusCode: status, Message: msgForbidden}
	case status == http.StatusNotFound:
		return &UpstreamError{StatusCode: status, Message: msgNotFound}
	case status >= http.StatusInternalServerError:
		return &UpstreamError{StatusCode: status, Message: msgServer, Raw: upstreamMessage}
	default:
		msg := upstreamMessage
		if msg == "" {
			msg = msgUnavailable
		}
		return &UpstreamError{StatusCode: status, Message: msg}
	}
}

// ForBreedingCreate refines server errors on breeding-record creation by
// pattern-matching the upstream message: constraint violations read as a bad
// dam/sire selection, uniqueness violations as a duplicate record.
func ForBreedingCreate(err error) error {
	var upstream *UpstreamError
	if !errors.As(err, &upstream) || upstream.StatusCode < http.StatusInternalServerError {
		return err
	}

	lowered := strings.ToLower(upstream.Raw)
	switch {
	case strings.Contains(lowered, "foreign key") || strings.Contains(lowered, "constraint"):
		return &UpstreamError{StatusCode: upstream.StatusCode, Message: msgDamOrSire}
	case strings.Contains(lowered, "duplicate") || strings.Contains(lowered, "unique"):
		return &UpstreamError{StatusCode: upstream.StatusCode, Message: msgDuplicate}
	default:
		return upstream
	}
}

// IsValidation reports whether err is a client-side validation failure,
// meaning no network call was made.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
