package breeding

import (
	"time"

	"github.com/mkamara9/herdsman/internal/apperr"
)

// Input dates arrive from screens in whatever shape the picker produced;
// everything is normalized to RFC3339 UTC before it reaches the wire.
var acceptedDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// normalizeDate parses a date-valued input field and renders it as an
// RFC3339 UTC timestamp. The field name is only used for the error message.
func normalizeDate(field, value string) (string, error) {
	for _, layout := range acceptedDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC().Format(time.RFC3339), nil
		}
	}
	return "", apperr.InvalidDate(field)
}

// parseWireDate reads an RFC3339 (or date-only) value already stored on a
// record. Used by status derivation and reporting, where an unparseable
// value is skipped rather than surfaced.
func parseWireDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
