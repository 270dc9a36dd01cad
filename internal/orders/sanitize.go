package orders

import (
	"regexp"
	"strings"

	"github.com/smlogitech/backoffice/pkg/kst"
)

var numberPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// SanitizeValue normalizes one incoming column value according to its
// declared kind. Mismatching dates, datetimes and numbers collapse to the
// empty string rather than erroring; text is trimmed as-is. The function
// is idempotent: sanitizing an already-sanitized value is a no-op.
func SanitizeValue(kind ColumnKind, value string) string {
	trimmed := strings.TrimSpace(value)
	switch kind {
	case KindNumber:
		return sanitizeNumber(trimmed)
	case KindDate:
		return sanitizeDate(trimmed)
	case KindDateTime:
		return sanitizeDateTime(trimmed)
	case KindCheckbox:
		return sanitizeCheckbox(trimmed)
	default:
		return trimmed
	}
}

// SanitizeRecord sanitizes every known column of a field map in place and
// returns the list of unknown field names, if any.
func SanitizeRecord(fields map[string]string) []string {
	var unknown []string
	for name, value := range fields {
		kind, ok := Columns[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		fields[name] = SanitizeValue(kind, value)
	}
	return unknown
}

func sanitizeNumber(value string) string {
	if value == "" {
		return ""
	}
	cleaned := strings.ReplaceAll(value, ",", "")
	if !numberPattern.MatchString(cleaned) {
		return ""
	}
	return cleaned
}

func sanitizeDate(value string) string {
	if value == "" {
		return ""
	}
	if _, ok := kst.ParseDate(value); !ok {
		return ""
	}
	return value
}

func sanitizeDateTime(value string) string {
	if value == "" {
		return ""
	}
	parsed, ok := kst.ParseDateTime(value)
	if !ok {
		return ""
	}
	return kst.FormatDateTime(parsed)
}

func sanitizeCheckbox(value string) string {
	if IsChecked(value) {
		return CheckOn
	}
	return ""
}

// IsChecked reports whether a stored checkbox column is truthy. The grid
// historically wrote several truthy markers; all are accepted on read.
func IsChecked(value string) bool {
	switch strings.TrimSpace(value) {
	case CheckOn, "1", "Y", "y", "true", "on":
		return true
	default:
		return false
	}
}
