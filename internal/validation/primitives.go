package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/forgo/northstar/internal/model"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// stepTolerance absorbs float error when checking a value against its grid.
const stepTolerance = 1e-9

// NonEmptyTrimmed validates a required text field: trimmed, non-empty and at
// most maxLen code points.
func NonEmptyTrimmed(label string, v any, maxLen int) (string, *FieldError) {
	if v == nil {
		return "", fieldErr(label, KindRequired, model.MsgRequired(label))
	}
	s, ok := v.(string)
	if !ok {
		return "", fieldErr(label, KindType, model.MsgNotText(label))
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fieldErr(label, KindEmpty, model.MsgEmpty(label))
	}
	if utf8.RuneCountInString(s) > maxLen {
		return "", fieldErr(label, KindTooLong, model.MsgTooLong(label, maxLen))
	}
	return s, nil
}

// OptionalTrimmed validates a nullable text field. Nil stays nil. Blank input
// becomes nil when blankAsNull is set, otherwise it is an empty error.
func OptionalTrimmed(label string, v any, maxLen int, blankAsNull bool) (*string, *FieldError) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fieldErr(label, KindType, model.MsgNotText(label))
	}
	s = strings.TrimSpace(s)
	if s == "" {
		if blankAsNull {
			return nil, nil
		}
		return nil, fieldErr(label, KindEmpty, model.MsgEmpty(label))
	}
	if utf8.RuneCountInString(s) > maxLen {
		return nil, fieldErr(label, KindTooLong, model.MsgTooLong(label, maxLen))
	}
	return &s, nil
}

// HexColor validates "#" followed by six hex digits after trimming. Nil is
// allowed and stays nil.
func HexColor(v any) (*string, *FieldError) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fieldErr(model.LabelColor, KindType, model.MsgColor)
	}
	s = strings.TrimSpace(s)
	if !hexColorPattern.MatchString(s) {
		return nil, fieldErr(model.LabelColor, KindFormat, model.MsgColor)
	}
	return &s, nil
}

// UUID validates a hyphenated version 4 UUID with the RFC 4122 variant,
// case-insensitively, and returns it trimmed.
func UUID(label string, v any) (string, *FieldError) {
	s, ok := v.(string)
	if !ok || !IsUUID(s) {
		return "", fieldErr(label, KindFormat, model.MsgInvalidUUID(label))
	}
	return strings.TrimSpace(s), nil
}

// IsUUID reports whether s, trimmed, is a canonical UUIDv4.
func IsUUID(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 36 {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}

// BoundedStepNumber validates a finite number within [min, max] that lies on
// the grid min + k*step. The grid check scales and rounds instead of using a
// float modulo.
func BoundedStepNumber(label string, v any, min, max, step float64) (float64, *FieldError) {
	n, ok := toNumber(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fieldErr(label, KindType, label+" must be a number")
	}
	if n < min || n > max {
		return 0, fieldErr(label, KindRange, fmt.Sprintf("%s must be between %g and %g", label, min, max))
	}
	if !onGrid(n-min, step) {
		return 0, fieldErr(label, KindStep, fmt.Sprintf("%s must be in %g increments", label, step))
	}
	return n, nil
}

func onGrid(n, step float64) bool {
	scaled := n * (1 / step)
	return math.Abs(scaled-math.Round(scaled)) < stepTolerance
}

// EnumMember validates exact, case-sensitive membership. Missing, empty and
// unknown values share one message listing the allowed values in order.
func EnumMember[T ~string](label string, v any, allowed []T) (T, *FieldError) {
	if s, ok := v.(string); ok {
		for _, a := range allowed {
			if string(a) == s {
				return a, nil
			}
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	var zero T
	return zero, fieldErr(label, KindEnum, model.MsgOneOf(label, names))
}

// toNumber accepts the numeric shapes a decoded payload can carry.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// wholeNumber accepts integral finite numbers.
func wholeNumber(v any) (int, bool) {
	n, ok := toNumber(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return 0, false
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}
