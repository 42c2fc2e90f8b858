package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/forgo/northstar/internal/calendar"
	"github.com/forgo/northstar/internal/model"
)

// CalendarDate validates a required YYYY-MM-DD string naming a real date and
// returns its UTC midnight.
func CalendarDate(label string, v any) (time.Time, *FieldError) {
	if v == nil {
		return time.Time{}, fieldErr(label, KindRequired, model.MsgRequired(label))
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fieldErr(label, KindFormat, model.MsgDateFormat(label))
	}
	t, err := calendar.ParseCalendarDate(s)
	if err != nil {
		return time.Time{}, fieldErr(label, KindFormat, model.MsgDateFormat(label))
	}
	return t, nil
}

// optionalCalendarDate treats nil and blank strings as null.
func optionalCalendarDate(label string, v any) (*time.Time, *FieldError) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, ferr := CalendarDate(label, v)
	if ferr != nil {
		return nil, ferr
	}
	return &t, nil
}

// mondayDate validates a calendar date that falls on a Monday.
func mondayDate(label string, v any) (time.Time, *FieldError) {
	t, ferr := CalendarDate(label, v)
	if ferr != nil {
		return time.Time{}, ferr
	}
	if err := calendar.RequireMonday(t); err != nil {
		if errors.Is(err, calendar.ErrNotMonday) {
			return time.Time{}, fieldErr(label, KindFormat, model.MsgMonday(label))
		}
		return time.Time{}, fieldErr(label, KindFormat, model.MsgDateFormat(label))
	}
	return t, nil
}

// ValidateWeekStart validates a week start string: a real calendar date that
// is a Monday. The result is that Monday's UTC midnight.
func ValidateWeekStart(raw any) Result[time.Time] {
	t, ferr := mondayDate(model.LabelWeekStart, raw)
	if ferr != nil {
		return Fail[time.Time](ferr.Message)
	}
	return Ok(t)
}

// optionalUUID treats nil and blank strings as null.
func optionalUUID(label string, v any) (*string, *FieldError) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	id, ferr := UUID(label, v)
	if ferr != nil {
		return nil, ferr
	}
	return &id, nil
}
