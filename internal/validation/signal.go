package validation

import (
	"math"

	"github.com/forgo/northstar/internal/model"
)

// ValidateSignalInput validates type, date, then value. The value is checked
// against the payload's type, or opts.ExistingType when a partial update
// leaves the type out.
func ValidateSignalInput(raw Input, opts Options) Result[model.SignalInput] {
	var out model.SignalInput

	if v, ok := raw.take("type", opts.Partial); ok {
		typ, ferr := EnumMember(model.LabelType, v, model.SignalTypes)
		if ferr != nil {
			return Fail[model.SignalInput](ferr.Message)
		}
		out.Type = model.Given(typ)
	}

	if v, ok := raw.take("date", opts.Partial); ok {
		date, ferr := CalendarDate(model.LabelDate, v)
		if ferr != nil {
			return Fail[model.SignalInput](ferr.Message)
		}
		out.Date = model.Given(date)
	}

	if v, ok := raw.take("value", opts.Partial); ok {
		typ := out.Type.Or(opts.ExistingType)
		if typ == "" {
			return Fail[model.SignalInput](model.MsgTypeNeededForValue)
		}
		value, msg := signalValue(typ, v)
		if msg != "" {
			return Fail[model.SignalInput](msg)
		}
		out.Value = model.Given(value)
	}

	return Ok(out)
}

// signalValue returns the value or the message for the first failed rule.
// Sleep reports the upper bound before the grid.
func signalValue(typ model.SignalType, v any) (float64, string) {
	if v == nil {
		return 0, model.MsgValueRequired
	}
	n, ok := toNumber(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, model.MsgValueNumber
	}

	switch typ {
	case model.SignalSleep:
		if n > model.MaxSleepHours {
			return 0, model.MsgSleepMax
		}
		if _, ferr := BoundedStepNumber(model.LabelValue, n, model.MinSleepHours, model.MaxSleepHours, model.SleepStep); ferr != nil {
			return 0, model.MsgSleepStep
		}
		return n, ""
	case model.SignalWellbeing:
		if n != math.Trunc(n) || n < model.MinWellbeing || n > model.MaxWellbeing {
			return 0, model.MsgWellbeing
		}
		return n, ""
	}
	return 0, model.MsgOneOf(model.LabelType, signalTypeNames())
}

func signalTypeNames() []string {
	names := make([]string, len(model.SignalTypes))
	for i, t := range model.SignalTypes {
		names[i] = string(t)
	}
	return names
}
