package model

import "time"

// SignalType is the kind of daily signal
type SignalType string

const (
	SignalSleep     SignalType = "SLEEP"
	SignalWellbeing SignalType = "WELLBEING"
)

// SignalTypes lists every signal type in declaration order.
var SignalTypes = []SignalType{SignalSleep, SignalWellbeing}

// Signal value bounds
const (
	MinSleepHours = 0.0
	MaxSleepHours = 14.0
	SleepStep     = 0.25

	MinWellbeing = 1
	MaxWellbeing = 10
)

// SignalInput is a validated signal payload.
type SignalInput struct {
	Type  Field[SignalType]
	Date  Field[time.Time] // UTC midnight
	Value Field[float64]
}

// Raw renders the input back into its payload shape.
func (in SignalInput) Raw() map[string]any {
	raw := map[string]any{}
	if in.Type.Present {
		raw["type"] = string(in.Type.Value)
	}
	putDate(raw, "date", in.Date)
	putValue(raw, "value", in.Value)
	return raw
}
