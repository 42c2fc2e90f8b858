package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/forgo/northstar/internal/model"
)

// ErrNotObject is returned by ParseInput when the payload is not a JSON object.
var ErrNotObject = errors.New("payload must be a JSON object")

// Input is a raw payload as decoded from JSON.
type Input map[string]any

// ParseInput decodes a JSON object. Numbers are kept as json.Number so
// integers survive without float rounding.
func ParseInput(data []byte) (Input, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Input(obj), nil
}

// take returns the value under key and whether the field should be validated.
// Absent keys are skipped in partial mode and read as nil in create mode.
func (in Input) take(key string, partial bool) (any, bool) {
	v, ok := in[key]
	if !ok && partial {
		return nil, false
	}
	return v, true
}

// Options controls a validation pass.
type Options struct {
	// Partial validates only supplied fields (updates).
	Partial bool

	// ExistingType is the stored signal type, used to check a value when a
	// partial signal update omits the type.
	ExistingType model.SignalType
}

// Result is the outcome of a validation: either OK with Data, or an Error
// message for the end user.
type Result[T any] struct {
	OK    bool
	Data  T
	Error string
}

// Ok wraps a successful result.
func Ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

// Fail wraps a failed result.
func Fail[T any](message string) Result[T] {
	return Result[T]{Error: message}
}

// Err returns the failure as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.OK {
		return nil
	}
	return errors.New(r.Error)
}
