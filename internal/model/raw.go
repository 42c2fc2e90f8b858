package model

import "time"

// Helpers for rendering normalized inputs back into the raw payload shape.
// Dates render as YYYY-MM-DD, null pointers as nil, absent fields are skipped.

func putValue[T any](raw map[string]any, key string, f Field[T]) {
	if f.Present {
		raw[key] = f.Value
	}
}

func putNullable(raw map[string]any, key string, f Field[*string]) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		raw[key] = nil
		return
	}
	raw[key] = *f.Value
}

func putDate(raw map[string]any, key string, f Field[time.Time]) {
	if f.Present {
		raw[key] = f.Value.Format("2006-01-02")
	}
}

func putNullableDate(raw map[string]any, key string, f Field[*time.Time]) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		raw[key] = nil
		return
	}
	raw[key] = f.Value.Format("2006-01-02")
}
