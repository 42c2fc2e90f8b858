// Package validation turns raw request payloads into normalized entity inputs.
//
// Every validator is pure and safe for concurrent use. Validators return a
// Result instead of an error: on failure Result.Error holds the first failing
// field's message in field order, worded for the end user.
//
// # Modes
//
// In create mode every required field must be supplied and absent nullable
// fields normalize to null. In partial mode only supplied fields are checked
// and returned; the rest are left with Present=false.
//
//	res := validation.ValidateGoalInput(raw, validation.Options{})
//	if !res.OK {
//	    return res.Error
//	}
//	title := res.Data.Title.Value
package validation
