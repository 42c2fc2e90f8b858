package validation

// ErrorKind classifies a primitive validation failure.
type ErrorKind string

const (
	KindRequired ErrorKind = "required"
	KindEmpty    ErrorKind = "empty"
	KindTooLong  ErrorKind = "too_long"
	KindFormat   ErrorKind = "format"
	KindRange    ErrorKind = "range"
	KindStep     ErrorKind = "step"
	KindEnum     ErrorKind = "enum"
	KindType     ErrorKind = "type"
)

// FieldError is a single field failure.
type FieldError struct {
	Field   string
	Kind    ErrorKind
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func fieldErr(field string, kind ErrorKind, message string) *FieldError {
	return &FieldError{Field: field, Kind: kind, Message: message}
}
