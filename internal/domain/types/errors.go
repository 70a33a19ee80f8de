package types

import "strings"

// FieldError is one per-field validation message from the backend.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the backend's structured failure payload, decoded at the API
// boundary. Code is always non-empty: when the body carries no machine code
// the client synthesises one from the HTTP status (for example "http_500").
// Status holds the raw HTTP status so callers can branch on it directly.
type APIError struct {
	Code   string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
	Status int          `json:"-"`
}

// Error renders the code followed by any field-level detail.
func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return e.Code
	}
	var b strings.Builder
	b.WriteString(e.Code)
	b.WriteString(":")
	for _, f := range e.Fields {
		b.WriteString(" ")
		b.WriteString(f.Field)
		b.WriteString(" ")
		b.WriteString(f.Message)
		b.WriteString(";")
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Field returns the first message recorded for the named field.
func (e *APIError) Field(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message, true
		}
	}
	return "", false
}
