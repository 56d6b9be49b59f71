package validation

// StringValidation checks a single path value
type StringValidation struct {
	Value    string
	Required bool
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	return !v.Required || v.Value != ""
}

// IsValidKey reports whether s can address a course or a student.
// Any non-empty value is matched exactly against storage, whitespace and slashes included.
func IsValidKey(s string) bool {
	return NewStringValidation(s).Validate()
}
