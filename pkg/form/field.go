package form

// FieldState is the explicit validation result for a field.
// Exactly one of {Valid, error-with-Message} holds at any time; the zero
// value is not meaningful, fields start out valid with no message.
type FieldState struct {
	Valid   bool
	Message string
}

// Field is one input under validation, identified by name.
// Fields are created up front and injected into the engine; the engine never
// discovers fields from ambient state, and none are added or removed later.
type Field struct {
	// Name identifies the field and selects its default rules
	// ("email", "name", "message" carry rules; anything else is generic).
	Name string

	// Label is the human-readable field label, used by presenters.
	Label string

	// Required marks the field as mandatory.
	Required bool

	// rules are evaluated in order after the required check; the first
	// failure wins.
	rules []Validator

	// value is the current raw input value.
	value string

	// state is the result of the last validation pass.
	state FieldState
}

// NewField creates a field. If no rules are given, DefaultRules for the
// name apply.
func NewField(name, label string, required bool, rules ...Validator) *Field {
	if len(rules) == 0 {
		rules = DefaultRules(name)
	}
	return &Field{
		Name:     name,
		Label:    label,
		Required: required,
		rules:    rules,
		state:    FieldState{Valid: true},
	}
}

// Value returns the current raw value.
func (f *Field) Value() string {
	return f.value
}

// SetValue replaces the current value. It does not validate; validation
// runs on blur, input (while in error) and submit.
func (f *Field) SetValue(value string) {
	f.value = value
}

// State returns the result of the last validation pass.
func (f *Field) State() FieldState {
	return f.state
}

// InError reports whether the field failed its last validation pass.
func (f *Field) InError() bool {
	return !f.state.Valid
}

// Rules returns the field's validators in evaluation order.
func (f *Field) Rules() []Validator {
	return f.rules
}
