package event

// Type identifies a DOM-originated event kind.
type Type string

const (
	// TypeBlur fires when a field loses focus.
	TypeBlur Type = "blur"

	// TypeInput fires on every field value change.
	TypeInput Type = "input"

	// TypeSubmit fires when a form is submitted.
	TypeSubmit Type = "submit"
)

// Event is one DOM-originated event addressed to a form.
// Field is empty for submit events.
type Event struct {
	// Form names the target form.
	Form string `json:"form"`

	// Field names the target field within the form, if any.
	Field string `json:"field,omitempty"`

	// Type is the event kind.
	Type Type `json:"type"`

	// Value is the field's current value, carried by input events.
	Value string `json:"value,omitempty"`
}

// FocusEvent carries blur/focus details.
type FocusEvent struct {
	// Field is the name of the field losing or gaining focus.
	Field string
}

// InputEvent represents an input field change event.
type InputEvent struct {
	// Value is the current value of the input.
	Value string

	// InputType is the kind of change (e.g. "insertText",
	// "deleteContentBackward").
	InputType string
}

// SubmitEvent represents a form submission.
// The default browser action is always suppressed by the transport before
// handlers run.
type SubmitEvent struct {
	// Form is the name of the submitted form.
	Form string
}
