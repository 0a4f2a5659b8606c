// Package form implements the field validation engine.
//
// # Overview
//
// An Engine owns a fixed, ordered set of Fields and a Presenter. Events
// (blur, input, submit) drive validation; results are explicit FieldState
// values rendered through the presenter, so the validation logic is testable
// without any element tree behind it.
//
// # Basic Usage
//
//	fields := []*form.Field{
//	    form.NewField("name", "Name", true),
//	    form.NewField("email", "Email", true),
//	    form.NewField("message", "Message", true),
//	}
//	engine := form.New("contact", fields, presenter,
//	    form.WithIndicator(toast.New(toast.DefaultHideDelay)),
//	)
//
//	engine.HandleInput("email", "a@b.co")
//	engine.HandleBlur("email")
//	if engine.Submit() {
//	    // accepted: values reset, success indicator shown
//	}
//
// # Rules
//
// Rules run in order and stop at the first failure, so at most one error is
// shown per field:
//
//  1. Required fields reject trimmed-empty values.
//  2. "email" fields must match a simple address shape.
//  3. "name" fields must be at least 2 characters.
//  4. "message" fields must be at least 10 characters.
//
// Non-required fields left blank always pass; length and pattern rules only
// apply to non-empty values.
//
// # Re-validation policy
//
// A field currently in error re-validates on every input change for fast
// feedback while correcting; clean fields defer feedback to the next blur.
package form
