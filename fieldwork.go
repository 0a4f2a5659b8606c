package fieldwork

import (
	"time"

	"github.com/fieldwork-dev/fieldwork/pkg/form"
	"github.com/fieldwork-dev/fieldwork/pkg/toast"
)

// Version is the fieldwork library version.
const Version = "0.3.0"

// ContactFields returns the canonical contact form field set: name, email
// and message, all required.
func ContactFields() []*form.Field {
	return []*form.Field{
		form.NewField("name", "Name", true),
		form.NewField("email", "Email", true),
		form.NewField("message", "Message", true),
	}
}

// JoinFields returns the canonical join form field set: name and email,
// both required.
func JoinFields() []*form.Field {
	return []*form.Field{
		form.NewField("name", "Name", true),
		form.NewField("email", "Email", true),
	}
}

// NewEngine creates an engine with a success indicator using the default
// auto-hide delay.
func NewEngine(name string, fields []*form.Field, presenter form.Presenter, opts ...form.Option) *form.Engine {
	return NewEngineWithDelay(name, fields, presenter, toast.DefaultHideDelay, opts...)
}

// NewEngineWithDelay creates an engine with a success indicator using the
// given auto-hide delay.
func NewEngineWithDelay(name string, fields []*form.Field, presenter form.Presenter, delay time.Duration, opts ...form.Option) *form.Engine {
	opts = append([]form.Option{form.WithIndicator(toast.New(delay))}, opts...)
	return form.New(name, fields, presenter, opts...)
}
