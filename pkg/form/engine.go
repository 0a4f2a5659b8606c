package form

import (
	"log/slog"
	"strings"

	"github.com/fieldwork-dev/fieldwork/pkg/toast"
)

// Observer receives validation outcomes, e.g. for metrics.
type Observer interface {
	// FieldValidated is called after every per-field validation pass.
	FieldValidated(form, field string, valid bool)

	// Submitted is called after every submit handling, with the overall
	// result.
	Submitted(form string, valid bool)
}

// Engine validates a fixed set of fields and reflects results through a
// Presenter. It holds no ambient state: fields, presenter and the success
// indicator are all injected at construction.
//
// The engine is single-threaded by contract. Handlers run to completion on
// the calling event (submit, blur, input); the only asynchronous behavior is
// the indicator's auto-hide, which the indicator itself owns and cancels.
// The hide surfaces as a HideSuccess call on the presenter from the timer
// goroutine; see the Presenter concurrency contract.
type Engine struct {
	name      string
	fields    []*Field
	index     map[string]*Field
	presenter Presenter
	indicator *toast.Indicator
	observer  Observer
	logger    *slog.Logger
	unwatch   func()
}

// Option configures an Engine.
type Option func(*Engine)

// WithIndicator attaches a success indicator. Without one, success handling
// still resets field values but shows nothing.
func WithIndicator(ind *toast.Indicator) Option {
	return func(e *Engine) {
		e.indicator = ind
	}
}

// WithObserver attaches a validation observer.
func WithObserver(obs Observer) Option {
	return func(e *Engine) {
		e.observer = obs
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine over the given fields. Field order is preserved:
// submit validates fields in the order given here.
func New(name string, fields []*Field, presenter Presenter, opts ...Option) *Engine {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	e := &Engine{
		name:      name,
		fields:    fields,
		index:     make(map[string]*Field, len(fields)),
		presenter: presenter,
	}
	for _, f := range fields {
		e.index[f.Name] = f
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default().With("component", "form", "form", name)
	}
	if e.indicator != nil {
		e.unwatch = e.indicator.Watch(func(visible bool) {
			if visible {
				e.presenter.ShowSuccess()
			} else {
				e.presenter.HideSuccess()
			}
		})
	}
	return e
}

// Name returns the form name.
func (e *Engine) Name() string {
	return e.name
}

// Fields returns the fields in submit order.
func (e *Engine) Fields() []*Field {
	return e.fields
}

// Field returns the named field, or nil if the form has no such field.
func (e *Engine) Field(name string) *Field {
	return e.index[name]
}

// Valid reports whether every field passed its last validation pass.
func (e *Engine) Valid() bool {
	for _, f := range e.fields {
		if f.InError() {
			return false
		}
	}
	return true
}

// ValidateField evaluates the field's rules in order, stopping at the first
// failure, so at most one error is shown per field. Prior error state is
// cleared first; validation is stateless and idempotent for a given value.
func (e *Engine) ValidateField(f *Field) bool {
	f.state = FieldState{Valid: true}
	e.presenter.ClearError(f.Name)

	value := strings.TrimSpace(f.value)

	if f.Required && value == "" {
		return e.fail(f, MsgRequired)
	}

	// A field that is not required and left blank is always valid.
	if value != "" {
		for _, rule := range f.rules {
			if err := rule.Validate(value); err != nil {
				msg := err.Error()
				if vf, ok := err.(ValidationFailure); ok {
					msg = vf.Message
				}
				return e.fail(f, msg)
			}
		}
	}

	if e.observer != nil {
		e.observer.FieldValidated(e.name, f.Name, true)
	}
	return true
}

// HandleBlur re-validates the named field. Unknown fields are ignored.
func (e *Engine) HandleBlur(name string) bool {
	f := e.index[name]
	if f == nil {
		return true
	}
	return e.ValidateField(f)
}

// HandleInput records a value change. While the field is in an error state
// it re-validates immediately for fast feedback; otherwise feedback is
// deferred to the next blur.
func (e *Engine) HandleInput(name, value string) bool {
	f := e.index[name]
	if f == nil {
		return true
	}
	f.value = value
	if f.InError() {
		return e.ValidateField(f)
	}
	return true
}

// Submit handles a form submission: the default action is always suppressed
// by the transport, any lingering success indicator is cleared (cancelling
// its pending hide), and every field is validated so all errors render at
// once. If every field passes, success handling runs.
func (e *Engine) Submit() bool {
	if e.indicator != nil {
		e.indicator.Hide()
	}

	ok := true
	for _, f := range e.fields {
		if !e.ValidateField(f) {
			ok = false
		}
	}

	if ok {
		e.success()
	}

	if e.observer != nil {
		e.observer.Submitted(e.name, ok)
	}
	e.logger.Debug("submit handled", "valid", ok)
	return ok
}

// success shows the indicator, resets all field values and brings the
// indicator into view. The auto-hide is scheduled by the indicator itself.
// A missing indicator is a deliberate no-op for the display part.
func (e *Engine) success() {
	if e.indicator != nil {
		e.indicator.Show()
	} else {
		e.logger.Debug("no success indicator configured")
	}

	for _, f := range e.fields {
		f.value = ""
		e.presenter.SetValue(f.Name, "")
	}

	if e.indicator != nil {
		e.presenter.ScrollToSuccess()
	}
}

// Close detaches the engine from its indicator.
func (e *Engine) Close() {
	if e.unwatch != nil {
		e.unwatch()
		e.unwatch = nil
	}
}

// fail records the failure, renders the message and reports the result.
func (e *Engine) fail(f *Field, msg string) bool {
	f.state = FieldState{Valid: false, Message: msg}
	e.presenter.ShowError(f.Name, msg)
	if e.observer != nil {
		e.observer.FieldValidated(e.name, f.Name, false)
	}
	return false
}
