package server

// Patch operations. Each patch is one presentation mutation for the client
// to apply: a class toggle, a text write or a value reset.
const (
	OpShowError      = "showError"
	OpClearError     = "clearError"
	OpSetValue       = "setValue"
	OpShowSuccess    = "showSuccess"
	OpHideSuccess    = "hideSuccess"
	OpScrollTo       = "scrollTo"
	OpPreventDefault = "preventDefault"
)

// Frame types sent to the client.
const (
	FrameTypePatches = "patches"
	FrameTypeError   = "error"
)

// Patch is one presentation mutation.
type Patch struct {
	Op      string `json:"op"`
	Form    string `json:"form"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
	Value   string `json:"value,omitempty"`
}

// PatchFrame carries the patches produced by one event (or by the success
// indicator's auto-hide).
type PatchFrame struct {
	Type    string  `json:"type"`
	Seq     uint64  `json:"seq"`
	Patches []Patch `json:"patches"`
}

// ErrorFrame reports a handling error, e.g. an event addressed to an
// unregistered form.
type ErrorFrame struct {
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// patchPresenter satisfies form.Presenter by queueing patches on the
// connection. All queueing goes through the connection's mutex, so calls
// from the auto-hide timer goroutine are safe.
type patchPresenter struct {
	conn *conn
	form string

	// successText travels with the show patch so the client renders the
	// configured message.
	successText string
}

func (p *patchPresenter) ShowError(field, message string) {
	p.conn.queue(Patch{Op: OpShowError, Form: p.form, Field: field, Message: message})
}

func (p *patchPresenter) ClearError(field string) {
	p.conn.queue(Patch{Op: OpClearError, Form: p.form, Field: field})
}

func (p *patchPresenter) SetValue(field, value string) {
	p.conn.queue(Patch{Op: OpSetValue, Form: p.form, Field: field, Value: value})
}

func (p *patchPresenter) ShowSuccess() {
	p.conn.queue(Patch{Op: OpShowSuccess, Form: p.form, Message: p.successText})
}

func (p *patchPresenter) HideSuccess() {
	p.conn.queue(Patch{Op: OpHideSuccess, Form: p.form})
}

func (p *patchPresenter) ScrollToSuccess() {
	p.conn.queue(Patch{Op: OpScrollTo, Form: p.form})
}
