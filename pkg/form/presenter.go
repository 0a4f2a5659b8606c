package form

// Presenter renders validation results. The engine computes FieldState and
// calls the presenter; rendering is swappable so the engine stays testable
// without any element tree behind it.
//
// Per-field error rendering must keep the error-slot invariant: after
// ShowError the slot is visible with exactly that message, after ClearError
// it is hidden with no message.
//
// HideSuccess can arrive from the success indicator's auto-hide timer
// goroutine, so implementations must be safe to call concurrently with the
// event goroutine. dom.Presenter is internally synchronized; the live
// server's presenter serializes through its connection.
type Presenter interface {
	// ShowError makes the field's error slot visible with the message.
	ShowError(field, message string)

	// ClearError hides the field's error slot and clears its message.
	ClearError(field string)

	// SetValue reflects a programmatic value change (e.g. reset on success).
	SetValue(field, value string)

	// ShowSuccess makes the success indicator visible.
	ShowSuccess()

	// HideSuccess hides the success indicator.
	HideSuccess()

	// ScrollToSuccess brings the success indicator into view.
	ScrollToSuccess()
}

// NopPresenter discards all rendering. Useful when only the boolean
// results matter.
type NopPresenter struct{}

func (NopPresenter) ShowError(field, message string) {}
func (NopPresenter) ClearError(field string)         {}
func (NopPresenter) SetValue(field, value string)    {}
func (NopPresenter) ShowSuccess()                    {}
func (NopPresenter) HideSuccess()                    {}
func (NopPresenter) ScrollToSuccess()                {}
