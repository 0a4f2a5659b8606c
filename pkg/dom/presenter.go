package dom

import "sync"

// Class and tag conventions for form markup built by BuildForm and mutated
// by Presenter.
const (
	ClassGroup        = "form-group"
	ClassGroupError   = "error"
	ClassErrorSlot    = "error-message"
	ClassErrorVisible = "visible"
	ClassSuccess      = "form-success"
	ClassHidden       = "hidden"
)

// Presenter renders validation state onto an element tree. It satisfies
// form.Presenter.
//
// Conventions: each field lives in a wrapper carrying ClassGroup, holding
// the input (attr name) and an error slot carrying ClassErrorSlot. The
// success indicator carries ClassSuccess and is hidden via ClassHidden.
type Presenter struct {
	root *Element

	// mu protects scrolled.
	mu sync.Mutex

	// scrolled is the element last brought into view.
	scrolled *Element
}

// NewPresenter creates a presenter over the given container.
func NewPresenter(root *Element) *Presenter {
	return &Presenter{root: root}
}

// ShowError marks the field's group and fills its error slot. The slot
// invariant holds afterwards: visible with exactly this message.
func (p *Presenter) ShowError(field, message string) {
	group, slot := p.fieldParts(field)
	if group != nil {
		group.AddClass(ClassGroupError)
	}
	if slot != nil {
		slot.SetText(message)
		slot.AddClass(ClassErrorVisible)
	}
}

// ClearError unmarks the field's group and empties its error slot. The slot
// invariant holds afterwards: hidden with no message.
func (p *Presenter) ClearError(field string) {
	group, slot := p.fieldParts(field)
	if group != nil {
		group.RemoveClass(ClassGroupError)
	}
	if slot != nil {
		slot.SetText("")
		slot.RemoveClass(ClassErrorVisible)
	}
}

// SetValue writes the input's value.
func (p *Presenter) SetValue(field, value string) {
	if input := p.root.FindByName(field); input != nil {
		input.SetValue(value)
	}
}

// ShowSuccess unhides the success indicator.
func (p *Presenter) ShowSuccess() {
	if ind := p.root.FindByClass(ClassSuccess); ind != nil {
		ind.RemoveClass(ClassHidden)
	}
}

// HideSuccess hides the success indicator.
func (p *Presenter) HideSuccess() {
	if ind := p.root.FindByClass(ClassSuccess); ind != nil {
		ind.AddClass(ClassHidden)
	}
}

// ScrollToSuccess records the success indicator as brought into view.
func (p *Presenter) ScrollToSuccess() {
	if ind := p.root.FindByClass(ClassSuccess); ind != nil {
		p.mu.Lock()
		p.scrolled = ind
		p.mu.Unlock()
	}
}

// ScrolledTo returns the element last brought into view, or nil.
func (p *Presenter) ScrolledTo() *Element {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scrolled
}

// fieldParts returns the field's group wrapper and error slot.
func (p *Presenter) fieldParts(field string) (group, slot *Element) {
	input := p.root.FindByName(field)
	if input == nil {
		return nil, nil
	}
	group = input.Parent()
	if group != nil && !group.HasClass(ClassGroup) {
		group = nil
	}
	if group != nil {
		slot = group.FindByClass(ClassErrorSlot)
	}
	return group, slot
}
