package dom

import "sync"

// Element is a minimal in-memory stand-in for a host DOM node. It carries
// exactly what the presentation layer touches: attributes, a class list,
// text content, an input value, and children.
//
// All elements of a tree share one lock, so concurrent access is safe: the
// success indicator's auto-hide mutates the tree from its timer goroutine
// while the owner may be reading it. Individual operations are atomic;
// multi-element updates are not.
type Element struct {
	Tag string

	mu      *sync.RWMutex
	attrs   map[string]string
	classes []string
	text    string
	value   string

	parent   *Element
	children []*Element
}

// NewElement creates an element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, mu: &sync.RWMutex{}}
}

// SetAttr sets an attribute and returns the element for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	return e
}

// Attr returns the attribute value, or "" if unset.
func (e *Element) Attr(name string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.attrs[name]
}

// AddClass adds a class if not already present.
func (e *Element) AddClass(class string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasClass(class) {
		e.classes = append(e.classes, class)
	}
	return e
}

// RemoveClass removes a class if present.
func (e *Element) RemoveClass(class string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return e
		}
	}
	return e
}

// HasClass reports whether the class is present.
func (e *Element) HasClass(class string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hasClass(class)
}

func (e *Element) hasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.classes...)
}

// SetText sets the text content.
func (e *Element) SetText(text string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
	return e
}

// Text returns the text content.
func (e *Element) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}

// SetValue sets the input value.
func (e *Element) SetValue(value string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = value
	return e
}

// Value returns the input value.
func (e *Element) Value() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.value
}

// Append adds children and returns the element for chaining. The appended
// subtrees join this tree's lock; they must not be in concurrent use yet.
func (e *Element) Append(children ...*Element) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range children {
		c.share(e.mu)
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

// share hands the subtree over to the tree's lock.
func (e *Element) share(mu *sync.RWMutex) {
	e.mu = mu
	for _, c := range e.children {
		c.share(mu)
	}
}

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.parent
}

// Children returns a copy of the child elements in document order.
func (e *Element) Children() []*Element {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]*Element(nil), e.children...)
}

// Find returns the first element in the subtree (depth-first, including the
// receiver) matching the predicate, or nil. The predicate runs without the
// tree lock held.
func (e *Element) Find(pred func(*Element) bool) *Element {
	if pred(e) {
		return e
	}
	for _, c := range e.Children() {
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindByName returns the first element with the given name attribute.
func (e *Element) FindByName(name string) *Element {
	return e.Find(func(el *Element) bool {
		return el.Attr("name") == name
	})
}

// FindByClass returns the first element carrying the given class.
func (e *Element) FindByClass(class string) *Element {
	return e.Find(func(el *Element) bool {
		return el.HasClass(class)
	})
}
