// Package dom models the host DOM boundary as a small in-memory element
// tree. The validation engine never touches it directly; it is the concrete
// target of the dom.Presenter and the test double for everything that would
// run against a real document.
package dom
