// Package fieldwork implements form interactivity for websites: field
// validation on blur, input and submit, per-field error rendering, and a
// transient auto-hiding success indicator.
//
// The validation engine (pkg/form) is DOM-free; rendering goes through a
// Presenter, with an in-memory element implementation in pkg/dom and a live
// WebSocket patch stream in pkg/server. This root package offers the
// canonical contact and join field sets and convenience constructors.
package fieldwork
