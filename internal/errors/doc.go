// Package errors provides structured, coded errors for configuration, CLI
// and server failures. Field validation failures are not errors; they are
// state rendered by the presenter.
package errors
