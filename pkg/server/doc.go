// Package server serves form interactivity over a WebSocket endpoint.
//
// Clients send JSON events ({form, field, type, value}); the server runs
// each event through a per-connection validation engine and answers with a
// frame of presentation patches (error show/clear, value resets, success
// indicator visibility). Engines are connection-local, so each visitor's
// field state is independent and handled on a single goroutine.
package server
