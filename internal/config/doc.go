// Package config loads and validates fieldwork.json: server address and the
// declarative form definitions served by the live endpoint. A missing file
// falls back to the built-in contact and join forms.
package config
