package errors

// Known error codes. Codes are stable; messages may change.
const (
	CodeConfigNotFound = "F001"
	CodeConfigParse    = "F002"
	CodeConfigInvalid  = "F003"
	CodeUnknownForm    = "F010"
	CodeDuplicateForm  = "F011"
	CodeServerStart    = "F020"
)

// ConfigNotFound reports a missing configuration file.
func ConfigNotFound(path string) *Error {
	return New(CodeConfigNotFound, CategoryConfig, "configuration file not found: %s", path).
		WithSuggestion("create a fieldwork.json in the project root")
}

// ConfigParse reports an unreadable configuration file.
func ConfigParse(path string, err error) *Error {
	return New(CodeConfigParse, CategoryConfig, "cannot parse %s", path).
		Wrap(err).
		WithSuggestion("check the file for JSON syntax errors")
}

// ConfigInvalid reports a structurally valid but semantically wrong config.
func ConfigInvalid(reason string) *Error {
	return New(CodeConfigInvalid, CategoryConfig, "invalid configuration: %s", reason)
}

// UnknownForm reports an event addressed to a form that was never
// registered.
func UnknownForm(name string) *Error {
	return New(CodeUnknownForm, CategoryValidation, "unknown form %q", name).
		WithSuggestion("declare the form in fieldwork.json or register it before serving")
}

// DuplicateForm reports two form declarations with the same name.
func DuplicateForm(name string) *Error {
	return New(CodeDuplicateForm, CategoryConfig, "duplicate form %q", name)
}

// ServerStart reports a failure to start the live server.
func ServerStart(err error) *Error {
	return New(CodeServerStart, CategoryServer, "cannot start server").Wrap(err)
}
