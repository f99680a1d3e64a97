package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *BuilderError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *BuilderError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *BuilderError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Build errors

func ConverterUnavailable(name string, cause error) *BuilderError {
	return Wrap(cause, CategoryConverter, SeverityFatal, "converter unavailable").
		WithContext("converter", name)
}

func TemplateReadFailed(path string, cause error) *BuilderError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "template read failed").
		WithContext("path", path)
}

func OutputWriteFailed(path string, cause error) *BuilderError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output write failed").
		WithContext("path", path)
}

func BuildCanceled(cause error) *BuilderError {
	return Wrap(cause, CategoryRuntime, SeverityFatal, "build canceled")
}

// Internal errors

func InternalError(message string, cause error) *BuilderError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
