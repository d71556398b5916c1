package errors

// Convenience constructors for common error patterns.

// Config errors

func ConfigNotFound(path string) *CodedocError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigRequired(field string) *CodedocError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

func ValidationFailed(field, reason string) *CodedocError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Input errors

func RecordLoadFailed(path string, cause error) *CodedocError {
	return Wrap(cause, CategoryParse, SeverityFatal, "loading raw records failed").
		WithContext("path", path)
}

func SourceFetchFailed(url string, cause error) *CodedocError {
	return Wrap(cause, CategorySource, SeverityFatal, "fetching source tree failed").
		WithContext("url", url)
}

// Output errors

func RenderFailed(unit string, cause error) *CodedocError {
	return Wrap(cause, CategoryRender, SeverityFatal, "rendering output unit failed").
		WithContext("unit", unit)
}

func WriteFailed(path string, cause error) *CodedocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "writing output file failed").
		WithContext("path", path)
}
