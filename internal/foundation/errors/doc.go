// Package errors provides the classified error primitives used by sitecfg.
//
// A ClassifiedError carries a category, a severity and structured context so
// that the CLI can pick an exit code and a log level without string matching.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryConfig, "read declaration").
//		WithContext("path", path).
//		Build()
package errors
