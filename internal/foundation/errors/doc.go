// Package errors provides the classified error primitives used by navconfig.
//
// Every failure that reaches the CLI is a ClassifiedError carrying a category
// (config, validation, filesystem, git, internal), a severity and structured
// context. The CLIErrorAdapter maps categories to process exit codes.
//
// Example usage:
//
//	err := errors.ValidationError("sidebar link has no target").
//		WithContext("location", "sidebar[2].items[0]").
//		Build()
package errors
