package errors

import (
	"log/slog"
)

// CLIErrorAdapter handles error presentation and exit code determination
// for the codedoc CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if ce, ok := err.(*CodedocError); ok {
		return a.exitCodeFromCodedoc(ce)
	}
	return 1
}

// exitCodeFromCodedoc maps CodedocError categories to exit codes.
func (a *CLIErrorAdapter) exitCodeFromCodedoc(err *CodedocError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryParse, CategorySource:
		return 8 // Input error
	case CategoryRender, CategoryFileSystem:
		return 11 // Build error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// Report logs the error with structured context before exit.
func (a *CLIErrorAdapter) Report(err error) {
	if err == nil {
		return
	}
	if ce, ok := err.(*CodedocError); ok {
		attrs := []any{"category", string(ce.Category), "severity", string(ce.Severity)}
		if a.verbose {
			for k, v := range ce.Context {
				attrs = append(attrs, k, v)
			}
		}
		a.logger.Error(ce.Message, attrs...)
		return
	}
	a.logger.Error(err.Error())
}
