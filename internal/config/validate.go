package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates an issue that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates an issue worth surfacing that does not block
	// execution on its own.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path is a dotted path into the
// configuration (e.g. "in", "mapping.fields[3]"); Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error where one is expected.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// HasError reports whether any issue in the list blocks execution.
func HasError(issues []Issue) bool {
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate performs static validation of a Config. It does not touch the
// filesystem; unreadable paths surface later as run errors.
func Validate(c Config) []Issue {
	var issues []Issue

	if strings.TrimSpace(c.InputPath) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "in",
			Message:  "input CSV path must not be empty",
		})
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "out",
			Message:  "output CSV path must not be empty",
		})
	}
	if c.InputPath != "" && c.InputPath == c.OutputPath {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "out",
			Message:  "output path must differ from the input path",
		})
	}
	if c.RejectsPath != "" && (c.RejectsPath == c.InputPath || c.RejectsPath == c.OutputPath) {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "rejects",
			Message:  "rejects path must differ from the input and output paths",
		})
	}
	if c.BypassCount {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "bypasscount",
			Message:  "row accounting mismatches will not abort the run; inspect the output",
		})
	}

	return issues
}
