// Package config defines the run configuration for the converter and a small
// static validator over it. The CLI decodes flags into a Config and surfaces
// the returned issues before anything touches the filesystem.
package config

import "github.com/veryxcit/freepbx2ucm/internal/ucm"

// Config is the full set of options for one conversion run.
type Config struct {
	// InputPath is the FreePBX Bulk Extensions CSV (required).
	InputPath string

	// OutputPath is the UCM import CSV to produce.
	OutputPath string

	// MappingPath optionally overrides the built-in output mapping with a
	// user-edited YAML definition.
	MappingPath string

	// RejectsPath optionally names a CSV audit file for rejected rows.
	RejectsPath string

	// AllRandom generates fresh secrets instead of zero-filling exported ones.
	AllRandom bool

	// PrettyName title-cases display names before splitting.
	PrettyName bool

	// UseFaxEmail prefers the primary email field over the fax email.
	UseFaxEmail bool

	// BypassCount downgrades a row-accounting mismatch from fatal to a
	// warning. Inspect the parsed output before trusting it.
	BypassCount bool

	// Job labels metrics for this run.
	Job string

	// Verbose enables progress logging.
	Verbose bool
}

// DefaultOutputPath is used when the caller does not name an output file.
const DefaultOutputPath = "ucm_export.csv"

// DefaultJob labels metrics when no job name is configured.
const DefaultJob = "freepbx2ucm"

// Policy maps the conversion knobs onto the derivation policy.
func (c Config) Policy() ucm.Policy {
	return ucm.Policy{
		AllRandom:   c.AllRandom,
		PrettyName:  c.PrettyName,
		UseFaxEmail: c.UseFaxEmail,
	}
}
