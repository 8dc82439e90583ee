// Package mapping defines the output-side mapping: the ordered UCM column
// header and, per column, how its value is computed from the input extension
// or the derived record. The definition is data, not code — a user can copy
// the built-in YAML, edit it, and point the CLI at the copy — and it is
// validated up front so a bad definition fails before any output is written.
package mapping

import (
	"fmt"
	"strings"

	"github.com/veryxcit/freepbx2ucm/internal/config"
	"github.com/veryxcit/freepbx2ucm/internal/freepbx"
	"github.com/veryxcit/freepbx2ucm/internal/ucm"
)

// Definition is a loaded mapping: the output header in order, and one binding
// per output column. The binding list must cover the header exactly, in the
// same order.
type Definition struct {
	Header []string  `yaml:"header"`
	Fields []Binding `yaml:"fields"`
}

// Binding computes one output column. Exactly one of From or Value must be
// set: From references an input column ("ext.<column>") or a derived value
// ("ucm.<key>"); Value is a verbatim literal, which may be empty.
type Binding struct {
	Column string  `yaml:"column"`
	From   string  `yaml:"from,omitempty"`
	Value  *string `yaml:"value,omitempty"`
}

// Reference prefixes accepted in a Binding's From expression.
const (
	extPrefix = "ext."
	ucmPrefix = "ucm."
)

// Validate statically checks the definition. Any error-severity issue makes
// the definition unusable; warnings are informational.
func (d *Definition) Validate() []config.Issue {
	var issues []config.Issue

	errf := func(path, format string, a ...any) {
		issues = append(issues, config.Issue{
			Severity: config.SeverityError,
			Path:     path,
			Message:  fmt.Sprintf(format, a...),
		})
	}

	if len(d.Header) == 0 {
		errf("mapping.header", "header must list at least one output column")
	}
	seen := make(map[string]struct{}, len(d.Header))
	for i, col := range d.Header {
		if strings.TrimSpace(col) == "" {
			errf(fmt.Sprintf("mapping.header[%d]", i), "column name must not be empty")
			continue
		}
		if _, dup := seen[col]; dup {
			errf(fmt.Sprintf("mapping.header[%d]", i), "duplicate column %q", col)
		}
		seen[col] = struct{}{}
	}

	if len(d.Fields) != len(d.Header) {
		errf("mapping.fields", "got %d bindings for %d header columns", len(d.Fields), len(d.Header))
	}
	for i, b := range d.Fields {
		path := fmt.Sprintf("mapping.fields[%d]", i)
		if i < len(d.Header) && b.Column != d.Header[i] {
			errf(path, "binding %q out of order; header declares %q here", b.Column, d.Header[i])
		}
		switch {
		case b.From != "" && b.Value != nil:
			errf(path, "column %q sets both from and value", b.Column)
		case b.From == "" && b.Value == nil:
			errf(path, "column %q sets neither from nor value", b.Column)
		case b.From != "":
			if err := checkReference(b.From); err != nil {
				errf(path, "column %q: %v", b.Column, err)
			}
		}
	}

	return issues
}

// checkReference verifies a From expression resolves against the input schema
// or the derived-value keys.
func checkReference(ref string) error {
	switch {
	case strings.HasPrefix(ref, extPrefix):
		name := strings.TrimPrefix(ref, extPrefix)
		if _, ok := freepbx.ColumnIndex(name); !ok {
			return fmt.Errorf("unknown input column %q", name)
		}
	case strings.HasPrefix(ref, ucmPrefix):
		key := strings.TrimPrefix(ref, ucmPrefix)
		var zero ucm.Derived
		if _, ok := zero.Lookup(key); !ok {
			return fmt.Errorf("unknown derived value %q", key)
		}
	default:
		return fmt.Errorf("reference %q must start with %q or %q", ref, extPrefix, ucmPrefix)
	}
	return nil
}

// op is one compiled column resolution step.
type op struct {
	extCol  int    // input column index when >= 0
	ucmKey  string // derived key when non-empty
	literal string // verbatim value otherwise
}

// Resolver is a validated, compiled definition ready to produce output rows.
type Resolver struct {
	header []string
	ops    []op
}

// Compile validates the definition and builds a Resolver. It fails on the
// first error-severity issue, so callers can rely on every later Row call
// producing exactly the declared columns.
func (d *Definition) Compile() (*Resolver, error) {
	for _, iss := range d.Validate() {
		if iss.Severity == config.SeverityError {
			return nil, iss
		}
	}

	ops := make([]op, len(d.Fields))
	for i, b := range d.Fields {
		switch {
		case strings.HasPrefix(b.From, extPrefix):
			idx, _ := freepbx.ColumnIndex(strings.TrimPrefix(b.From, extPrefix))
			ops[i] = op{extCol: idx, ucmKey: ""}
		case strings.HasPrefix(b.From, ucmPrefix):
			ops[i] = op{extCol: -1, ucmKey: strings.TrimPrefix(b.From, ucmPrefix)}
		default:
			ops[i] = op{extCol: -1, literal: *b.Value}
		}
	}
	return &Resolver{header: append([]string(nil), d.Header...), ops: ops}, nil
}

// Header returns the output columns in declared order.
func (r *Resolver) Header() []string { return r.header }

// Row evaluates every output column, in declared order, for one record.
func (r *Resolver) Row(ext *freepbx.Extension, drv *ucm.Derived) []string {
	row := make([]string, len(r.ops))
	for i, o := range r.ops {
		switch {
		case o.extCol >= 0:
			row[i] = ext.Raw()[o.extCol]
		case o.ucmKey != "":
			row[i], _ = drv.Lookup(o.ucmKey)
		default:
			row[i] = o.literal
		}
	}
	return row
}
