package freepbx

import "fmt"

// Extension is one input row bound to the Bulk Extensions schema. It is
// created during validation and read-only afterward; the raw fields are kept
// in schema order so any column can be referenced by name from the output
// mapping.
type Extension struct {
	// Record is the 1-based record number in the input file (header = 1).
	Record int

	raw []string
}

// NewExtension binds one raw CSV row to the schema. The row width must match
// the schema exactly; the parser enforces this before rows get here, so a
// mismatch indicates a programming error upstream.
func NewExtension(record int, raw []string) (*Extension, error) {
	if len(raw) != len(Columns) {
		return nil, fmt.Errorf("record %d: got %d fields, schema has %d", record, len(raw), len(Columns))
	}
	return &Extension{Record: record, raw: raw}, nil
}

// Field returns the value of a named schema column.
func (e *Extension) Field(name string) (string, bool) {
	i, ok := colIndex[name]
	if !ok {
		return "", false
	}
	return e.raw[i], true
}

// Raw returns the underlying row in schema order. Callers must not mutate it.
func (e *Extension) Raw() []string { return e.raw }

func (e *Extension) field(name string) string {
	v, _ := e.Field(name)
	return v
}

// Named accessors for the columns the conversion logic reads.

func (e *Extension) Number() string       { return e.field("extension") }
func (e *Extension) Name() string         { return e.field("name") }
func (e *Extension) Tech() string         { return e.field("tech") }
func (e *Extension) Secret() string       { return e.field("devinfo_secret") }
func (e *Extension) DTMFMode() string     { return e.field("devinfo_dtmfmode") }
func (e *Extension) OutboundCID() string  { return e.field("outboundcid") }
func (e *Extension) Voicemail() string    { return e.field("vm") }
func (e *Extension) VoicemailPwd() string { return e.field("vmpwd") }
func (e *Extension) Email() string        { return e.field("email") }
func (e *Extension) FaxEnabled() string   { return e.field("faxenabled") }
func (e *Extension) FaxEmail() string     { return e.field("faxemail") }
