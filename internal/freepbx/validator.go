package freepbx

import (
	"strconv"

	parsecsv "github.com/veryxcit/freepbx2ucm/internal/parser/csv"
)

// Reason classifies why a row was rejected. Rejections are expected outcomes,
// not errors; they are collected and reported, and never abort the run.
type Reason int

const (
	// ReasonUnsupportedTech marks rows whose technology is neither sip nor iax
	// (e.g. DAHDI channels, which have no destination to map to).
	ReasonUnsupportedTech Reason = iota

	// ReasonNonNumericExtension marks rows whose extension field is not a
	// base-10 integer.
	ReasonNonNumericExtension

	// ReasonOther is the catch-all for unforeseen processing faults. It must
	// never mask the two specific reasons above.
	ReasonOther
)

func (r Reason) String() string {
	switch r {
	case ReasonUnsupportedTech:
		return "unsupported technology"
	case ReasonNonNumericExtension:
		return "extension is not a number"
	default:
		return "other, check line"
	}
}

// SupportedTech lists the technologies that can be carried over to the UCM.
// Matching is case-sensitive and exact; FreePBX exports these lowercased.
var SupportedTech = []string{"sip", "iax"}

// Rejection pairs a rejected record with its reason, in the order rejections
// occurred.
type Rejection struct {
	Ext    *Extension
	Reason Reason
}

// Result holds the outcome of one validation pass.
type Result struct {
	Accepted []*Extension
	Rejected []Rejection

	// TotalRows counts every row read from the file, header included.
	TotalRows int
}

// DataRows is the number of rows excluding the header.
func (r Result) DataRows() int { return r.TotalRows - 1 }

// Balanced reports whether every data row was classified. A false result
// means rows were lost somewhere; the caller decides whether that is fatal.
func (r Result) Balanced() bool {
	return r.DataRows() == len(r.Accepted)+len(r.Rejected)
}

// Validator classifies raw input rows into accepted extensions and rejections.
type Validator struct {
	// Report, when set, is invoked once per classified row in original input
	// order. For accepted rows reason is meaningless and rejected is false.
	Report func(ext *Extension, rejected bool, reason Reason)
}

// Validate binds each data row to the schema and classifies it. The first row
// is treated as the header and discarded without inspection. Rows arrive
// width-checked from the parser; a width fault at this layer is reported as a
// catch-all rejection rather than dropped silently.
func (v *Validator) Validate(rows []parsecsv.Row) Result {
	res := Result{TotalRows: len(rows)}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		ext, err := NewExtension(row.Record, row.Fields)
		if err != nil {
			// Width is enforced upstream; treat a mismatch as a processing
			// fault on a best-effort record so the row still shows up in the
			// rejected listing.
			ext = &Extension{Record: row.Record, raw: fitToSchema(row.Fields)}
			res.Rejected = append(res.Rejected, Rejection{Ext: ext, Reason: ReasonOther})
			v.report(ext, true, ReasonOther)
			continue
		}

		reason, ok := classify(ext)
		if !ok {
			res.Rejected = append(res.Rejected, Rejection{Ext: ext, Reason: reason})
			v.report(ext, true, reason)
			continue
		}
		res.Accepted = append(res.Accepted, ext)
		v.report(ext, false, 0)
	}
	return res
}

// classify applies the rejection rules in order, first match wins.
func classify(ext *Extension) (Reason, bool) {
	tech, ok := ext.Field("tech")
	if !ok {
		return ReasonOther, false
	}
	if !supported(tech) {
		return ReasonUnsupportedTech, false
	}
	if _, err := strconv.Atoi(ext.Number()); err != nil {
		return ReasonNonNumericExtension, false
	}
	return 0, true
}

func supported(tech string) bool {
	for _, t := range SupportedTech {
		if tech == t {
			return true
		}
	}
	return false
}

func (v *Validator) report(ext *Extension, rejected bool, reason Reason) {
	if v.Report != nil {
		v.Report(ext, rejected, reason)
	}
}

// fitToSchema pads or truncates a malformed row to schema width so it can be
// displayed alongside properly bound records.
func fitToSchema(fields []string) []string {
	out := make([]string, len(Columns))
	copy(out, fields)
	return out
}
