// Package report renders the human-readable run listing: a fixed-width table
// of accepted and rejected extensions plus a closing summary line. Exact
// formatting lives here and nowhere else; the pipeline only decides what to
// print.
package report

import (
	"fmt"
	"io"

	"github.com/veryxcit/freepbx2ucm/internal/freepbx"
	"github.com/veryxcit/freepbx2ucm/internal/ucm"
)

const rowFormat = "%7s | %-15s | %-40s | %-3s | %-3s | %-5s"

// Display-only placeholders for the table header. Not a domain record.
var headerCells = [6]string{"Ext", "Name", "Email", "VM", "Fax", "DTMF"}

// Section prints a section title followed by the table header.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "--- %s\n", title)
	fmt.Fprintf(w, rowFormat+"\n",
		headerCells[0], headerCells[1], headerCells[2],
		headerCells[3], headerCells[4], headerCells[5])
}

// Accepted prints one accepted extension.
func Accepted(w io.Writer, ext *freepbx.Extension) {
	fmt.Fprintf(w, rowFormat+"\n", cells(ext)...)
}

// Rejected prints one rejected extension with its reason appended.
func Rejected(w io.Writer, ext *freepbx.Extension, reason string) {
	fmt.Fprintf(w, rowFormat+" >> %s\n", append(cells(ext), reason)...)
}

// Summary prints the closing counts line.
func Summary(w io.Writer, totalRows, accepted, rejected, exported int) {
	fmt.Fprintf(w, "\n--- Total rows: %d | Imported extensions: %d | Failed extensions: %d | Exported rows: %d\n",
		totalRows, accepted, rejected, exported)
}

// Duplicate prints a duplicate-extension warning. exact marks byte-identical
// rows as opposed to two different rows sharing a number.
func Duplicate(w io.Writer, number string, records []int, exact bool) {
	kind := "conflicting rows"
	if exact {
		kind = "identical rows"
	}
	fmt.Fprintf(w, "!!! extension %s appears on %s %v; the export keeps all of them\n", number, kind, records)
}

func cells(ext *freepbx.Extension) []any {
	return []any{
		ext.Number(),
		ext.Name(),
		ext.Email(),
		yesNo(ext.Voicemail()),
		yesNo(ext.FaxEnabled()),
		ext.DTMFMode(),
	}
}

func yesNo(flag string) string {
	if ucm.Truthy(flag) {
		return "Yes"
	}
	return "No"
}
