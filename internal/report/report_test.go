package report

import (
	"strings"
	"testing"

	"github.com/veryxcit/freepbx2ucm/internal/freepbx"
)

func ext(t *testing.T, overrides map[string]string) *freepbx.Extension {
	t.Helper()
	fields := make([]string, len(freepbx.Columns))
	for name, v := range overrides {
		i, ok := freepbx.ColumnIndex(name)
		if !ok {
			t.Fatalf("unknown column %q", name)
		}
		fields[i] = v
	}
	e, err := freepbx.NewExtension(2, fields)
	if err != nil {
		t.Fatalf("NewExtension: %v", err)
	}
	return e
}

func TestListing(t *testing.T) {
	var sb strings.Builder
	Section(&sb, "Extensions")
	e := ext(t, map[string]string{
		"extension":        "1001",
		"name":             "JOHN SMITH",
		"email":            "john@pbx.example",
		"vm":               "enabled",
		"faxenabled":       "no",
		"devinfo_dtmfmode": "rfc2833",
	})
	Accepted(&sb, e)
	Rejected(&sb, e, "unsupported technology")
	Summary(&sb, 4, 1, 2, 1)

	out := sb.String()
	for _, want := range []string{
		"--- Extensions",
		"Ext",
		"1001",
		"JOHN SMITH",
		"john@pbx.example",
		"Yes", // vm flag rendered as Yes
		"No",  // fax flag rendered as No
		">> unsupported technology",
		"Total rows: 4 | Imported extensions: 1 | Failed extensions: 2 | Exported rows: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestDuplicate(t *testing.T) {
	var sb strings.Builder
	Duplicate(&sb, "1001", []int{2, 5}, true)
	Duplicate(&sb, "1002", []int{3, 7}, false)

	out := sb.String()
	if !strings.Contains(out, "identical rows [2 5]") {
		t.Errorf("missing identical-rows wording:\n%s", out)
	}
	if !strings.Contains(out, "conflicting rows [3 7]") {
		t.Errorf("missing conflicting-rows wording:\n%s", out)
	}
}
