package ucm

import (
	"testing"

	"github.com/veryxcit/freepbx2ucm/internal/freepbx"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"enabled", true},
		{"Enabled", true},
		{"  YES  ", true},
		{"true", true},
		{"checked", true},
		{"attach=yes|saycid=no", true},
		{"anything=yes", true},
		{"no", false},
		{"disabled", false},
		{"", false},
		{"yes please", false}, // exact token match only
		{"0", false},
	}
	for _, tc := range tests {
		if got := Truthy(tc.in); got != tc.want {
			t.Errorf("Truthy(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in     string
		pretty bool
		first  string
		last   string
	}{
		{"JOHN SMITH", true, "John", "Smith"},
		{"JOHN SMITH", false, "JOHN", "SMITH"},
		{"MADONNA", false, "MADONNA", ""},
		{"MADONNA", true, "Madonna", ""},
		// Only the first space splits; the rest stays in the last name.
		{"MARY JANE WATSON", false, "MARY", "JANE WATSON"},
		{"", false, "", ""},
	}
	for _, tc := range tests {
		first, last := SplitName(tc.in, tc.pretty)
		if first != tc.first || last != tc.last {
			t.Errorf("SplitName(%q, pretty=%v) = (%q, %q), want (%q, %q)",
				tc.in, tc.pretty, first, last, tc.first, tc.last)
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct{ in, want string }{
		{"(555) 123-4567", "5551234567"},
		{"+1 800 FLOWERS", "1800"},
		{"1234", "1234"},
		{"", ""},
		{"ext.", ""},
	}
	for _, tc := range tests {
		if got := DigitsOnly(tc.in); got != tc.want {
			t.Errorf("DigitsOnly(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// ext builds a schema-width extension with the given named overrides.
func ext(t *testing.T, overrides map[string]string) *freepbx.Extension {
	t.Helper()
	fields := make([]string, len(freepbx.Columns))
	for name, v := range overrides {
		i, ok := freepbx.ColumnIndex(name)
		if !ok {
			t.Fatalf("override for unknown column %q", name)
		}
		fields[i] = v
	}
	e, err := freepbx.NewExtension(2, fields)
	if err != nil {
		t.Fatalf("NewExtension: %v", err)
	}
	return e
}

func TestDeriveEmailPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		faxEmail    string
		useFaxEmail bool
		want        string
	}{
		{"flag set, primary wins", " user@pbx.example ", "fax@pbx.example", true, "user@pbx.example"},
		{"flag set, primary empty falls back", "  ", " fax@pbx.example ", true, "fax@pbx.example"},
		{"flag unset, fax email used", "user@pbx.example", "fax@pbx.example", false, "fax@pbx.example"},
		{"flag unset, both empty", "", "", false, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := ext(t, map[string]string{
				"extension": "1001",
				"tech":      "sip",
				"email":     tc.email,
				"faxemail":  tc.faxEmail,
			})
			d := Derive(e, Policy{UseFaxEmail: tc.useFaxEmail}, NewSeededSecretGenerator(1))
			if d.Email != tc.want {
				t.Errorf("Email = %q, want %q", d.Email, tc.want)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	e := ext(t, map[string]string{
		"extension":        "1001",
		"name":             "JOHN SMITH",
		"tech":             "sip",
		"devinfo_dtmfmode": "rfc2833",
		"outboundcid":      "(555) 123-4567",
		"vm":               "enabled",
		"vmpwd":            "42",
		"devinfo_secret":   "99",
		"faxenabled":       "no",
		"email":            "john@pbx.example",
		"faxemail":         "",
	})
	d := Derive(e, Policy{PrettyName: true, UseFaxEmail: true}, NewSeededSecretGenerator(7))

	if d.Extension != "1001" {
		t.Errorf("Extension = %q", d.Extension)
	}
	if d.FirstName != "John" || d.LastName != "Smith" {
		t.Errorf("name = (%q, %q)", d.FirstName, d.LastName)
	}
	if d.DTMF != "RFC2833" {
		t.Errorf("DTMF = %q", d.DTMF)
	}
	if d.OutboundCID != "5551234567" {
		t.Errorf("OutboundCID = %q", d.OutboundCID)
	}
	if d.Voicemail != "yes" {
		t.Errorf("Voicemail = %q", d.Voicemail)
	}
	if d.Fax != "" {
		t.Errorf("Fax = %q, want empty for a disabled flag", d.Fax)
	}
	if d.Email != "john@pbx.example" {
		t.Errorf("Email = %q", d.Email)
	}
	if d.SIPSecret != "0099" {
		t.Errorf("SIPSecret = %q, want zero-filled 0099", d.SIPSecret)
	}
	if d.VoicemailPIN != "0042" {
		t.Errorf("VoicemailPIN = %q, want zero-filled 0042", d.VoicemailPIN)
	}
	if len(d.UserPassword) != UserPasswordLength {
		t.Errorf("UserPassword length = %d, want %d", len(d.UserPassword), UserPasswordLength)
	}
}

func TestDeriveFaxLabel(t *testing.T) {
	e := ext(t, map[string]string{"faxenabled": "Enabled"})
	d := Derive(e, Policy{}, NewSeededSecretGenerator(1))
	if d.Fax != "Fax Detection" {
		t.Errorf("Fax = %q, want %q", d.Fax, "Fax Detection")
	}
}

func TestDerivedLookupCoversKeys(t *testing.T) {
	d := &Derived{
		Extension: "1001", FirstName: "A", LastName: "B", DTMF: "C",
		OutboundCID: "1", Voicemail: "yes", Fax: "", Email: "e",
		SIPSecret: "s", VoicemailPIN: "p", UserPassword: "u",
	}
	for _, key := range Keys {
		if _, ok := d.Lookup(key); !ok {
			t.Errorf("Lookup(%q) not resolvable but listed in Keys", key)
		}
	}
	if _, ok := d.Lookup("bogus"); ok {
		t.Errorf("Lookup accepted an unknown key")
	}
}
