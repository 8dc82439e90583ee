// Package ucm derives the values the UCM bulk-import side needs from an
// accepted FreePBX extension: name splitting, DTMF and caller-ID cleanup,
// yes/no token translation, email fallback, and password synthesis.
package ucm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/veryxcit/freepbx2ucm/internal/freepbx"
)

// Policy carries the user-selected conversion knobs. The flags map 1:1 onto
// the CLI surface.
type Policy struct {
	// AllRandom generates fresh device/voicemail secrets instead of
	// zero-filling the exported ones.
	AllRandom bool

	// PrettyName title-cases display names ("JOHN SMITH" -> "John Smith")
	// before splitting.
	PrettyName bool

	// UseFaxEmail prefers the primary email field, falling back to the fax
	// email; without it the fax email field is used directly. FreePBX carries
	// both, the UCM only has one.
	UseFaxEmail bool
}

// Derived holds the per-record values computed immediately before output
// mapping. It lives only for the duration of one row's mapping.
type Derived struct {
	Extension    string
	FirstName    string
	LastName     string
	DTMF         string
	OutboundCID  string
	Voicemail    string // "yes" or "no"
	Fax          string // "Fax Detection" or empty
	Email        string
	SIPSecret    string
	VoicemailPIN string
	UserPassword string
}

// faxDetectionLabel is the UCM token enabling fax detection on an extension.
const faxDetectionLabel = "Fax Detection"

// Derive computes the derived record for one accepted extension. Each rule is
// independent; none of them can fail, the fallbacks are part of the contract.
func Derive(ext *freepbx.Extension, pol Policy, gen *SecretGenerator) *Derived {
	first, last := SplitName(ext.Name(), pol.PrettyName)

	vm := "no"
	if Truthy(ext.Voicemail()) {
		vm = "yes"
	}
	fax := ""
	if Truthy(ext.FaxEnabled()) {
		fax = faxDetectionLabel
	}

	email := strings.TrimSpace(ext.FaxEmail())
	if pol.UseFaxEmail && strings.TrimSpace(ext.Email()) != "" {
		email = strings.TrimSpace(ext.Email())
	}

	return &Derived{
		Extension:    ext.Number(),
		FirstName:    first,
		LastName:     last,
		DTMF:         strings.ToUpper(ext.DTMFMode()),
		OutboundCID:  DigitsOnly(ext.OutboundCID()),
		Voicemail:    vm,
		Fax:          fax,
		Email:        email,
		SIPSecret:    gen.DeviceSecret(ext.Secret(), pol.AllRandom),
		VoicemailPIN: gen.VoicemailPIN(ext.VoicemailPwd(), pol.AllRandom),
		UserPassword: gen.UserPassword(),
	}
}

// SplitName splits a display name on the first space into first and last
// name. A name without a space becomes the first name with an empty last
// name; that is the expected shape for mononyms, not an error.
func SplitName(full string, pretty bool) (first, last string) {
	if pretty {
		full = cases.Title(language.English).String(full)
	}
	first, last, _ = strings.Cut(full, " ")
	return first, last
}

// truthyTokens are the exact (lowercased, trimmed) values FreePBX uses for
// enabled flags across module versions.
var truthyTokens = map[string]struct{}{
	"enabled": {},
	"yes":     {},
	"true":    {},
	"checked": {},
}

// Truthy reports whether a FreePBX flag field is enabled. Besides the exact
// tokens, values like "attach=yes|saycid=no" count as enabled because some
// exports pack sub-options into the flag column.
func Truthy(s string) bool {
	check := strings.ToLower(strings.TrimSpace(s))
	if _, ok := truthyTokens[check]; ok {
		return true
	}
	return strings.Contains(check, "=yes")
}

// DigitsOnly strips everything but decimal digits, e.g. a caller ID of
// "(555) 123-4567" becomes "5551234567". An empty result is valid.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Keys lists the reference names the output mapping may use for derived
// values, in a stable order.
var Keys = []string{
	"extension",
	"fname",
	"lname",
	"dtmf",
	"outcid",
	"vm",
	"fax",
	"email",
	"sip_pass",
	"vm_pass",
	"user_pass",
}

// Lookup resolves a mapping reference key against the derived record.
func (d *Derived) Lookup(key string) (string, bool) {
	switch key {
	case "extension":
		return d.Extension, true
	case "fname":
		return d.FirstName, true
	case "lname":
		return d.LastName, true
	case "dtmf":
		return d.DTMF, true
	case "outcid":
		return d.OutboundCID, true
	case "vm":
		return d.Voicemail, true
	case "fax":
		return d.Fax, true
	case "email":
		return d.Email, true
	case "sip_pass":
		return d.SIPSecret, true
	case "vm_pass":
		return d.VoicemailPIN, true
	case "user_pass":
		return d.UserPassword, true
	}
	return "", false
}
