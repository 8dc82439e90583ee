package ucm

import (
	"strings"
	"testing"
)

func inAlphabet(s, alphabet string) bool {
	for _, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}

func TestRandomLengthAndAlphabet(t *testing.T) {
	g := NewSeededSecretGenerator(42)
	for _, tc := range []struct {
		length   int
		alphabet string
	}{
		{4, AlphanumericAlphabet},
		{4, DigitsAlphabet},
		{6, AlphanumericAlphabet},
		{1, DigitsAlphabet},
		{32, AlphanumericAlphabet},
	} {
		for i := 0; i < 50; i++ {
			got := g.Random(tc.length, tc.alphabet)
			if len(got) != tc.length {
				t.Fatalf("Random(%d) produced %q (len %d)", tc.length, got, len(got))
			}
			if !inAlphabet(got, tc.alphabet) {
				t.Fatalf("Random produced %q outside alphabet %q", got, tc.alphabet)
			}
		}
	}
}

func TestFillZeroPadsExisting(t *testing.T) {
	g := NewSeededSecretGenerator(1)

	if got := g.DeviceSecret("42", false); got != "0042" {
		t.Errorf("DeviceSecret(42) = %q, want 0042", got)
	}
	if got := g.VoicemailPIN("7", false); got != "0007" {
		t.Errorf("VoicemailPIN(7) = %q, want 0007", got)
	}
	// Already long enough: passes through unchanged.
	if got := g.DeviceSecret("secret99", false); got != "secret99" {
		t.Errorf("DeviceSecret(secret99) = %q, want unchanged", got)
	}
}

func TestFillEmptyFallsBackToRandom(t *testing.T) {
	g := NewSeededSecretGenerator(2)
	got := g.DeviceSecret("", false)
	if len(got) != DeviceSecretLength || !inAlphabet(got, AlphanumericAlphabet) {
		t.Errorf("DeviceSecret(\"\") = %q, want %d chars from %q", got, DeviceSecretLength, AlphanumericAlphabet)
	}
	pin := g.VoicemailPIN("", false)
	if len(pin) != VoicemailPINLength || !inAlphabet(pin, DigitsAlphabet) {
		t.Errorf("VoicemailPIN(\"\") = %q, want %d digits", pin, VoicemailPINLength)
	}
}

func TestAllRandomIgnoresExisting(t *testing.T) {
	g := NewSeededSecretGenerator(3)
	saw := false
	for i := 0; i < 20; i++ {
		got := g.DeviceSecret("42", true)
		if len(got) != DeviceSecretLength || !inAlphabet(got, AlphanumericAlphabet) {
			t.Fatalf("DeviceSecret allrandom = %q", got)
		}
		if got != "0042" {
			saw = true
		}
	}
	if !saw {
		t.Errorf("allrandom mode kept producing the zero-filled value")
	}
}

func TestUserPasswordAlwaysGenerated(t *testing.T) {
	g := NewSeededSecretGenerator(4)
	got := g.UserPassword()
	if len(got) != UserPasswordLength || !inAlphabet(got, AlphanumericAlphabet) {
		t.Errorf("UserPassword() = %q, want %d chars from %q", got, UserPasswordLength, AlphanumericAlphabet)
	}
}

func TestZeroFill(t *testing.T) {
	tests := []struct {
		in     string
		length int
		want   string
	}{
		{"42", 4, "0042"},
		{"1234", 4, "1234"},
		{"12345", 4, "12345"},
		{"a", 4, "000a"},
	}
	for _, tc := range tests {
		if got := zeroFill(tc.in, tc.length); got != tc.want {
			t.Errorf("zeroFill(%q, %d) = %q, want %q", tc.in, tc.length, got, tc.want)
		}
	}
}
