package ucm

import (
	"math/rand/v2"
	"strings"
)

// The UCM enforces minimum password lengths on import: 4 characters for the
// device and voicemail secrets, 6 for the user portal password.
const (
	DeviceSecretLength = 4
	VoicemailPINLength = 4
	UserPasswordLength = 6
)

// Alphabets for generated secrets. Uniform selection is sufficient here;
// these are import-time placeholders, not long-term credentials.
const (
	AlphanumericAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	DigitsAlphabet       = "0123456789"
)

// SecretGenerator produces the three secrets each exported extension needs.
// It is not concurrency-safe; the pipeline runs strictly sequentially.
type SecretGenerator struct {
	rnd *rand.Rand
}

// NewSecretGenerator returns a generator seeded from the process-wide source.
func NewSecretGenerator() *SecretGenerator {
	return &SecretGenerator{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSecretGenerator returns a deterministic generator for tests.
func NewSeededSecretGenerator(seed uint64) *SecretGenerator {
	return &SecretGenerator{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// Random returns a fresh random string of exactly length characters drawn
// uniformly from alphabet.
func (g *SecretGenerator) Random(length int, alphabet string) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphabet[g.rnd.IntN(len(alphabet))])
	}
	return b.String()
}

// Fill reuses an existing secret by zero-filling it to length. The zero-fill
// path requires a non-empty source value; an empty one falls back to a fresh
// random string, as does allRandom mode.
func (g *SecretGenerator) Fill(existing string, allRandom bool, length int, alphabet string) string {
	if allRandom || existing == "" {
		return g.Random(length, alphabet)
	}
	return zeroFill(existing, length)
}

// DeviceSecret derives the SIP/IAX device secret from the exported one.
func (g *SecretGenerator) DeviceSecret(existing string, allRandom bool) string {
	return g.Fill(existing, allRandom, DeviceSecretLength, AlphanumericAlphabet)
}

// VoicemailPIN derives the voicemail PIN; the UCM accepts digits only.
func (g *SecretGenerator) VoicemailPIN(existing string, allRandom bool) string {
	return g.Fill(existing, allRandom, VoicemailPINLength, DigitsAlphabet)
}

// UserPassword generates the portal password. FreePBX has no equivalent
// field, so this one is always freshly generated.
func (g *SecretGenerator) UserPassword() string {
	return g.Random(UserPasswordLength, AlphanumericAlphabet)
}

// zeroFill left-pads s with '0' to length. Longer values pass through
// unchanged; the UCM enforces a minimum, not a maximum.
func zeroFill(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat("0", length-len(s)) + s
}
