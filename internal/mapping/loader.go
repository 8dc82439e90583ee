package mapping

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// LoadFile loads and parses a YAML mapping definition from the given path.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("mapping file %s: %w", path, err)
	}
	return def, nil
}

// Parse parses YAML data into a Definition. Structural validation is a
// separate step (Validate/Compile); Parse only rejects malformed YAML.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse mapping YAML: %w", err)
	}
	return &d, nil
}

// Default returns the built-in mapping definition. To customize the output,
// dump it with DefaultYAML, edit the copy, and pass its path to the CLI.
func Default() *Definition {
	d, err := Parse(defaultYAML)
	if err != nil {
		// The default is embedded at build time; failing to parse it is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded default mapping: %v", err))
	}
	return d
}

// DefaultYAML returns the raw built-in definition, suitable as a starting
// point for a user override file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}
