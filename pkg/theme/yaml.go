package theme

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadFromYAML parses a YAML theme definition. The document has the same
// shape as the TOML form.
func LoadFromYAML(data []byte) (Theme, error) {
	var ft thFileTheme
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ft); err != nil {
		return Theme{}, fmt.Errorf("theme: parse YAML: %w", err)
	}
	return thFromFile(ft)
}

// SaveToYAML serializes a theme to YAML bytes.
func SaveToYAML(t Theme) ([]byte, error) {
	out, err := yaml.Marshal(thToFile(t))
	if err != nil {
		return nil, fmt.Errorf("theme: encode YAML: %w", err)
	}
	return out, nil
}
