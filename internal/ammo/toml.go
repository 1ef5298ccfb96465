package ammo

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// tableFile is the on-disk layout of a custom ammo table:
//
//	default = "10mm"
//
//	[[ammo]]
//	name = "10mm"
//	mass_g = 4.2
//	diameter_m = 0.010
type tableFile struct {
	Default string    `toml:"default"`
	Ammo    []Profile `toml:"ammo"`
}

// ParseTOML decodes a custom ammo table. Unknown keys are rejected.
func ParseTOML(data []byte) (*Table, error) {
	var f tableFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding ammo table: %w", err)
	}
	return NewTable(f.Ammo, f.Default)
}

// LoadTOML reads a custom ammo table from path.
func LoadTOML(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ammo table: %w", err)
	}
	t, err := ParseTOML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
