// Package ammo holds slingshot projectile profiles.
package ammo

import "fmt"

// Profile describes a single projectile type.
type Profile struct {
	Name      string  `toml:"name"`
	MassGrams float64 `toml:"mass_g"`
	DiameterM float64 `toml:"diameter_m"` // 0 when unknown
}

// MassKg returns the projectile mass in kilograms.
func (p Profile) MassKg() float64 {
	return p.MassGrams / 1000.0
}

// Table is an ordered set of profiles with a fallback entry used for
// unrecognized names.
type Table struct {
	profiles []Profile
	index    map[string]int
	fallback int
}

// DefaultName is the fallback profile of the built-in table.
const DefaultName = "8mm钢珠"

// builtin lists steel balls by diameter, then glass and clay.
var builtin = []Profile{
	{Name: "8mm钢珠", MassGrams: 2.08, DiameterM: 0.008},
	{Name: "9.5mm钢珠", MassGrams: 3.6, DiameterM: 0.0095},
	{Name: "10mm钢珠", MassGrams: 4.2, DiameterM: 0.010},
	{Name: "11mm钢珠", MassGrams: 5.6, DiameterM: 0.011},
	{Name: "12mm钢珠", MassGrams: 7.0, DiameterM: 0.012},
	{Name: "玻璃弹珠", MassGrams: 1.5, DiameterM: 0.010},
	{Name: "黏土弹", MassGrams: 0.8, DiameterM: 0.008},
	{Name: "7mm钢珠", MassGrams: 1.4, DiameterM: 0.007},
	{Name: "9mm钢珠", MassGrams: 3.0, DiameterM: 0.009},
}

// DefaultTable returns the built-in profile table.
func DefaultTable() *Table {
	t, err := NewTable(builtin, DefaultName)
	if err != nil {
		panic(err) // builtin is static
	}
	return t
}

// NewTable builds a Table from profiles. fallback names the profile used
// for unknown lookups; when empty the first profile is used.
func NewTable(profiles []Profile, fallback string) (*Table, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("ammo table is empty")
	}

	t := &Table{
		profiles: make([]Profile, 0, len(profiles)),
		index:    make(map[string]int, len(profiles)),
	}
	for _, p := range profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("ammo profile %d has no name", len(t.profiles))
		}
		if p.MassGrams <= 0 {
			return nil, fmt.Errorf("ammo profile %q: mass must be positive, got %g", p.Name, p.MassGrams)
		}
		if _, dup := t.index[p.Name]; dup {
			return nil, fmt.Errorf("duplicate ammo profile %q", p.Name)
		}
		t.index[p.Name] = len(t.profiles)
		t.profiles = append(t.profiles, p)
	}

	if fallback != "" {
		i, ok := t.index[fallback]
		if !ok {
			return nil, fmt.Errorf("default ammo %q not in table", fallback)
		}
		t.fallback = i
	}

	return t, nil
}

// Lookup returns the profile with the given name.
func (t *Table) Lookup(name string) (Profile, bool) {
	i, ok := t.index[name]
	if !ok {
		return Profile{}, false
	}
	return t.profiles[i], true
}

// Resolve returns the named profile, or the fallback profile when the
// name is not in the table.
func (t *Table) Resolve(name string) Profile {
	if p, ok := t.Lookup(name); ok {
		return p
	}
	return t.Default()
}

// Default returns the fallback profile.
func (t *Table) Default() Profile {
	return t.profiles[t.fallback]
}

// Profiles returns the profiles in table order.
func (t *Table) Profiles() []Profile {
	out := make([]Profile, len(t.profiles))
	copy(out, t.profiles)
	return out
}

// Len returns the number of profiles.
func (t *Table) Len() int {
	return len(t.profiles)
}
