// Package tokens defines the output token vocabulary shared by providers,
// the override engine and the compiler.
package tokens

import "sort"

// Kind classifies how a token value is formatted.
type Kind string

const (
	KindColor  Kind = "color"
	KindLength Kind = "length"
	KindFont   Kind = "font"
	KindShadow Kind = "shadow"
	KindNumber Kind = "number"
	KindText   Kind = "text"
)

// Spec declares one entry of a provider's output vocabulary.
type Spec struct {
	Name string
	Kind Kind
}

// Colors builds color specs for the given names, preserving order.
func Colors(names ...string) []Spec {
	specs := make([]Spec, 0, len(names))
	for _, name := range names {
		specs = append(specs, Spec{Name: name, Kind: KindColor})
	}
	return specs
}

// Names returns the token names of specs in declaration order.
func Names(specs []Spec) []string {
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	return names
}

// Index returns a lookup set of specs keyed by name.
func Index(specs []Spec) map[string]Spec {
	index := make(map[string]Spec, len(specs))
	for _, spec := range specs {
		index[spec.Name] = spec
	}
	return index
}

// Map is a mode-scoped mapping from token name to formatted value.
type Map map[string]string

// Clone returns a shallow copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys returns the token names in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Missing lists the declared names that are absent or empty in m, in declaration order.
func (m Map) Missing(specs []Spec) []string {
	var missing []string
	for _, spec := range specs {
		if v, ok := m[spec.Name]; !ok || v == "" {
			missing = append(missing, spec.Name)
		}
	}
	return missing
}

// Modes pairs the light and dark token maps of one conversion.
type Modes struct {
	Light Map
	Dark  Map
}

// Get returns the map for the named mode.
func (m Modes) Get(mode string) Map {
	if mode == "dark" {
		return m.Dark
	}
	return m.Light
}
