package shadcn

import (
	"encoding/json"
	"fmt"

	"github.com/Railly/tinte-sub004/internal/override"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/shadow"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

// RegistrySchema is the JSON schema of a shadcn registry item.
const RegistrySchema = "https://ui.shadcn.com/schema/registry-item.json"

// Registry emits a shadcn registry item installable with `shadcn add`.
type Registry struct{}

// NewRegistry returns the shadcn registry-item provider.
func NewRegistry() *Registry { return &Registry{} }

func (*Registry) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:          "shadcn-registry",
		Name:        "shadcn registry item",
		Category:    provider.CategoryUI,
		Version:     "1.0.0",
		Description: "registry:style item with theme, light and dark cssVars",
		Artifact:    provider.ArtifactInfo{Extension: ".json", Kind: "application/json"},
		Style:       true,
	}
}

func (*Registry) Tokens() []tokens.Spec { return Specs() }

func (*Registry) Convert(t *theme.Theme) (tokens.Modes, error) { return convert(t) }

// RegistryItem is the serialized document.
type RegistryItem struct {
	Schema  string  `json:"$schema"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	CSSVars CSSVars `json:"cssVars"`
}

// CSSVars groups variables by scope.
type CSSVars struct {
	Theme map[string]string `json:"theme"`
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark"`
}

// themeScoped tokens are mode independent in a registry item and are read from the light map.
var themeScoped = []string{override.TokenFontSans, override.TokenFontSerif, override.TokenFontMono, override.TokenRadius}

func (r *Registry) Serialize(doc provider.Document) (*provider.Artifact, error) {
	item := RegistryItem{
		Schema: RegistrySchema,
		Name:   provider.Slug(doc.Name),
		Type:   "registry:style",
		CSSVars: CSSVars{
			Theme: map[string]string{},
			Light: modeVars(doc.Modes.Light),
			Dark:  modeVars(doc.Modes.Dark),
		},
	}
	for _, name := range themeScoped {
		if v, ok := doc.Modes.Light[name]; ok {
			item.CSSVars.Theme[name] = v
		}
	}

	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode registry item: %w", err)
	}
	return provider.NewArtifact(r.Metadata(), doc, append(data, '\n')), nil
}

func modeVars(m tokens.Map) map[string]string {
	out := make(map[string]string, len(colorNames)+len(shadow.Specs()))
	for _, spec := range append(Specs(), shadow.Specs()...) {
		if v, ok := m[spec.Name]; ok {
			out[spec.Name] = v
		}
	}
	return out
}
