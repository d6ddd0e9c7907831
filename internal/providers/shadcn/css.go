package shadcn

import (
	"fmt"
	"strings"

	"github.com/Railly/tinte-sub004/internal/override"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

// CSS emits a Tailwind v4 stylesheet: `:root` and `.dark` variable blocks plus
// an `@theme inline` block aliasing them.
type CSS struct{}

// NewCSS returns the shadcn CSS provider.
func NewCSS() *CSS { return &CSS{} }

func (*CSS) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:          "shadcn",
		Name:        "shadcn/ui",
		Category:    provider.CategoryUI,
		Version:     "1.0.0",
		Description: "CSS variables for shadcn/ui with Tailwind v4 theme aliases",
		Artifact:    provider.ArtifactInfo{Extension: ".css", Kind: "text/css"},
		Style:       true,
	}
}

func (*CSS) Tokens() []tokens.Spec { return Specs() }

func (*CSS) Convert(t *theme.Theme) (tokens.Modes, error) { return convert(t) }

func (c *CSS) Serialize(doc provider.Document) (*provider.Artifact, error) {
	specs := append(Specs(), override.StyleSpecs()...)

	var b strings.Builder
	writeBlock(&b, ":root", doc.Modes.Light, specs)
	b.WriteString("\n")
	writeBlock(&b, ".dark", doc.Modes.Dark, specs)
	b.WriteString("\n@theme inline {\n")
	for _, spec := range specs {
		if _, ok := doc.Modes.Light[spec.Name]; !ok {
			continue
		}
		fmt.Fprintf(&b, "  --%s: var(--%s);\n", aliasName(spec), spec.Name)
	}
	b.WriteString("}\n")

	return provider.NewArtifact(c.Metadata(), doc, []byte(b.String())), nil
}

func writeBlock(b *strings.Builder, selector string, m tokens.Map, specs []tokens.Spec) {
	fmt.Fprintf(b, "%s {\n", selector)
	for _, spec := range specs {
		v, ok := m[spec.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "  --%s: %s;\n", spec.Name, v)
	}
	b.WriteString("}\n")
}

// aliasName is the Tailwind theme variable for spec: colors get the
// `color-` namespace, the rest keep their name.
func aliasName(spec tokens.Spec) string {
	if spec.Kind == tokens.KindColor && !strings.HasPrefix(spec.Name, "shadow-") {
		return "color-" + spec.Name
	}
	return spec.Name
}
