// Package brand emits a Markdown brand guideline: color roles in several
// notations, WCAG contrast grades, typography, radius and elevation.
package brand

import (
	"fmt"
	"strings"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/override"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/shadow"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

var roles = []struct {
	token string
	slot  theme.Slot
	on    string
}{
	{token: "surface", slot: theme.SlotBackground},
	{token: "surface-raised", slot: theme.SlotBackground2},
	{token: "border-subtle", slot: theme.SlotInterface},
	{token: "border", slot: theme.SlotInterface2},
	{token: "border-strong", slot: theme.SlotInterface3},
	{token: "ink", slot: theme.SlotText},
	{token: "ink-muted", slot: theme.SlotText2},
	{token: "ink-subtle", slot: theme.SlotText3},
	{token: "primary", slot: theme.SlotPrimary},
	{token: "on-primary", on: "primary"},
	{token: "secondary", slot: theme.SlotSecondary},
	{token: "on-secondary", on: "secondary"},
	{token: "accent-1", slot: theme.SlotAccent},
	{token: "accent-2", slot: theme.SlotAccent2},
	{token: "accent-3", slot: theme.SlotAccent3},
}

// contrastPairs lists the foreground/background pairs graded in the document.
var contrastPairs = [][2]string{
	{"ink", "surface"},
	{"ink-muted", "surface"},
	{"ink-subtle", "surface"},
	{"ink", "surface-raised"},
	{"on-primary", "primary"},
	{"on-secondary", "secondary"},
	{"primary", "surface"},
}

// Provider emits brand guideline documents.
type Provider struct{}

// New returns the brand guideline provider.
func New() *Provider { return &Provider{} }

func (*Provider) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:          "brand",
		Name:        "Brand guidelines",
		Category:    provider.CategoryDocument,
		Version:     "1.0.0",
		Description: "Markdown brand guideline with contrast grades, typography and elevation",
		Artifact:    provider.ArtifactInfo{Extension: ".md", Kind: "text/markdown"},
		Style:       true,
	}
}

func (*Provider) Tokens() []tokens.Spec {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.token)
	}
	return tokens.Colors(names...)
}

func (*Provider) Convert(t *theme.Theme) (tokens.Modes, error) {
	light, err := convertMode(t.Light)
	if err != nil {
		return tokens.Modes{}, err
	}
	dark, err := convertMode(t.Dark)
	if err != nil {
		return tokens.Modes{}, err
	}
	return tokens.Modes{Light: light, Dark: dark}, nil
}

func convertMode(p theme.Palette) (tokens.Map, error) {
	m := tokens.Map{}
	for _, r := range roles {
		if r.on == "" {
			m[r.token] = p.Get(r.slot)
		}
	}
	for _, r := range roles {
		if r.on == "" {
			continue
		}
		fg, err := color.Readable(m[r.on], p.BG, p.TX)
		if err != nil {
			return nil, err
		}
		m[r.token] = fg
	}
	return m, nil
}

// Validate requires every color role to be present and parseable. Contrast
// is reported in the document, never enforced here.
func (*Provider) Validate(m tokens.Map) bool {
	for _, r := range roles {
		if !color.Valid(m[r.token]) {
			return false
		}
	}
	return true
}

func (b *Provider) Serialize(doc provider.Document) (*provider.Artifact, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s brand guidelines\n", doc.Name)

	for _, mode := range theme.Modes() {
		if err := writeMode(&sb, mode, doc.Modes.Get(string(mode))); err != nil {
			return nil, fmt.Errorf("%s: %w", mode, err)
		}
	}
	return provider.NewArtifact(b.Metadata(), doc, []byte(sb.String())), nil
}

func label(token string) string {
	s := strings.ReplaceAll(token, "-", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}

func writeMode(sb *strings.Builder, mode theme.Mode, m tokens.Map) error {
	fmt.Fprintf(sb, "\n## %s mode\n\n", label(string(mode)))
	sb.WriteString("| Role | Token | Hex | RGB | OKLCH |\n")
	sb.WriteString("|------|-------|-----|-----|-------|\n")

	parsed := map[string]color.Color{}
	for _, r := range roles {
		c, err := color.Parse(m[r.token])
		if err != nil {
			return fmt.Errorf("token %s: %w", r.token, err)
		}
		parsed[r.token] = c
		fmt.Fprintf(sb, "| %s | `%s` | `%s` | `%s` | `%s` |\n",
			label(r.token), r.token,
			color.Format(c, color.NotationHex),
			color.Format(c, color.NotationRGB),
			color.Format(c, color.NotationOKLCH))
	}

	sb.WriteString("\n### Contrast\n\n")
	sb.WriteString("| Foreground | Background | Ratio | WCAG |\n")
	sb.WriteString("|------------|------------|-------|------|\n")
	for _, pair := range contrastPairs {
		ratio := color.ContrastRatio(parsed[pair[0]], parsed[pair[1]])
		fmt.Fprintf(sb, "| `%s` | `%s` | %.2f:1 | %s |\n", pair[0], pair[1], ratio, color.ContrastGrade(ratio))
	}

	sb.WriteString("\n### Typography\n\n")
	sb.WriteString("| Family | Stack |\n")
	sb.WriteString("|--------|-------|\n")
	for _, f := range []string{override.TokenFontSans, override.TokenFontSerif, override.TokenFontMono} {
		fmt.Fprintf(sb, "| %s | `%s` |\n", label(strings.TrimPrefix(f, "font-")), m[f])
	}

	sb.WriteString("\n### Radius\n\n")
	sb.WriteString("| Step | Value |\n")
	sb.WriteString("|------|-------|\n")
	for _, r := range []string{override.TokenRadiusSm, override.TokenRadiusMd, override.TokenRadiusLg, override.TokenRadiusXl} {
		fmt.Fprintf(sb, "| %s | `%s` |\n", strings.TrimPrefix(r, "radius-"), m[r])
	}

	sb.WriteString("\n### Elevation\n\n")
	sb.WriteString("| Step | Shadow |\n")
	sb.WriteString("|------|--------|\n")
	names := shadow.StepNames()
	for i, spec := range shadow.Specs()[6:] {
		fmt.Fprintf(sb, "| %s | `%s` |\n", names[i], m[spec.Name])
	}
	return nil
}
