// Package provider defines the conversion contract every output target
// implements and the registry that resolves targets by id.
package provider

import (
	"regexp"
	"strings"

	"github.com/Railly/tinte-sub004/internal/override"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

// Provider converts a canonical theme into one target artifact.
type Provider interface {
	Metadata() Metadata
	// Tokens declares the palette vocabulary Convert must fill in both modes.
	Tokens() []tokens.Spec
	// Convert maps the theme's palettes onto the vocabulary. It must not
	// fall back to defaults: a missing token is a provider bug.
	Convert(t *theme.Theme) (tokens.Modes, error)
	// Serialize renders the final token maps.
	Serialize(doc Document) (*Artifact, error)
}

// Checker is implemented by providers that need to inspect a final map
// before it is serialized.
type Checker interface {
	Validate(m tokens.Map) bool
}

// Document is the serializer input: the final, normalized maps of both modes.
type Document struct {
	Name  string
	Modes tokens.Modes
}

// Artifact is a compiled output file.
type Artifact struct {
	Provider string
	Filename string
	Kind     string
	Content  []byte
}

// Vocabulary returns every token name an override may target for p.
func Vocabulary(p Provider) []tokens.Spec {
	specs := append([]tokens.Spec(nil), p.Tokens()...)
	if p.Metadata().Style {
		specs = append(specs, override.StyleSpecs()...)
	}
	return specs
}

// Missing reports the declared tokens absent from m.
func Missing(m tokens.Map, specs []tokens.Spec) []string {
	return m.Missing(specs)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases name and collapses runs of other characters into dashes.
func Slug(name string) string {
	s := strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if s == "" {
		return "theme"
	}
	return s
}

// Filename joins the slugged theme name and the provider's extension.
func Filename(name string, meta Metadata) string {
	return Slug(name) + meta.Artifact.Extension
}

// NewArtifact builds the artifact for doc using meta's naming rules.
func NewArtifact(meta Metadata, doc Document, content []byte) *Artifact {
	return &Artifact{
		Provider: meta.ID,
		Filename: Filename(doc.Name, meta),
		Kind:     meta.Artifact.Kind,
		Content:  content,
	}
}
