package provider

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	idPattern     = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// Category groups providers by the kind of tool they target.
type Category string

const (
	CategoryUI       Category = "ui"
	CategoryEditor   Category = "editor"
	CategoryTerminal Category = "terminal"
	CategoryDocument Category = "document"
)

// ArtifactInfo describes the file a provider produces.
type ArtifactInfo struct {
	Extension string `json:"extension"`
	Kind      string `json:"kind"`
}

// Metadata describes a provider.
type Metadata struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    Category     `json:"category"`
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Artifact    ArtifactInfo `json:"artifact"`
	// Style marks providers that consume the font, radius and shadow tokens.
	Style bool `json:"style"`
}

// Validate ensures metadata is well-formed.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("provider metadata requires a non-empty ID")
	}
	if !idPattern.MatchString(m.ID) {
		return fmt.Errorf("provider '%s' has invalid ID (expected lowercase letters, digits and dashes)", m.ID)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("provider '%s' metadata requires Name", m.ID)
	}
	switch m.Category {
	case CategoryUI, CategoryEditor, CategoryTerminal, CategoryDocument:
	default:
		return fmt.Errorf("provider '%s' has unknown Category '%s'", m.ID, m.Category)
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("provider '%s' has invalid Version '%s' (expected format: X.Y.Z)", m.ID, m.Version)
	}
	if !strings.HasPrefix(m.Artifact.Extension, ".") || len(m.Artifact.Extension) < 2 {
		return fmt.Errorf("provider '%s' has invalid artifact extension '%s'", m.ID, m.Artifact.Extension)
	}
	if !strings.Contains(m.Artifact.Kind, "/") {
		return fmt.Errorf("provider '%s' has invalid artifact kind '%s' (expected a MIME type)", m.ID, m.Artifact.Kind)
	}
	return nil
}
