package override

import (
	"os"

	"github.com/Railly/tinte-sub004/internal/theme"
	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

// LoadLayer reads an override layer (YAML or JSON) from disk.
func LoadLayer(path string) (*Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tinteerrors.NewParseError(path, 0, err)
	}
	return DecodeLayer(data, path)
}

// DecodeLayer parses an override layer document. source labels errors.
func DecodeLayer(data []byte, source string) (*Layer, error) {
	var l Layer
	if err := theme.DecodeStrict(data, &l); err != nil {
		return nil, tinteerrors.NewParseError(source, theme.ExtractLine(err), err)
	}
	return &l, nil
}
