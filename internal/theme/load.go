package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a theme document (YAML or JSON) from disk. It does not validate the palettes.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tinteerrors.NewParseError(path, 0, err)
	}
	return Decode(data, path)
}

// Decode parses a theme document. source labels errors.
func Decode(data []byte, source string) (*Theme, error) {
	var t Theme
	if err := DecodeStrict(data, &t); err != nil {
		return nil, tinteerrors.NewParseError(source, ExtractLine(err), err)
	}
	return &t, nil
}

// DecodeStrict unmarshals YAML into out, rejecting unknown keys.
func DecodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("document is empty")
		}
		return err
	}
	return nil
}

// ExtractLine pulls the line number out of a yaml.v3 error message.
func ExtractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
