package warp

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Railly/tinte-sub004/internal/compiler"
	"github.com/Railly/tinte-sub004/internal/provider/providertest"
	"github.com/Railly/tinte-sub004/internal/theme"
)

func TestContract(t *testing.T) {
	providertest.RunContract(t, New())
}

func TestSerializeTwoDocuments(t *testing.T) {
	t.Parallel()

	artifact, err := compiler.Render(New(), theme.Sample(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, "flexoki.yaml", artifact.Filename)

	dec := yaml.NewDecoder(bytes.NewReader(artifact.Content))
	var docs []Theme
	for {
		var th Theme
		err := dec.Decode(&th)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		docs = append(docs, th)
	}

	require.Len(t, docs, 2)
	require.Equal(t, "Flexoki Light", docs[0].Name)
	require.Equal(t, "lighter", docs[0].Details)
	require.Equal(t, "darker", docs[1].Details)
	require.Equal(t, "#205ea6", docs[0].Accent)
	require.Equal(t, "#100f0f", docs[1].Background)
	require.Equal(t, "#af3029", docs[0].TerminalColors.Normal.Red)
	require.NotEmpty(t, docs[1].TerminalColors.Bright.Cyan)
}
