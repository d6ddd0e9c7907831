package windowsterminal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Railly/tinte-sub004/internal/compiler"
	"github.com/Railly/tinte-sub004/internal/provider/providertest"
	"github.com/Railly/tinte-sub004/internal/theme"
)

func TestContract(t *testing.T) {
	providertest.RunContract(t, New())
}

func TestSerializeSchemes(t *testing.T) {
	t.Parallel()

	artifact, err := compiler.Render(New(), theme.Sample(), nil, nil)
	require.NoError(t, err)

	var schemes []Scheme
	require.NoError(t, json.Unmarshal(artifact.Content, &schemes))
	require.Len(t, schemes, 2)
	require.Equal(t, "Flexoki Light", schemes[0].Name)
	require.Equal(t, "Flexoki Dark", schemes[1].Name)
	require.Equal(t, "#fffcf0", schemes[0].Background)
	require.Equal(t, "#100f0f", schemes[1].Background)
	require.Equal(t, "#100f0f", schemes[0].Black)
	require.Equal(t, "#cecdc3", schemes[1].BrightWhite)
	require.Equal(t, "#4385be", schemes[1].Blue)
}
