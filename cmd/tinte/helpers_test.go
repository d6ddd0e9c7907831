package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Railly/tinte-sub004/internal/theme"
)

// setupHome isolates the config lookup and TINTE_* environment of one test.
func setupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	for _, key := range []string{"TINTE_LOG_LEVEL", "TINTE_HUMAN_LOGS", "TINTE_DEFAULT_PROVIDER", "TINTE_OUTPUT_DIR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func writeTheme(t *testing.T, dir string, th *theme.Theme) string {
	t.Helper()

	data, err := yaml.Marshal(th)
	require.NoError(t, err)

	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeConfig(t *testing.T, home, contents string) string {
	t.Helper()

	dir := filepath.Join(home, "config", "tinte")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
