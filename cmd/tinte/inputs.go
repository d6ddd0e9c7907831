package main

import (
	"github.com/Railly/tinte-sub004/internal/override"
	"github.com/Railly/tinte-sub004/internal/theme"
)

func loadTheme(path string) (*theme.Theme, error) {
	th, err := theme.Load(path)
	if err != nil {
		return nil, newCommandError("load theme", path, err, "Check that the file exists and is valid YAML or JSON.")
	}
	return th, nil
}

func loadOverrides(path string) (*override.Layer, error) {
	if path == "" {
		return nil, nil
	}
	layer, err := override.LoadLayer(path)
	if err != nil {
		return nil, newCommandError("load overrides", path, err, "Override files accept light and dark sections with tokens, fonts, radius and shadow.")
	}
	return layer, nil
}

func (f *rootFlags) providerOr(id string) string {
	if id != "" {
		return id
	}
	if f.app != nil {
		return f.app.Settings.DefaultProvider
	}
	return ""
}

func (f *rootFlags) outputDirOr(dir string) string {
	if dir != "" {
		return dir
	}
	if f.app != nil {
		return f.app.Settings.OutputDir
	}
	return ""
}
