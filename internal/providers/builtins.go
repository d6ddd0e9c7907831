// Package providers wires the built-in output targets into a registry.
package providers

import (
	"fmt"

	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/providers/alacritty"
	"github.com/Railly/tinte-sub004/internal/providers/brand"
	"github.com/Railly/tinte-sub004/internal/providers/ghostty"
	"github.com/Railly/tinte-sub004/internal/providers/iterm2"
	"github.com/Railly/tinte-sub004/internal/providers/kitty"
	"github.com/Railly/tinte-sub004/internal/providers/shadcn"
	"github.com/Railly/tinte-sub004/internal/providers/vscode"
	"github.com/Railly/tinte-sub004/internal/providers/warp"
	"github.com/Railly/tinte-sub004/internal/providers/windowsterminal"
)

// Builtins returns a fresh instance of every built-in provider.
func Builtins() []provider.Provider {
	return []provider.Provider{
		shadcn.NewCSS(),
		shadcn.NewRegistry(),
		vscode.New(),
		alacritty.New(),
		kitty.New(),
		ghostty.New(),
		iterm2.New(),
		windowsterminal.New(),
		warp.New(),
		brand.New(),
	}
}

// RegisterBuiltins registers every built-in provider with reg.
func RegisterBuiltins(reg *provider.Registry) error {
	for _, p := range Builtins() {
		if err := reg.Register(p); err != nil {
			return fmt.Errorf("register %s: %w", p.Metadata().ID, err)
		}
	}
	return nil
}

// NewRegistry returns a frozen registry holding the built-in providers.
func NewRegistry(reg *provider.Registry) (*provider.Registry, error) {
	if err := RegisterBuiltins(reg); err != nil {
		return nil, err
	}
	reg.Freeze()
	return reg, nil
}
