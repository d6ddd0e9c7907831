// Package compiler is the entry point of the palette pipeline: it validates a
// theme, resolves a provider and drives conversion, override composition,
// color normalization and serialization.
package compiler

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/logger"
	"github.com/Railly/tinte-sub004/internal/override"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

// Request describes one compilation.
type Request struct {
	Theme      *theme.Theme
	ProviderID string
	// Overrides is optional.
	Overrides *override.Layer
}

// Compiler compiles themes against a frozen provider registry.
type Compiler struct {
	registry *provider.Registry
	logger   *logger.Logger
}

// New returns a Compiler backed by reg. log may be nil.
func New(reg *provider.Registry, log *logger.Logger) *Compiler {
	return &Compiler{registry: reg, logger: log}
}

// Resolve returns the final, normalized token maps without serializing them.
func (c *Compiler) Resolve(req Request) (tokens.Modes, error) {
	p, err := c.prepare(req)
	if err != nil {
		return tokens.Modes{}, tinteerrors.NewCompileError(req.ProviderID, err)
	}

	modes, err := Finalize(p, req.Theme, req.Overrides, c.logger)
	if err != nil {
		return tokens.Modes{}, tinteerrors.NewCompileError(req.ProviderID, err)
	}
	return modes, nil
}

// Compile produces the provider's artifact for the request. Every failure is
// a *errors.CompileError wrapping the typed cause.
func (c *Compiler) Compile(req Request) (*provider.Artifact, error) {
	p, err := c.prepare(req)
	if err != nil {
		return nil, tinteerrors.NewCompileError(req.ProviderID, err)
	}

	artifact, err := Render(p, req.Theme, req.Overrides, c.logger)
	if err != nil {
		c.logger.ForTarget(req.ProviderID, "").Error(err, "compilation failed")
		return nil, tinteerrors.NewCompileError(req.ProviderID, err)
	}

	c.logger.ForTarget(req.ProviderID, "").WithFields(map[string]any{
		"file":  artifact.Filename,
		"bytes": len(artifact.Content),
	}).Debug("artifact compiled")
	return artifact, nil
}

// CompileAll compiles the theme for every id in parallel. Results follow the
// order of ids; the first failure cancels the remaining work. An empty ids
// list compiles every registered provider.
func (c *Compiler) CompileAll(ctx context.Context, t *theme.Theme, layer *override.Layer, ids []string) ([]*provider.Artifact, error) {
	if len(ids) == 0 {
		ids = c.registry.IDs()
	}

	results := make([]*provider.Artifact, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			artifact, err := c.Compile(Request{Theme: t, ProviderID: id, Overrides: layer})
			if err != nil {
				return err
			}
			results[i] = artifact
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Compiler) prepare(req Request) (provider.Provider, error) {
	if err := theme.Validate(req.Theme); err != nil {
		return nil, err
	}
	if c.registry == nil {
		return nil, tinteerrors.NewUnknownProviderError(req.ProviderID)
	}
	return c.registry.Get(req.ProviderID)
}

// Render runs Finalize and serializes the result. The theme must already be valid.
func Render(p provider.Provider, t *theme.Theme, layer *override.Layer, log *logger.Logger) (*provider.Artifact, error) {
	modes, err := Finalize(p, t, layer, log)
	if err != nil {
		return nil, err
	}

	id := p.Metadata().ID
	artifact, err := p.Serialize(provider.Document{Name: t.DisplayName(), Modes: modes})
	if err != nil {
		return nil, tinteerrors.NewContractViolationError(id, "", nil, fmt.Errorf("serialize: %w", err))
	}
	if artifact == nil {
		return nil, tinteerrors.NewContractViolationError(id, "", nil, errors.New("serialize returned no artifact"))
	}
	return artifact, nil
}

// Finalize converts t with p and produces the final maps of both modes:
// contract check, override composition, then OKLCH normalization of every
// color-role token. The theme must already be valid.
func Finalize(p provider.Provider, t *theme.Theme, layer *override.Layer, log *logger.Logger) (tokens.Modes, error) {
	meta := p.Metadata()

	raw, err := p.Convert(t)
	if err != nil {
		return tokens.Modes{}, tinteerrors.NewContractViolationError(meta.ID, "", nil, err)
	}

	declared := p.Tokens()
	vocab := provider.Vocabulary(p)
	var out tokens.Modes
	for _, mode := range theme.Modes() {
		m := raw.Get(string(mode))
		if missing := provider.Missing(m, declared); len(missing) > 0 {
			return tokens.Modes{}, tinteerrors.NewContractViolationError(meta.ID, string(mode), missing, nil)
		}

		composed, err := override.Compose(m, t.Style(), layer.For(mode), override.Options{
			Mode:       mode,
			Style:      meta.Style,
			Vocabulary: vocab,
		})
		if err != nil {
			return tokens.Modes{}, err
		}

		final, err := color.NormalizeTokens(composed, vocab)
		if err != nil {
			return tokens.Modes{}, err
		}

		if checker, ok := p.(provider.Checker); ok && !checker.Validate(final) {
			return tokens.Modes{}, tinteerrors.NewContractViolationError(meta.ID, string(mode), nil, errors.New("final token map rejected by provider"))
		}

		log.ForTarget(meta.ID, string(mode)).WithFields(map[string]any{
			"tokens": len(final),
		}).Debug("mode composed")

		if mode == theme.Dark {
			out.Dark = final
		} else {
			out.Light = final
		}
	}
	return out, nil
}
