package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Railly/tinte-sub004/internal/compiler"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/pkg/diff"
)

type compileOptions struct {
	providerID string
	all        bool
	overrides  string
	outDir     string
	check      bool
}

func newCompileCmd(root *rootFlags) *cobra.Command {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile <theme>",
		Short: "Compile a theme into one or every provider's artifact",
		Long: `Compile a theme file into the artifact of a provider.

Without --out the artifact is written to stdout. With --all every registered
provider is compiled in parallel into --out. --check compares the generated
artifacts with the files already in --out and fails when they drift.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.providerID, "provider", "p", "", "Provider id (default from config, else shadcn)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Compile every registered provider")
	cmd.Flags().StringVarP(&opts.overrides, "overrides", "o", "", "Override file applied on top of the theme")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "Directory to write artifacts into")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail if the artifacts in --out are out of date")
	cmd.MarkFlagsMutuallyExclusive("provider", "all")

	return cmd
}

func runCompile(cmd *cobra.Command, root *rootFlags, opts *compileOptions, themePath string) error {
	app := root.app
	th, err := loadTheme(themePath)
	if err != nil {
		return err
	}
	layer, err := loadOverrides(opts.overrides)
	if err != nil {
		return err
	}

	outDir := root.outputDirOr(opts.outDir)
	if (opts.all || opts.check) && outDir == "" {
		outDir = "."
	}

	var artifacts []*provider.Artifact
	if opts.all {
		artifacts, err = app.Compiler.CompileAll(cmd.Context(), th, layer, nil)
		if err != nil {
			return newCommandError("compile theme", themePath, err, "Run 'tinte validate' on the theme and check the override file.")
		}
	} else {
		id := root.providerOr(opts.providerID)
		artifact, err := app.Compiler.Compile(compiler.Request{Theme: th, ProviderID: id, Overrides: layer})
		if err != nil {
			return newCommandError("compile theme", fmt.Sprintf("%s for provider %q", themePath, id), err, "Run 'tinte providers' to list provider ids and 'tinte validate' to check the theme.")
		}
		artifacts = append(artifacts, artifact)
	}

	if opts.check {
		return checkArtifacts(cmd, outDir, artifacts, opts.all)
	}
	if outDir == "" {
		_, err := cmd.OutOrStdout().Write(artifacts[0].Content)
		return err
	}
	return writeArtifacts(cmd, outDir, artifacts, opts.all)
}

// artifactPath places a under dir. Several providers share an extension, so
// multi-provider runs nest each artifact under its provider id.
func artifactPath(dir string, a *provider.Artifact, nested bool) string {
	if nested {
		return filepath.Join(dir, a.Provider, a.Filename)
	}
	return filepath.Join(dir, a.Filename)
}

func writeArtifacts(cmd *cobra.Command, dir string, artifacts []*provider.Artifact, nested bool) error {
	for _, a := range artifacts {
		path := artifactPath(dir, a, nested)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return newCommandError("create output directory", filepath.Dir(path), err, "Check the directory permissions.")
		}
		if err := os.WriteFile(path, a.Content, 0o644); err != nil {
			return newCommandError("write artifact", path, err, "Check the directory permissions.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d bytes)\n", path, a.Provider, len(a.Content))
	}
	return nil
}

func checkArtifacts(cmd *cobra.Command, dir string, artifacts []*provider.Artifact, nested bool) error {
	out := cmd.OutOrStdout()
	stale := 0

	for _, a := range artifacts {
		path := artifactPath(dir, a, nested)
		existing, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return newCommandError("read artifact", path, err, "Check the file permissions.")
		}

		text, stats := diff.Unified(existing, a.Content, path, path+" (generated)")
		if text == "" {
			fmt.Fprintf(out, "ok    %s\n", path)
			continue
		}
		stale++
		fmt.Fprintf(out, "stale %s (%s)\n%s", path, stats, text)
	}

	if stale > 0 {
		return newCommandError("check artifacts", fmt.Sprintf("%d of %d artifacts in %s are out of date", stale, len(artifacts), dir), errDrift, "Run 'tinte compile' without --check to regenerate them.")
	}
	return nil
}
