package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Railly/tinte-sub004/internal/compiler"
	"github.com/Railly/tinte-sub004/internal/logger"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/providers"
)

type rootFlags struct {
	configPath string
	logLevel   string
	humanLogs  bool

	app *AppContext
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	v := newViper()

	cmd := &cobra.Command{
		Use:           "tinte",
		Short:         "Tinte compiles one palette into themes for editors, terminals and UI kits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(v, flags.configPath)
			if err != nil {
				return newCommandError("load configuration", flags.configPath, err, "Check the config file syntax or pass --config with a valid path.")
			}

			app, err := newAppContext(cmd, cfg)
			if err != nil {
				return err
			}
			flags.app = app
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/tinte/config.yaml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	pf.BoolVar(&flags.humanLogs, "human-logs", false, "Write human-readable logs instead of JSON")

	// Lookup never returns nil for flags defined just above.
	_ = v.BindPFlag(keyLogLevel, pf.Lookup("log-level"))
	_ = v.BindPFlag(keyHumanLogs, pf.Lookup("human-logs"))

	cmd.AddCommand(newCompileCmd(flags))
	cmd.AddCommand(newProvidersCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd(flags))

	return cmd
}

func newAppContext(cmd *cobra.Command, cfg settings) (*AppContext, error) {
	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.HumanLogs,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError("configure logging", fmt.Sprintf("level %q", cfg.LogLevel), err, "Use one of debug, info, warn or error.")
	}
	log = log.WithFields(map[string]any{
		"run_id":  uuid.NewString(),
		"command": cmd.Name(),
	})
	if cfg.ConfigFile != "" {
		log.With("config", cfg.ConfigFile).Debug("configuration loaded")
	}

	reg, err := providers.NewRegistry(provider.NewRegistry(log))
	if err != nil {
		return nil, newCommandError("register providers", "built-in providers", err, "This is a bug; please report it.")
	}

	return &AppContext{
		Settings: cfg,
		Logger:   log,
		Registry: reg,
		Compiler: compiler.New(reg, log),
	}, nil
}
