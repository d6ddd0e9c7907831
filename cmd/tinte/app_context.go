package main

import (
	"github.com/Railly/tinte-sub004/internal/compiler"
	"github.com/Railly/tinte-sub004/internal/logger"
	"github.com/Railly/tinte-sub004/internal/provider"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	Settings settings
	Logger   *logger.Logger
	Registry *provider.Registry
	Compiler *compiler.Compiler
}
