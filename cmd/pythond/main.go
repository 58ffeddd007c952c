// SPDX-License-Identifier: GPL-3.0-or-later

// Command pythond is the plugin supervisor: it resolves its environment,
// loads the collector modules linked into this binary, materializes their
// configuration, and drives the resulting jobs through check, create and
// update on a single cooperative scheduler.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/freejohn/pythond/internal/env"
	"github.com/freejohn/pythond/internal/jobfactory"
	"github.com/freejohn/pythond/internal/loader"
	"github.com/freejohn/pythond/internal/logger"
	"github.com/freejohn/pythond/internal/module"
	"github.com/freejohn/pythond/internal/scheduler"
	"github.com/freejohn/pythond/internal/yamlconfig"

	_ "github.com/freejohn/pythond/modules/example"
	_ "github.com/freejohn/pythond/modules/testrandom"
)

func main() {
	settings := env.Resolve()

	settings.ApplyArgs(os.Args[1:], module.DefaultRegistry.Names())
	logger.SetProgram(settings.Program)
	logger.Level.SetDebug(settings.Debug)

	log := logger.New()

	raw, err := yamlconfig.Load(settings.PythonDConfPath())
	if err != nil {
		log.Errorf("failed to read %s: %s", settings.PythonDConfPath(), err)
	}

	pc := settings.ApplyPluginConfig(raw)
	logger.Level.SetDebug(settings.Debug)
	if pc.Disabled {
		scheduler.Disable(os.Stdout)
		os.Exit(0)
	}

	log = logger.New()

	result, err := loader.Load(settings.ModulesDir, module.DefaultRegistry, settings.Selected, pc.DisabledModules)
	if err != nil {
		fatal(log, err.Error())
	}

	rawConfigs := make(map[string]map[string]any, len(result.Loaded))
	for _, lm := range result.Loaded {
		raw, err := yamlconfig.Load(settings.ModuleConfPath(lm.Name))
		if err != nil {
			log.Errorf("%s: failed to read config: %s", lm.Name, err)
		}
		rawConfigs[lm.Name] = raw
	}

	jobs := jobfactory.Build(result.Loaded, rawConfigs, settings, os.Stdout)
	if len(jobs) == 0 {
		fatal(log, "no jobs were constructed from any loaded module")
	}

	runner := scheduler.New(os.Stdout, jobs)
	if err := runner.Check(); err != nil {
		fatal(log, err.Error())
	}
	if err := runner.Create(); err != nil {
		fatal(log, err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		fatal(log, err.Error())
	}
}

// fatal logs msg at FATAL level, tells the host agent not to restart this
// plugin instance, and exits with a non-zero status.
func fatal(log *logger.Logger, msg string) {
	log.Fatal(msg)
	scheduler.Disable(os.Stdout)
	os.Exit(1)
}
