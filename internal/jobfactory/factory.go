// SPDX-License-Identifier: GPL-3.0-or-later

// Package jobfactory turns loaded modules and their materialized configs
// into the Job instances the scheduler drives (§4.4).
package jobfactory

import (
	"io"

	"github.com/freejohn/pythond/internal/env"
	"github.com/freejohn/pythond/internal/loader"
	"github.com/freejohn/pythond/internal/logger"
	"github.com/freejohn/pythond/internal/materializer"
	"github.com/freejohn/pythond/internal/module"
)

// Build constructs one Job per (module, job-name) pair. rawConfigs maps a
// module name to its decoded config file (nil when absent). A module whose
// constructor fails for a given job is logged and skipped; it does not
// affect the other jobs of the same module or of other modules.
func Build(loaded []loader.LoadedModule, rawConfigs map[string]map[string]any, settings *env.Settings, out io.Writer) []*module.Job {
	log := logger.New()

	var jobs []*module.Job
	for _, lm := range loaded {
		cfg := materializer.Materialize(rawConfigs[lm.Name], lm.Creator, settings.Base)

		for jobName, jc := range cfg {
			if settings.Debug && settings.OverrideUpdateEvery {
				jc.SetUpdateEvery(settings.Base.UpdateEvery)
			}

			buf, api := module.NewBuffer()
			mod, err := lm.Creator.Create(jc, jobName, api)
			if err != nil {
				log.Errorf("%s: failed to construct job %q: %s", lm.Name, displayName(jobName), err)
				continue
			}

			jobs = append(jobs, module.NewJob(module.Config{
				ModuleName:  lm.Name,
				Name:        jobName,
				Module:      mod,
				UpdateEvery: jc.UpdateEvery(),
				Retries:     jc.Retries(),
				Out:         out,
				Buf:         buf,
				API:         api,
			}))
		}
	}
	return jobs
}

func displayName(jobName string) string {
	if jobName == "" {
		return "(default)"
	}
	return jobName
}
