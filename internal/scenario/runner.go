/*
 Copyright (C) Sierra Wireless Inc.

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package scenario

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/gofrs/flock"

	"github.com/legato-af/lifecycle-harness/internal/config"
	"github.com/legato-af/lifecycle-harness/internal/expect"
	"github.com/legato-af/lifecycle-harness/internal/probe"
	"github.com/legato-af/lifecycle-harness/internal/report"
	"github.com/legato-af/lifecycle-harness/internal/session"
	"github.com/legato-af/lifecycle-harness/internal/workspace"
	"github.com/legato-af/lifecycle-harness/internal/wrappers"
)

// Env bundles the collaborators every scenario works with. All device state
// lives on the target; scenarios only observe it through these interfaces.
type Env struct {
	Cfg       config.Config
	Session   session.Interface
	Expect    expect.Interface
	Probe     probe.Interface
	Workspace workspace.Interface
}

// Scenario is a named, strictly sequential test procedure. Run returns an
// error only for infrastructure failures (build/install broke, channel died
// unexpectedly): those abort the scenario immediately because no device state
// can be trusted afterwards. Assertion failures go into the Recorder and do
// not abort.
type Scenario struct {
	Name string
	Run  func(ctx context.Context, env *Env, rec *Recorder) error
}

// Runner executes scenarios one at a time against the singleton target
// device, bracketing each with setup and teardown so every scenario starts
// from a known-clean state regardless of the previous verdict.
type Runner struct {
	log       logr.Logger
	env       *Env
	os        wrappers.OSWrapper
	store     report.Interface
	scenarios []Scenario
}

// NewRunner creates a runner for the given scenarios. store may be nil when
// result history is not configured.
func NewRunner(log logr.Logger, env *Env, osWrapper wrappers.OSWrapper, store report.Interface, scenarios []Scenario) *Runner {
	return &Runner{
		log:       log,
		env:       env,
		os:        osWrapper,
		store:     store,
		scenarios: scenarios,
	}
}

// Run executes all scenarios and returns an error naming the failed ones.
func (r *Runner) Run(ctx context.Context) error {
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	ctx = logr.NewContext(ctx, r.log)
	if err := r.env.Session.Connect(ctx); err != nil {
		r.log.Error(err, "failed to open the target session")
		return err
	}
	defer func() { _ = r.env.Session.Close() }()

	if err := r.env.Workspace.Bootstrap(ctx); err != nil {
		r.log.Error(err, "suite bootstrap failed")
		return err
	}

	var failed []string
	for _, sc := range r.scenarios {
		res := r.runScenario(ctx, sc)
		if !res.Passed {
			failed = append(failed, sc.Name)
		}
		if r.store != nil {
			if err := r.store.Record(ctx, res); err != nil {
				r.log.Error(err, "failed to record scenario result", "scenario", sc.Name)
			}
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d scenarios failed: %s",
			len(failed), len(r.scenarios), strings.Join(failed, ", "))
	}
	r.log.Info("all scenarios passed", "count", len(r.scenarios))
	return nil
}

func (r *Runner) runScenario(ctx context.Context, sc Scenario) report.Result {
	log := r.log.WithValues("scenario", sc.Name)
	ctx = logr.NewContext(ctx, log)
	rec := NewRecorder(log)
	start := time.Now()

	log.Info("scenario start")
	if err := r.env.Workspace.ClearTargetLog(ctx); err != nil {
		// Dirty logs reduce diagnostic value but do not invalidate the run.
		log.Error(err, "failed to clear target log")
	}

	if err := sc.Run(ctx, r.env, rec); err != nil {
		rec.Failf("scenario aborted: %v", err)
	}

	r.teardown(ctx, rec)

	res := report.Result{
		Scenario:  sc.Name,
		Passed:    rec.Passed(),
		Errors:    rec.Failures(),
		StartedAt: start,
		Duration:  time.Since(start),
	}
	if res.Passed {
		log.Info("scenario passed", "duration", res.Duration.String())
	} else {
		log.Info("scenario failed", "duration", res.Duration.String(),
			"errors", strings.Join(res.Errors, "; "))
	}
	return res
}

// teardown reinstalls the baseline and reboots the target. It always runs,
// whatever the verdict, so the next scenario starts clean.
func (r *Runner) teardown(ctx context.Context, rec *Recorder) {
	log := logr.FromContextOrDiscard(ctx)
	log.Info("scenario teardown")
	if err := r.env.Workspace.WaitReady(ctx); err != nil {
		log.Error(err, "framework not answering before baseline restore")
	}
	if err := r.env.Workspace.RestoreBaseline(ctx); err != nil {
		rec.Failf("teardown: baseline restore failed: %v", err)
		return
	}
	if err := r.env.Workspace.Reboot(ctx, r.env.Cfg.RebootWait); err != nil {
		rec.Failf("teardown: reboot failed: %v", err)
	}
}

// lock takes a file-based lock so two harness instances cannot drive the same
// device simultaneously. It returns either an unlock function or an error.
func (r *Runner) lock() (func(), error) {
	log := r.log.WithValues("lockFile", r.env.Cfg.LockFilePath)
	if err := r.os.MkdirAll(filepath.Dir(r.env.Cfg.LockFilePath), 0o755); err != nil {
		log.Error(err, "failed to create base dir for lockfile")
		return nil, err
	}
	fileLock := flock.New(r.env.Cfg.LockFilePath)
	hasLock, err := fileLock.TryLock()
	if err != nil {
		log.Error(err, "failed to acquire file-based lock")
		return nil, err
	}
	if !hasLock {
		err := fmt.Errorf("another harness instance is already driving the target")
		log.Error(err, "the harness is already running")
		return nil, err
	}
	log.V(1).Info("acquired file-based lock")
	return func() {
		log.V(1).Info("release file-based lock")
		if err := fileLock.Unlock(); err != nil {
			log.Error(err, "failed to release file-based lock")
		}
	}, nil
}
