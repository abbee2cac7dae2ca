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
	"time"

	"github.com/go-logr/logr"

	"github.com/legato-af/lifecycle-harness/internal/expect"
	"github.com/legato-af/lifecycle-harness/internal/probe"
)

// sleep waits for the duration unless the context is canceled first. It is a
// variable so tests can run the timed scenario scripts without the real waits.
var sleep = func(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// bestEffortWait absorbs device-side propagation delay (module auto-load
// after app start, app registration after install). Exhaustion is logged but
// deliberately does not fail the scenario: the assertion that matters comes
// from the probe step that follows.
func bestEffortWait(ctx context.Context, env *Env, what string, pred func(context.Context) (bool, error)) {
	log := logr.FromContextOrDiscard(ctx)
	log.Info("waiting for " + what)
	err := probe.WaitUntil(ctx, pred,
		probe.WaitOptions{Attempts: env.Cfg.PollAttempts, Interval: env.Cfg.PollInterval})
	if err != nil {
		log.Info("wait gave up", "what", what, "reason", err.Error())
	}
}

// requireModule asserts the lsmod presence of a kernel module.
func requireModule(ctx context.Context, env *Env, rec *Recorder, name string, wantPresent bool) error {
	present, err := env.Probe.IsModulePresent(ctx, name)
	if err != nil {
		return err
	}
	if present == wantPresent {
		return nil
	}
	if wantPresent {
		rec.Failf("kernel module %s has not been loaded", name)
	} else {
		rec.Failf("kernel module %s has been unexpectedly loaded", name)
	}
	return nil
}

// requireAppRunning asserts the running state of an application.
func requireAppRunning(ctx context.Context, env *Env, rec *Recorder, name string, wantRunning bool) error {
	running, err := env.Probe.IsAppRunning(ctx, name)
	if err != nil {
		return err
	}
	if running == wantRunning {
		return nil
	}
	if wantRunning {
		rec.Failf("app %s is not running", name)
	} else {
		rec.Failf("app %s is unexpectedly running", name)
	}
	return nil
}

// checkLoad sends a load attempt and asserts the classified outcome.
func checkLoad(ctx context.Context, env *Env, rec *Recorder, module string, expected expect.LoadOutcome) error {
	ok, observed, err := env.Expect.CheckLoad(ctx, module, expected)
	if err != nil {
		return err
	}
	if !ok {
		rec.Failf("load of %s: expected %s, observed %s", module, expected, observed)
	}
	return nil
}

// checkUnload sends an unload attempt and asserts the classified outcome.
func checkUnload(ctx context.Context, env *Env, rec *Recorder, module string, expected expect.UnloadOutcome) error {
	ok, observed, err := env.Expect.CheckUnload(ctx, module, expected)
	if err != nil {
		return err
	}
	if !ok {
		rec.Failf("unload of %s: expected %s, observed %s", module, expected, observed)
	}
	return nil
}

// appCommand runs one of the app tool verbs. A non-zero exit status is not an
// infrastructure failure; the probes that follow judge the resulting state.
func appCommand(ctx context.Context, env *Env, verb, name string) error {
	log := logr.FromContextOrDiscard(ctx)
	out, exitCode, err := env.Session.Run(ctx, fmt.Sprintf("app %s %s", verb, name))
	if err != nil {
		return err
	}
	if exitCode != 0 {
		log.Info("app command exited non-zero", "verb", verb, "app", name,
			"exitCode", exitCode, "output", out)
	}
	return nil
}
