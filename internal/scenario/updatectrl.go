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

	"github.com/legato-af/lifecycle-harness/internal/probe"
)

const (
	// updateCtrlSystem bundles the testUpdateCtrl application.
	updateCtrlSystem = "updateCtrlApi"
	updateCtrlApp    = "testUpdateCtrl"
)

// LockProbationScenarios returns the update-control probation scenarios in
// execution order. The testUpdateCtrl app reads its API to exercise from its
// process arguments, so each scenario selects a mode through the config tree
// before starting it.
func LockProbationScenarios() []Scenario {
	return []Scenario{
		lockProbationHoldsSystem(),
		lockProbationReleaseKeepsSystem(),
		failProbationRebootsDevice(),
		failProbationFromStoppedApp(),
	}
}

// setAppArg points argument slot n of the testUpdateCtrl process at value.
func setAppArg(ctx context.Context, env *Env, n int, value string) error {
	node := fmt.Sprintf("apps/%s/procs/%s/args/%d", updateCtrlApp, updateCtrlApp, n)
	out, code, err := env.Session.Run(ctx, fmt.Sprintf("config set %s %s", node, value))
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("config set %s failed with exit code %d: %s", node, code, out)
	}
	return nil
}

// installUpdateCtrl builds the update-control system and selects the test
// case for the app to run once started.
func installUpdateCtrl(ctx context.Context, env *Env, rec *Recorder, testCase int) error {
	rec.Step("compiling and installing %s", updateCtrlSystem)
	if err := env.Workspace.BuildAndInstall(ctx, updateCtrlSystem); err != nil {
		return err
	}
	rec.Step("selecting test case %d", testCase)
	if err := setAppArg(ctx, env, 1, "lockProbation"); err != nil {
		return err
	}
	return setAppArg(ctx, env, 2, fmt.Sprintf("%d", testCase))
}

// lockProbationHoldsSystem verifies that an app holding a probation lock
// keeps the system from leaving probation even after the timer expires.
func lockProbationHoldsSystem() Scenario {
	return Scenario{
		Name: "L_UpdateCtrl_LockProbation_0001",
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			if err := env.Workspace.ResetProbationTimer(ctx); err != nil {
				return err
			}
			if err := installUpdateCtrl(ctx, env, rec, 1); err != nil {
				return err
			}

			rec.Step("shortening the probation period to 20s")
			if err := env.Workspace.SetProbationTimer(ctx, 20*time.Second); err != nil {
				return err
			}

			rec.Step("starting %s to take the probation lock", updateCtrlApp)
			if err := appCommand(ctx, env, "start", updateCtrlApp); err != nil {
				return err
			}

			rec.Step("waiting out the probation period")
			if err := sleep(ctx, 25*time.Second); err != nil {
				return err
			}

			status, err := env.Probe.SystemStatus(ctx)
			if err != nil {
				return err
			}
			if status == probe.StatusTried {
				rec.Failf("system left probation while the lock was held (status %s)", status)
			}

			// The lock is only released by restarting the framework.
			rec.Step("rebooting to release the probation lock")
			return env.Workspace.Reboot(ctx, env.Cfg.RebootWait)
		},
	}
}

// lockProbationReleaseKeepsSystem verifies that releasing a probation lock
// after the period has already elapsed marks the system good without a
// rollback.
func lockProbationReleaseKeepsSystem() Scenario {
	return Scenario{
		Name: "L_UpdateCtrl_LockProbation_0002",
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			if err := installUpdateCtrl(ctx, env, rec, 2); err != nil {
				return err
			}

			rec.Step("expiring a 1s probation period before the app runs")
			if err := env.Workspace.SetProbationTimer(ctx, time.Second); err != nil {
				return err
			}
			if err := sleep(ctx, 3*time.Second); err != nil {
				return err
			}

			oldIndex, err := env.Probe.SystemIndex(ctx)
			if err != nil {
				return err
			}

			rec.Step("starting %s to take and release the lock", updateCtrlApp)
			if err := appCommand(ctx, env, "start", updateCtrlApp); err != nil {
				return err
			}

			status, err := env.Probe.SystemStatus(ctx)
			if err != nil {
				return err
			}
			newIndex, err := env.Probe.SystemIndex(ctx)
			if err != nil {
				return err
			}

			if status != probe.StatusGood {
				rec.Failf("system is %s after releasing the lock, want %s", status, probe.StatusGood)
			}
			if newIndex != oldIndex {
				rec.Failf("system index moved from %d to %d after releasing the lock", oldIndex, newIndex)
			}
			if !rec.Passed() {
				return env.Workspace.Reboot(ctx, env.Cfg.RebootWait)
			}
			return nil
		},
	}
}

// failProbationRebootsDevice verifies that an app failing its probation
// while running rolls the device back, which shows up as a reboot.
func failProbationRebootsDevice() Scenario {
	return Scenario{
		Name: "L_UpdateCtrl_LockProbation_0003",
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			// A short probation period left behind by an earlier scenario would
			// promote the system to good before the app takes the lock.
			if err := env.Workspace.ResetProbationTimer(ctx); err != nil {
				return err
			}
			if err := installUpdateCtrl(ctx, env, rec, 3); err != nil {
				return err
			}

			rec.Step("starting %s to fail its probation", updateCtrlApp)
			if err := appCommand(ctx, env, "start", updateCtrlApp); err != nil {
				return err
			}
			if err := sleep(ctx, 5*time.Second); err != nil {
				return err
			}

			rec.Step("waiting for the rollback reboot")
			down, err := env.Workspace.WaitDown(ctx, 10*time.Second)
			if err != nil {
				return err
			}
			if !down {
				rec.Failf("device did not go down after the app failed probation")
				return env.Workspace.Reboot(ctx, env.Cfg.RebootWait)
			}
			return env.Workspace.WaitBack(ctx, env.Cfg.RebootWait)
		},
	}
}

// failProbationFromStoppedApp verifies that failing the probation sticks even
// when the app is stopped before the rollback kicks in.
func failProbationFromStoppedApp() Scenario {
	return Scenario{
		Name: "L_UpdateCtrl_LockProbation_0004",
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			if err := env.Workspace.ResetProbationTimer(ctx); err != nil {
				return err
			}
			if err := installUpdateCtrl(ctx, env, rec, 4); err != nil {
				return err
			}

			rec.Step("starting %s to fail its probation", updateCtrlApp)
			if err := appCommand(ctx, env, "start", updateCtrlApp); err != nil {
				return err
			}
			if err := sleep(ctx, 5*time.Second); err != nil {
				return err
			}

			rec.Step("stopping %s before the rollback", updateCtrlApp)
			if err := appCommand(ctx, env, "stop", updateCtrlApp); err != nil {
				return err
			}

			rec.Step("waiting for the rollback reboot")
			down, err := env.Workspace.WaitDown(ctx, 10*time.Second)
			if err != nil {
				return err
			}
			if !down {
				rec.Failf("device did not go down after failing probation")
				return env.Workspace.Reboot(ctx, env.Cfg.RebootWait)
			}
			return env.Workspace.WaitBack(ctx, env.Cfg.RebootWait)
		},
	}
}
