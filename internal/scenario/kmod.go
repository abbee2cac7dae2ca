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
	"time"

	"github.com/legato-af/lifecycle-harness/internal/expect"
)

// loopingApp is the helper application bundled with the app-coupled module
// fixtures. It does nothing but keep its process alive.
const loopingApp = "LoopingHelloWorld"

// KmodScenarios returns the kernel-module lifecycle scenarios in execution
// order. Each scenario installs its own system fixture; the runner restores
// the baseline in between.
func KmodScenarios() []Scenario {
	return []Scenario{
		kmodAutoLoadUnload(),
		kmodManualLoad(),
		kmodDuplicateRejected(),
		kmodDependencyBusy(),
		kmodAppCoupled(),
		kmodManualApp(),
		kmodAppRemoval(),
		kmodDependencyGating(),
		kmodSharedDependencyTree(),
	}
}

// kmodAutoLoadUnload verifies that an auto-load module comes up with the
// system and can be unloaded and loaded again by hand.
func kmodAutoLoadUnload() Scenario {
	const name = "L_Tools_Kmod_0004"
	return Scenario{
		Name: name,
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			rec.Step("compiling and installing %s", name)
			if err := env.Workspace.BuildAndInstall(ctx, name); err != nil {
				return err
			}

			rec.Step("verify module has been auto-loaded")
			if err := requireModule(ctx, env, rec, name, true); err != nil {
				return err
			}

			rec.Step("unloading")
			if err := checkUnload(ctx, env, rec, name, expect.UnloadOK); err != nil {
				return err
			}

			rec.Step("loading")
			return checkLoad(ctx, env, rec, name, expect.LoadOK)
		},
	}
}

// kmodManualLoad verifies that a manual-load module stays out of the kernel
// until loaded explicitly.
func kmodManualLoad() Scenario {
	const name = "L_Tools_Kmod_0005"
	return Scenario{
		Name: name,
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			rec.Step("compiling and installing %s", name)
			if err := env.Workspace.BuildAndInstall(ctx, name); err != nil {
				return err
			}

			rec.Step("verify module has not been loaded")
			if err := requireModule(ctx, env, rec, name, false); err != nil {
				return err
			}

			rec.Step("loading")
			if err := checkLoad(ctx, env, rec, name, expect.LoadOK); err != nil {
				return err
			}

			rec.Step("unloading")
			return checkUnload(ctx, env, rec, name, expect.UnloadOK)
		},
	}
}

// kmodDuplicateRejected verifies that loading an already-loaded module is
// rejected with LE_DUPLICATE, however often it is retried.
func kmodDuplicateRejected() Scenario {
	const name = "L_Tools_Kmod_0004"
	return Scenario{
		Name: "L_Tools_Kmod_0006",
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			rec.Step("compiling and installing %s", name)
			if err := env.Workspace.BuildAndInstall(ctx, name); err != nil {
				return err
			}

			rec.Step("verify module has been auto-loaded")
			if err := requireModule(ctx, env, rec, name, true); err != nil {
				return err
			}

			rec.Step("loading must be rejected as duplicate")
			return checkLoad(ctx, env, rec, name, expect.LoadDuplicate)
		},
	}
}

// kmodDependencyBusy verifies that a module with loaded dependents cannot be
// unloaded while the dependent stays loaded.
func kmodDependencyBusy() Scenario {
	const (
		primary  = "L_Tools_Kmod_0007"
		required = "L_Tools_Kmod_0004"
	)
	return Scenario{
		Name: primary,
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			rec.Step("compiling and installing %s", primary)
			if err := env.Workspace.BuildAndInstall(ctx, primary); err != nil {
				return err
			}

			rec.Step("verify both modules have been auto-loaded")
			if err := requireModule(ctx, env, rec, required, true); err != nil {
				return err
			}
			if err := requireModule(ctx, env, rec, primary, true); err != nil {
				return err
			}

			rec.Step("unloading required module must be rejected as busy")
			if err := checkUnload(ctx, env, rec, required, expect.UnloadBusy); err != nil {
				return err
			}

			rec.Step("unloading primary module")
			return checkUnload(ctx, env, rec, primary, expect.UnloadOK)
		},
	}
}

// kmodAppCoupled verifies a module auto-loaded together with an application
// can still be unloaded and reloaded by hand.
func kmodAppCoupled() Scenario {
	const name = "L_Tools_Kmod_0008"
	return Scenario{
		Name: name,
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			rec.Step("compiling and installing %s", name)
			if err := env.Workspace.BuildAndInstall(ctx, name); err != nil {
				return err
			}

			rec.Step("verify module is loaded and app is running")
			if err := requireModule(ctx, env, rec, name, true); err != nil {
				return err
			}
			if err := requireAppRunning(ctx, env, rec, loopingApp, true); err != nil {
				return err
			}

			rec.Step("unloading")
			if err := checkUnload(ctx, env, rec, name, expect.UnloadOK); err != nil {
				return err
			}

			rec.Step("loading")
			return checkLoad(ctx, env, rec, name, expect.LoadOK)
		},
	}
}

// kmodManualApp walks a manual-start app whose module follows the app
// lifecycle: load by hand, busy while the app runs, auto-unload on app stop.
func kmodManualApp() Scenario {
	const name = "L_Tools_Kmod_0009"
	return Scenario{
		Name: name,
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			rec.Step("compiling and installing %s", name)
			if err := env.Workspace.BuildAndInstall(ctx, name); err != nil {
				return err
			}

			rec.Step("verify module is not loaded and app is not running")
			if err := requireModule(ctx, env, rec, name, false); err != nil {
				return err
			}
			if err := requireAppRunning(ctx, env, rec, loopingApp, false); err != nil {
				return err
			}

			rec.Step("loading")
			if err := checkLoad(ctx, env, rec, name, expect.LoadOK); err != nil {
				return err
			}

			rec.Step("verify module has been loaded")
			if err := requireModule(ctx, env, rec, name, true); err != nil {
				return err
			}

			rec.Step("unloading")
			if err := checkUnload(ctx, env, rec, name, expect.UnloadOK); err != nil {
				return err
			}

			rec.Step("starting the application")
			bestEffortWait(ctx, env, "app to be listed", func(ctx context.Context) (bool, error) {
				return env.Probe.IsAppInstalled(ctx, loopingApp)
			})
			if err := appCommand(ctx, env, "start", loopingApp); err != nil {
				return err
			}
			bestEffortWait(ctx, env, "app to run", func(ctx context.Context) (bool, error) {
				return env.Probe.IsAppRunning(ctx, loopingApp)
			})

			rec.Step("verify module has been auto-loaded with the app")
			if err := requireModule(ctx, env, rec, name, true); err != nil {
				return err
			}

			rec.Step("unloading while the app holds the module must be busy")
			if err := checkUnload(ctx, env, rec, name, expect.UnloadBusy); err != nil {
				return err
			}

			rec.Step("stopping the application")
			if err := appCommand(ctx, env, "stop", loopingApp); err != nil {
				return err
			}

			rec.Step("verify module has been auto-unloaded")
			if err := requireModule(ctx, env, rec, name, false); err != nil {
				return err
			}

			rec.Step("loading")
			return checkLoad(ctx, env, rec, name, expect.LoadOK)
		},
	}
}

// kmodAppRemoval verifies that removing the app also unloads its module, and
// that the module stays loadable by hand afterwards.
func kmodAppRemoval() Scenario {
	const name = "L_Tools_Kmod_0009"
	return Scenario{
		Name: "L_Tools_Kmod_0010",
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			// The framework needs a moment to settle after the preceding
			// teardown reboot before an install lands.
			if err := sleep(ctx, 5*time.Second); err != nil {
				return err
			}

			rec.Step("compiling and installing %s", name)
			if err := env.Workspace.BuildAndInstall(ctx, name); err != nil {
				return err
			}

			rec.Step("verify module is not loaded and app is not running")
			if err := requireModule(ctx, env, rec, name, false); err != nil {
				return err
			}
			if err := requireAppRunning(ctx, env, rec, loopingApp, false); err != nil {
				return err
			}

			rec.Step("starting the application")
			if err := appCommand(ctx, env, "start", loopingApp); err != nil {
				return err
			}
			bestEffortWait(ctx, env, "app to run", func(ctx context.Context) (bool, error) {
				return env.Probe.IsAppRunning(ctx, loopingApp)
			})

			rec.Step("verify module has been loaded and app is running")
			if err := requireModule(ctx, env, rec, name, true); err != nil {
				return err
			}
			if err := requireAppRunning(ctx, env, rec, loopingApp, true); err != nil {
				return err
			}

			rec.Step("removing the application")
			if err := appCommand(ctx, env, "remove", loopingApp); err != nil {
				return err
			}

			rec.Step("verify module unloaded and app removed")
			if err := requireModule(ctx, env, rec, name, false); err != nil {
				return err
			}
			installed, err := env.Probe.IsAppInstalled(ctx, loopingApp)
			if err != nil {
				return err
			}
			if installed {
				rec.Failf("app %s still exists after removal", loopingApp)
			}

			rec.Step("loading")
			if err := checkLoad(ctx, env, rec, name, expect.LoadOK); err != nil {
				return err
			}
			if err := sleep(ctx, 5*time.Second); err != nil {
				return err
			}

			rec.Step("verify module has been loaded")
			return requireModule(ctx, env, rec, name, true)
		},
	}
}

// kmodDependencyGating verifies that loading the primary pulls its required
// module in, and a second load of the already-loaded required module is
// rejected.
func kmodDependencyGating() Scenario {
	const (
		primary  = "L_Tools_Kmod_0011"
		required = "L_Tools_Kmod_0005"
	)
	return Scenario{
		Name: primary,
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			rec.Step("compiling and installing %s", primary)
			if err := env.Workspace.BuildAndInstall(ctx, primary); err != nil {
				return err
			}

			rec.Step("verify neither module has been loaded")
			if err := requireModule(ctx, env, rec, primary, false); err != nil {
				return err
			}
			if err := requireModule(ctx, env, rec, required, false); err != nil {
				return err
			}

			rec.Step("loading primary module")
			if err := checkLoad(ctx, env, rec, primary, expect.LoadOK); err != nil {
				return err
			}

			rec.Step("loading the already-pulled required module must be rejected")
			if err := checkLoad(ctx, env, rec, required, expect.LoadDuplicate); err != nil {
				return err
			}

			rec.Step("unloading the primary module")
			if err := checkUnload(ctx, env, rec, primary, expect.UnloadOK); err != nil {
				return err
			}

			rec.Step("verify both modules have been unloaded")
			if err := requireModule(ctx, env, rec, primary, false); err != nil {
				return err
			}
			return requireModule(ctx, env, rec, required, false)
		},
	}
}

// kmodSharedDependencyTree verifies a manual module requiring several modules
// that share a common dependency: one load brings the whole tree up, one
// unload takes it down.
func kmodSharedDependencyTree() Scenario {
	const name = "L_Tools_Kmod_0020"
	moduleList := []string{
		name,
		"L_Tools_Kmod_0020_1",
		"L_Tools_Kmod_0020_2",
		"L_Tools_Kmod_0020_3",
		"L_Tools_Kmod_0020_common",
	}
	return Scenario{
		Name: name,
		Run: func(ctx context.Context, env *Env, rec *Recorder) error {
			rec.Step("compiling and installing %s", name)
			if err := env.Workspace.BuildAndInstall(ctx, name); err != nil {
				return err
			}

			rec.Step("verify no module of the tree has been loaded")
			for _, m := range moduleList {
				if err := requireModule(ctx, env, rec, m, false); err != nil {
					return err
				}
			}

			rec.Step("loading")
			if err := checkLoad(ctx, env, rec, name, expect.LoadOK); err != nil {
				return err
			}
			if err := env.Workspace.WaitReady(ctx); err != nil {
				return err
			}

			rec.Step("verify the whole tree has been loaded")
			for _, m := range moduleList {
				if err := requireModule(ctx, env, rec, m, true); err != nil {
					return err
				}
			}

			rec.Step("unloading")
			if err := checkUnload(ctx, env, rec, name, expect.UnloadOK); err != nil {
				return err
			}
			if err := env.Workspace.WaitReady(ctx); err != nil {
				return err
			}

			rec.Step("verify the whole tree has been unloaded")
			for _, m := range moduleList {
				if err := requireModule(ctx, env, rec, m, false); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
