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

package workspace

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-logr/logr"

	"github.com/legato-af/lifecycle-harness/internal/config"
	"github.com/legato-af/lifecycle-harness/internal/constants"
	"github.com/legato-af/lifecycle-harness/internal/probe"
	"github.com/legato-af/lifecycle-harness/internal/session"
	"github.com/legato-af/lifecycle-harness/internal/utils/cmd"
	"github.com/legato-af/lifecycle-harness/internal/wrappers"
)

// readyProbeTimeout bounds a single "cm info" readiness probe. The overall
// wait is bounded separately by the polling budget.
const readyProbeTimeout = 2 * time.Second

// Interface is the interface exposed by the workspace package. It owns the
// scratch build directory on the host and the update/restore/reboot bracket
// around every scenario.
type Interface interface {
	// Bootstrap performs the one-time suite initialization: it validates the
	// toolchain environment and builds the baseline system package. It runs
	// its body exactly once per process; later calls are no-ops.
	Bootstrap(ctx context.Context) error
	// BuildAndInstall compiles the named system definition from the resources
	// directory and installs it on the target, then waits for the framework
	// to come back. Any failure here is fatal to the calling scenario.
	BuildAndInstall(ctx context.Context, systemName string) error
	// RestoreBaseline reinstalls the baseline system package built by Bootstrap.
	RestoreBaseline(ctx context.Context) error
	// WaitReady polls "cm info" until the device answers.
	WaitReady(ctx context.Context) error
	// Reboot restarts the target, waits for it to go down and come back, and
	// reconnects the command session.
	Reboot(ctx context.Context, wait time.Duration) error
	// WaitBack waits for a device that went down on its own to come back,
	// reconnects the command session and waits for the framework.
	WaitBack(ctx context.Context, wait time.Duration) error
	// WaitDown reports whether the device stopped answering within the wait.
	WaitDown(ctx context.Context, wait time.Duration) (bool, error)
	// ClearTargetLog restarts the target syslog so each scenario starts from
	// a clean log.
	ClearTargetLog(ctx context.Context) error
	// SetProbationTimer sets the probation period on the target.
	SetProbationTimer(ctx context.Context, period time.Duration) error
	// ResetProbationTimer restores the default probation period.
	ResetProbationTimer(ctx context.Context) error
}

// New initialize default implementation of the workspace.Interface.
func New(cfg config.Config, c cmd.Interface, s session.Interface, osWrapper wrappers.OSWrapper) Interface {
	return &workspace{
		cfg:     cfg,
		cmd:     c,
		session: s,
		os:      osWrapper,
	}
}

type workspace struct {
	cfg     config.Config
	cmd     cmd.Interface
	session session.Interface
	os      wrappers.OSWrapper

	mu          sync.Mutex
	initialized bool
}

// Bootstrap is the default implementation of the workspace.Interface.
func (w *workspace) Bootstrap(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.initialized {
		return nil
	}
	log := logr.FromContextOrDiscard(ctx)

	if _, err := w.os.Stat(w.cfg.LegatoRoot); err != nil {
		return fmt.Errorf("LEGATO_ROOT is not accessible: %w", err)
	}
	if err := w.os.MkdirAll(w.cfg.WorkspaceDir, 0o755); err != nil {
		return fmt.Errorf("failed to create scratch workspace: %w", err)
	}

	log.Info("building baseline system package, this can take a while")
	baselineSdef := filepath.Join(w.cfg.LegatoRoot, constants.GoldenSystemName+".sdef")
	if err := w.build(ctx, constants.GoldenSystemName, baselineSdef); err != nil {
		return err
	}

	w.initialized = true
	return nil
}

// BuildAndInstall is the default implementation of the workspace.Interface.
func (w *workspace) BuildAndInstall(ctx context.Context, systemName string) error {
	log := logr.FromContextOrDiscard(ctx)
	sdefPath := filepath.Join(w.cfg.ResourcesDir, systemName+".sdef")
	if _, err := w.os.Stat(sdefPath); err != nil {
		return fmt.Errorf("system definition does not exist: %w", err)
	}
	log.Info("compiling system package", "system", systemName)
	if err := w.build(ctx, systemName, sdefPath); err != nil {
		return err
	}
	if err := w.install(ctx, systemName); err != nil {
		return err
	}
	return w.WaitReady(ctx)
}

// RestoreBaseline is the default implementation of the workspace.Interface.
func (w *workspace) RestoreBaseline(ctx context.Context) error {
	log := logr.FromContextOrDiscard(ctx)
	log.Info("updating target with baseline system")
	if err := w.install(ctx, constants.GoldenSystemName); err != nil {
		return err
	}
	return w.WaitReady(ctx)
}

// WaitReady is the default implementation of the workspace.Interface.
func (w *workspace) WaitReady(ctx context.Context) error {
	log := logr.FromContextOrDiscard(ctx)
	log.Info("checking the framework is operational")
	return probe.WaitUntil(ctx, func(ctx context.Context) (bool, error) {
		if err := w.session.Send(ctx, constants.CmInfoCommand); err != nil {
			return false, err
		}
		_, err := w.session.Expect(ctx, []string{constants.MarkerDeviceReady}, readyProbeTimeout)
		if err != nil {
			log.V(1).Info("framework did not answer yet", "reason", err.Error())
			return false, nil
		}
		return true, nil
	}, probe.WaitOptions{Attempts: w.cfg.PollAttempts, Interval: w.cfg.PollInterval})
}

// Reboot is the default implementation of the workspace.Interface.
func (w *workspace) Reboot(ctx context.Context, wait time.Duration) error {
	log := logr.FromContextOrDiscard(ctx)
	log.Info("rebooting target")
	// The connection dies with the device, errors here carry no signal.
	_, _, _ = w.session.Run(ctx, constants.RebootCommand)

	down, err := w.WaitDown(ctx, wait)
	if err != nil {
		return err
	}
	if !down {
		return fmt.Errorf("device did not go down within %s after reboot command", wait)
	}
	return w.WaitBack(ctx, wait)
}

// WaitBack is the default implementation of the workspace.Interface.
func (w *workspace) WaitBack(ctx context.Context, wait time.Duration) error {
	log := logr.FromContextOrDiscard(ctx)
	attempts := waitAttempts(wait, w.cfg.PollInterval)
	reconnectErr := probe.WaitUntil(ctx, func(ctx context.Context) (bool, error) {
		if err := w.session.Connect(ctx); err != nil {
			log.V(1).Info("device not reachable yet", "reason", err.Error())
			return false, nil
		}
		return true, nil
	}, probe.WaitOptions{Attempts: attempts, Interval: w.cfg.PollInterval})
	if reconnectErr != nil {
		return fmt.Errorf("device did not come back within %s: %w", wait, reconnectErr)
	}
	return w.WaitReady(ctx)
}

// WaitDown is the default implementation of the workspace.Interface.
func (w *workspace) WaitDown(ctx context.Context, wait time.Duration) (bool, error) {
	attempts := waitAttempts(wait, w.cfg.PollInterval)
	err := probe.WaitUntil(ctx, func(ctx context.Context) (bool, error) {
		if _, _, err := w.session.Run(ctx, "true"); err != nil {
			return true, nil
		}
		return false, nil
	}, probe.WaitOptions{Attempts: attempts, Interval: w.cfg.PollInterval})
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	return true, nil
}

// ClearTargetLog is the default implementation of the workspace.Interface.
func (w *workspace) ClearTargetLog(ctx context.Context) error {
	log := logr.FromContextOrDiscard(ctx)
	log.Info("clearing target log")
	_, exitCode, err := w.session.Run(ctx, "/etc/init.d/syslog restart")
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return fmt.Errorf("syslog restart exited with status %d", exitCode)
	}
	return nil
}

// SetProbationTimer is the default implementation of the workspace.Interface.
func (w *workspace) SetProbationTimer(ctx context.Context, period time.Duration) error {
	command := fmt.Sprintf("config set %s %d int", constants.ProbationPeriodCfgPath, period.Milliseconds())
	_, exitCode, err := w.session.Run(ctx, command)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return fmt.Errorf("failed to set probation period, exit status %d", exitCode)
	}
	return nil
}

// ResetProbationTimer is the default implementation of the workspace.Interface.
func (w *workspace) ResetProbationTimer(ctx context.Context) error {
	command := fmt.Sprintf("config delete %s", constants.ProbationPeriodCfgPath)
	_, exitCode, err := w.session.Run(ctx, command)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return fmt.Errorf("failed to reset probation period, exit status %d", exitCode)
	}
	return nil
}

// build compiles a system definition into an update package in the workspace.
func (w *workspace) build(ctx context.Context, systemName, sdefPath string) error {
	_, stderr, err := w.cmd.RunCommand(ctx, "mksys", sdefPath, "--output-dir", w.cfg.WorkspaceDir)
	if err != nil {
		if w.cmd.NotFound(err) {
			return fmt.Errorf("mksys not found, source the framework environment first")
		}
		return fmt.Errorf("mksys failed for %s: %v: %s", systemName, err, stderr)
	}
	return nil
}

// install pushes a previously built update package to the target.
func (w *workspace) install(ctx context.Context, systemName string) error {
	pkg := filepath.Join(w.cfg.WorkspaceDir, systemName+".update")
	if _, err := w.os.Stat(pkg); err != nil {
		return fmt.Errorf("update package does not exist: %w", err)
	}
	_, stderr, err := w.cmd.RunCommand(ctx, "update", pkg, w.cfg.TargetHost)
	if err != nil {
		return fmt.Errorf("update failed for %s: %v: %s", systemName, err, stderr)
	}
	return nil
}

func waitAttempts(wait, interval time.Duration) int {
	if interval <= 0 {
		return 1
	}
	attempts := int(wait / interval)
	if attempts < 1 {
		attempts = 1
	}
	return attempts
}
