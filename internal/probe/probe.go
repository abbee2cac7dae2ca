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

package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/legato-af/lifecycle-harness/internal/constants"
	"github.com/legato-af/lifecycle-harness/internal/session"
)

// Status is the current system status as reported by "legato status".
type Status string

const (
	StatusGood    Status = constants.SystemStatusGood
	StatusTried   Status = constants.SystemStatusTried
	StatusBad     Status = constants.SystemStatusBad
	StatusUnknown Status = "unknown"
)

// Interface is the interface exposed by the probe package. Every query is a
// single idempotent command translated into a typed value; the device is the
// only source of truth, nothing is cached host-side.
type Interface interface {
	// IsModulePresent reports whether the kernel module shows up in lsmod.
	IsModulePresent(ctx context.Context, name string) (bool, error)
	// IsAppRunning reports whether the application is marked running.
	IsAppRunning(ctx context.Context, name string) (bool, error)
	// IsAppInstalled reports whether the application is listed on the target.
	IsAppInstalled(ctx context.Context, name string) (bool, error)
	// SystemStatus returns the status of the current system.
	SystemStatus(ctx context.Context) (Status, error)
	// SystemIndex returns the index of the current system.
	SystemIndex(ctx context.Context) (int, error)
}

// New initialize default implementation of the probe.Interface.
func New(s session.Interface) Interface {
	return &probe{session: s}
}

type probe struct {
	session session.Interface
}

// IsModulePresent is the default implementation of the probe.Interface.
func (p *probe) IsModulePresent(ctx context.Context, name string) (bool, error) {
	command := fmt.Sprintf("%s | grep -F %q", constants.LsModCommand, name)
	_, exitCode, err := p.session.Run(ctx, command)
	if err != nil {
		return false, err
	}
	return exitCode == 0, nil
}

// IsAppRunning is the default implementation of the probe.Interface.
func (p *probe) IsAppRunning(ctx context.Context, name string) (bool, error) {
	out, exitCode, err := p.session.Run(ctx, fmt.Sprintf("app status %s", name))
	if err != nil {
		return false, err
	}
	if exitCode != 0 {
		return false, nil
	}
	return strings.Contains(out, "[running]"), nil
}

// IsAppInstalled is the default implementation of the probe.Interface.
func (p *probe) IsAppInstalled(ctx context.Context, name string) (bool, error) {
	out, exitCode, err := p.session.Run(ctx, "app list")
	if err != nil {
		return false, err
	}
	if exitCode != 0 {
		return false, nil
	}
	for _, line := range strings.Split(out, "\n") {
		for _, field := range strings.Fields(line) {
			if field == name {
				return true, nil
			}
		}
	}
	return false, nil
}

// SystemStatus is the default implementation of the probe.Interface.
func (p *probe) SystemStatus(ctx context.Context) (Status, error) {
	line, err := p.currentSystemLine(ctx)
	if err != nil {
		return StatusUnknown, err
	}
	open := strings.Index(line, "[")
	closing := strings.Index(line, "]")
	if open < 0 || closing < open {
		return StatusUnknown, fmt.Errorf("no status bracket in current system line %q", line)
	}
	// "tried" carries an attempt counter, e.g. "[tried 1]".
	status := strings.Fields(line[open+1 : closing])
	if len(status) == 0 {
		return StatusUnknown, fmt.Errorf("empty status bracket in current system line %q", line)
	}
	switch status[0] {
	case constants.SystemStatusGood:
		return StatusGood, nil
	case constants.SystemStatusTried:
		return StatusTried, nil
	case constants.SystemStatusBad:
		return StatusBad, nil
	}
	return StatusUnknown, fmt.Errorf("unrecognized system status %q", status[0])
}

// SystemIndex is the default implementation of the probe.Interface.
func (p *probe) SystemIndex(ctx context.Context) (int, error) {
	line, err := p.currentSystemLine(ctx)
	if err != nil {
		return -1, err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return -1, fmt.Errorf("empty current system line")
	}
	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return -1, fmt.Errorf("current system line %q does not start with an index: %w", line, err)
	}
	return index, nil
}

// currentSystemLine returns the "legato status" line describing the current
// system, e.g. "  25 [tried 1] <-- current".
func (p *probe) currentSystemLine(ctx context.Context) (string, error) {
	out, exitCode, err := p.session.Run(ctx, constants.LegatoStatusCommand)
	if err != nil {
		return "", err
	}
	if exitCode != 0 {
		return "", fmt.Errorf("%q exited with status %d", constants.LegatoStatusCommand, exitCode)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "current") {
			return strings.TrimSpace(line), nil
		}
	}
	return "", fmt.Errorf("no current system in %q output", constants.LegatoStatusCommand)
}
