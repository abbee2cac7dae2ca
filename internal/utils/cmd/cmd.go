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

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/go-logr/logr"
)

// New initialize default implementation of the cmd.Interface.
func New() Interface {
	return &cmd{}
}

// Interface is the interface exposed by the cmd package.
type Interface interface {
	// RunCommand runs a host-side command, e.g. the system build and install tools.
	RunCommand(ctx context.Context, command string, args ...string) (string, string, error)
	// NotFound checks if the error is "command not found" error.
	NotFound(err error) bool
}

type cmd struct{}

// scrubProgress strips the carriage-return progress animation the build tools
// print, keeping only the final content of each line for the logs.
func scrubProgress(output string) string {
	var b strings.Builder
	for _, line := range strings.Split(output, "\n") {
		if i := strings.LastIndexByte(line, '\r'); i >= 0 {
			line = line[i+1:]
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// RunCommand is the default implementation of the cmd.Interface.
func (c *cmd) RunCommand(ctx context.Context, command string, args ...string) (string, string, error) {
	log := logr.FromContextOrDiscard(ctx)
	log.V(1).Info("RunCommand()", "command", command, "args", args)

	var stdout, stderr bytes.Buffer
	run := exec.CommandContext(ctx, command, args...)
	// Give the tool a chance to clean up its build directory on cancel.
	run.Cancel = func() error {
		if run.Process == nil {
			return nil
		}
		return run.Process.Signal(syscall.SIGTERM)
	}
	run.Stdout = &stdout
	run.Stderr = &stderr

	start := time.Now()
	err := run.Run()

	// System builds run for minutes; the duration is the interesting part.
	log.V(1).Info("RunCommand() finished",
		"command", command, "took", time.Since(start).String(), "error", err,
		"stdout", scrubProgress(stdout.String()), "stderr", scrubProgress(stderr.String()))
	return stdout.String(), stderr.String(), err
}

// NotFound is the default implementation of the cmd.Interface.
func (c *cmd) NotFound(err error) bool {
	// Tools invoked directly fail the exec, tools invoked through a shell
	// report exit status 127.
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.ExitStatus() == 127 {
			return true
		}
	}
	return false
}
