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
	"fmt"

	"github.com/go-logr/logr"
)

// Recorder accumulates step verdicts for one scenario run. A failed step does
// not stop the scenario: later steps still execute so that a single run
// surfaces as much diagnostic signal as possible. The scenario verdict is the
// conjunction of all step verdicts.
type Recorder struct {
	log      logr.Logger
	step     int
	failures []string
}

// NewRecorder returns an empty recorder logging through the given logger.
func NewRecorder(log logr.Logger) *Recorder {
	return &Recorder{log: log}
}

// Step announces the next scenario step.
func (r *Recorder) Step(format string, args ...any) {
	r.step++
	r.log.Info(fmt.Sprintf("Step %d: %s", r.step, fmt.Sprintf(format, args...)))
}

// Failf records a step failure. The message is kept for the final report.
func (r *Recorder) Failf(format string, args ...any) {
	msg := fmt.Sprintf("step %d: %s", r.step, fmt.Sprintf(format, args...))
	r.failures = append(r.failures, msg)
	r.log.Info("FAILED: " + msg)
}

// Passed reports whether every step so far succeeded.
func (r *Recorder) Passed() bool {
	return len(r.failures) == 0
}

// Failures returns all accumulated failure messages in step order.
func (r *Recorder) Failures() []string {
	return r.failures
}
