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

package constants

const (
	// Markers emitted by the target's kmod tool when an operation is rejected.
	MarkerFault     = "LE_FAULT"
	MarkerDuplicate = "LE_DUPLICATE"
	MarkerBusy      = "LE_BUSY"

	// MarkerDeviceReady appears in "cm info" output once the framework answers.
	MarkerDeviceReady = "Device:"

	// On-target command surface.
	CmInfoCommand       = "/legato/systems/current/bin/cm info"
	LegatoStatusCommand = "legato status"
	LsModCommand        = "/sbin/lsmod"
	RebootCommand       = "reboot"

	// System status values reported by "legato status".
	SystemStatusGood  = "good"
	SystemStatusTried = "tried"
	SystemStatusBad   = "bad"

	// GoldenSystemName is the baseline system reinstalled between scenarios.
	GoldenSystemName = "default"

	// ProbationPeriodCfgPath is the config tree node holding the probation
	// period in milliseconds. Deleting the node restores the built-in default.
	ProbationPeriodCfgPath = "/sys/probation/period"

	// Suite names accepted by the runner binary.
	SuiteKmod       = "kmod"
	SuiteUpdateCtrl = "updatectrl"
	SuiteAll        = "all"
)
