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

//nolint:lll
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains configuration for the harness.
type Config struct {
	// target access
	TargetHost     string `env:"TARGET_HOST,required,notEmpty"`
	TargetPort     int    `env:"TARGET_PORT"     envDefault:"22"`
	TargetUser     string `env:"TARGET_USER"     envDefault:"root"`
	TargetPassword string `env:"TARGET_PASSWORD"`

	// per-call timing
	DialTimeout   time.Duration `env:"DIAL_TIMEOUT"   envDefault:"10s"`
	ExpectTimeout time.Duration `env:"EXPECT_TIMEOUT" envDefault:"30s"`
	RebootWait    time.Duration `env:"REBOOT_WAIT"    envDefault:"120s"`
	PollInterval  time.Duration `env:"POLL_INTERVAL"  envDefault:"1s"`
	PollAttempts  int           `env:"POLL_ATTEMPTS"  envDefault:"30"`

	// host-side build and install tooling
	LegatoRoot   string `env:"LEGATO_ROOT,required,notEmpty"`
	ResourcesDir string `env:"TEST_RESOURCES" envDefault:"resources"`
	WorkspaceDir string `env:"WORKSPACE_DIR"  envDefault:"/tmp/lifecycle-harness"`

	// harness advanced settings
	LockFilePath  string `env:"LOCK_FILE_PATH"  envDefault:"/run/lifecycle-harness/.lock"`
	ResultsDBPath string `env:"RESULTS_DB_PATH" envDefault:""`

	// debug settings
	HarnessDebug bool   `env:"HARNESS_DEBUG"`
	DebugLogFile string `env:"DEBUG_LOG_FILE" envDefault:"/tmp/lifecycle_harness_debug.log"`
}

// GetConfig parses environment variables and returns a Config struct.
func GetConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
