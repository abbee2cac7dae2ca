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

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/legato-af/lifecycle-harness/internal/config"
	"github.com/legato-af/lifecycle-harness/internal/constants"
	"github.com/legato-af/lifecycle-harness/internal/expect"
	"github.com/legato-af/lifecycle-harness/internal/probe"
	"github.com/legato-af/lifecycle-harness/internal/report"
	"github.com/legato-af/lifecycle-harness/internal/scenario"
	"github.com/legato-af/lifecycle-harness/internal/session"
	"github.com/legato-af/lifecycle-harness/internal/utils/cmd"
	"github.com/legato-af/lifecycle-harness/internal/version"
	"github.com/legato-af/lifecycle-harness/internal/workspace"
	"github.com/legato-af/lifecycle-harness/internal/wrappers"
)

func main() {
	// Local overrides for target credentials and paths.
	_ = godotenv.Load()

	cfg, err := config.GetConfig()
	if err != nil {
		panic("failed to parse configuration" + err.Error())
	}

	log := getLogger(cfg)
	log.Info("lifecycle-harness", "version", version.GetVersionString())
	log.Info(fmt.Sprintf("Target: %s@%s:%d", cfg.TargetUser, cfg.TargetHost, cfg.TargetPort))

	if log.V(1).Enabled() {
		//nolint:errchkjson
		data, _ := json.MarshalIndent(cfg, "", "  ")
		log.V(1).Info("harness config: \n" + string(data))
	}

	suite, err := getSuite()
	if err != nil {
		log.Error(err, "can't determine the suite to run")
		os.Exit(1)
	}
	log.Info("start suite", "suite", suite)

	if err := run(log, cfg, suite); err != nil {
		os.Exit(1)
	}
}

func run(log logr.Logger, cfg config.Config, suite string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-getSignalChannel()
		log.Info("signal received, stopping")
		cancel()
	}()

	osWrapper := wrappers.NewOS()
	sess := session.New(session.Options{
		Host:        cfg.TargetHost,
		Port:        cfg.TargetPort,
		User:        cfg.TargetUser,
		Password:    cfg.TargetPassword,
		DialTimeout: cfg.DialTimeout,
	})
	env := &scenario.Env{
		Cfg:       cfg,
		Session:   sess,
		Expect:    expect.New(sess, cfg.ExpectTimeout),
		Probe:     probe.New(sess),
		Workspace: workspace.New(cfg, cmd.New(), sess, osWrapper),
	}

	var store report.Interface
	if cfg.ResultsDBPath != "" {
		var err error
		store, err = report.Open(cfg.ResultsDBPath, osWrapper)
		if err != nil {
			log.Error(err, "failed to open the results store")
			return err
		}
		defer func() { _ = store.Close() }()
	}

	var scenarios []scenario.Scenario
	if suite == constants.SuiteKmod || suite == constants.SuiteAll {
		scenarios = append(scenarios, scenario.KmodScenarios()...)
	}
	if suite == constants.SuiteUpdateCtrl || suite == constants.SuiteAll {
		scenarios = append(scenarios, scenario.LockProbationScenarios()...)
	}

	return scenario.NewRunner(log, env, osWrapper, store, scenarios).Run(ctx)
}

func getSuite() (string, error) {
	flag.Parse()
	suite := flag.Arg(0)
	if flag.NArg() != 1 ||
		(suite != constants.SuiteKmod && suite != constants.SuiteUpdateCtrl && suite != constants.SuiteAll) {
		return "", fmt.Errorf("suite argument has invalid value %s, supported values: %s, %s, %s",
			suite, constants.SuiteKmod, constants.SuiteUpdateCtrl, constants.SuiteAll)
	}
	return suite, nil
}

func getLogger(cfg config.Config) logr.Logger {
	logConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding:          "console",
		DisableStacktrace: true,
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	if cfg.HarnessDebug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		if cfg.DebugLogFile != "" {
			logConfig.OutputPaths = append(logConfig.OutputPaths, cfg.DebugLogFile)
			logConfig.ErrorOutputPaths = append(logConfig.ErrorOutputPaths, cfg.DebugLogFile)
		}
	}
	zapLog, err := logConfig.Build()
	if err != nil {
		panic("can't init the logger: " + err.Error())
	}
	return zapr.NewLogger(zapLog)
}

func getSignalChannel() chan os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch, []os.Signal{os.Interrupt, syscall.SIGTERM}...)
	return ch
}
