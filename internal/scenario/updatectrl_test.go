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

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/legato-af/lifecycle-harness/internal/config"
	"github.com/legato-af/lifecycle-harness/internal/probe"
	probeMockPkg "github.com/legato-af/lifecycle-harness/internal/probe/mocks"
	sessionMockPkg "github.com/legato-af/lifecycle-harness/internal/session/mocks"
	workspaceMockPkg "github.com/legato-af/lifecycle-harness/internal/workspace/mocks"
)

var _ = Describe("LockProbation scenarios", func() {
	var (
		env           *Env
		rec           *Recorder
		probeMock     *probeMockPkg.Interface
		sessionMock   *sessionMockPkg.Interface
		workspaceMock *workspaceMockPkg.Interface
		ctx           context.Context
		realSleep     func(context.Context, time.Duration) error
	)

	const rebootWait = 120 * time.Second

	BeforeEach(func() {
		probeMock = probeMockPkg.NewInterface(GinkgoT())
		sessionMock = sessionMockPkg.NewInterface(GinkgoT())
		workspaceMock = workspaceMockPkg.NewInterface(GinkgoT())
		ctx = context.Background()
		rec = NewRecorder(logr.Discard())
		env = &Env{
			Cfg:       config.Config{RebootWait: rebootWait},
			Session:   sessionMock,
			Probe:     probeMock,
			Workspace: workspaceMock,
		}

		// The scripts wait out device-side timers; nothing to wait for here.
		realSleep = sleep
		sleep = func(context.Context, time.Duration) error { return nil }
	})

	AfterEach(func() {
		sleep = realSleep
	})

	scenarioByName := func(name string) Scenario {
		for _, sc := range LockProbationScenarios() {
			if sc.Name == name {
				return sc
			}
		}
		Fail("no scenario named " + name)
		return Scenario{}
	}

	expectInstall := func(testCase string) {
		workspaceMock.EXPECT().BuildAndInstall(ctx, "updateCtrlApi").Return(nil)
		sessionMock.EXPECT().
			Run(ctx, "config set apps/testUpdateCtrl/procs/testUpdateCtrl/args/1 lockProbation").
			Return("", 0, nil)
		sessionMock.EXPECT().
			Run(ctx, "config set apps/testUpdateCtrl/procs/testUpdateCtrl/args/2 "+testCase).
			Return("", 0, nil)
	}

	expectAppStart := func() {
		sessionMock.EXPECT().Run(ctx, "app start testUpdateCtrl").Return("", 0, nil)
	}

	Context("lock holds the system in probation", func() {
		expectSetup := func() {
			workspaceMock.EXPECT().ResetProbationTimer(ctx).Return(nil)
			expectInstall("1")
			workspaceMock.EXPECT().SetProbationTimer(ctx, 20*time.Second).Return(nil)
			expectAppStart()
		}

		It("should pass when the system is still in probation after the timer", func() {
			expectSetup()
			probeMock.EXPECT().SystemStatus(ctx).Return(probe.StatusGood, nil)
			workspaceMock.EXPECT().Reboot(ctx, rebootWait).Return(nil)

			sc := scenarioByName("L_UpdateCtrl_LockProbation_0001")
			Expect(sc.Run(ctx, env, rec)).To(Succeed())
			Expect(rec.Passed()).To(BeTrue())
		})

		It("should fail when the system left probation despite the lock", func() {
			expectSetup()
			probeMock.EXPECT().SystemStatus(ctx).Return(probe.StatusTried, nil)
			// The lock still has to be released for the following scenarios.
			workspaceMock.EXPECT().Reboot(ctx, rebootWait).Return(nil)

			sc := scenarioByName("L_UpdateCtrl_LockProbation_0001")
			Expect(sc.Run(ctx, env, rec)).To(Succeed())
			Expect(rec.Passed()).To(BeFalse())
			Expect(rec.Failures()[0]).To(ContainSubstring("left probation"))
		})
	})

	Context("lock after good is a no-op", func() {
		expectSetup := func() {
			expectInstall("2")
			workspaceMock.EXPECT().SetProbationTimer(ctx, time.Second).Return(nil)
		}

		It("should pass when status and index are unchanged", func() {
			expectSetup()
			probeMock.EXPECT().SystemIndex(ctx).Return(25, nil).Once()
			expectAppStart()
			probeMock.EXPECT().SystemStatus(ctx).Return(probe.StatusGood, nil)
			probeMock.EXPECT().SystemIndex(ctx).Return(25, nil).Once()

			sc := scenarioByName("L_UpdateCtrl_LockProbation_0002")
			Expect(sc.Run(ctx, env, rec)).To(Succeed())
			Expect(rec.Passed()).To(BeTrue())
		})

		It("should fail and reboot when the system index moved", func() {
			expectSetup()
			probeMock.EXPECT().SystemIndex(ctx).Return(25, nil).Once()
			expectAppStart()
			probeMock.EXPECT().SystemStatus(ctx).Return(probe.StatusGood, nil)
			probeMock.EXPECT().SystemIndex(ctx).Return(26, nil).Once()
			workspaceMock.EXPECT().Reboot(ctx, rebootWait).Return(nil)

			sc := scenarioByName("L_UpdateCtrl_LockProbation_0002")
			Expect(sc.Run(ctx, env, rec)).To(Succeed())
			Expect(rec.Passed()).To(BeFalse())
			Expect(rec.Failures()[0]).To(ContainSubstring("index moved from 25 to 26"))
		})

		It("should fail and reboot when the system is not good", func() {
			expectSetup()
			probeMock.EXPECT().SystemIndex(ctx).Return(25, nil).Twice()
			expectAppStart()
			probeMock.EXPECT().SystemStatus(ctx).Return(probe.StatusTried, nil)
			workspaceMock.EXPECT().Reboot(ctx, rebootWait).Return(nil)

			sc := scenarioByName("L_UpdateCtrl_LockProbation_0002")
			Expect(sc.Run(ctx, env, rec)).To(Succeed())
			Expect(rec.Passed()).To(BeFalse())
		})
	})

	Context("lock-holder death reboots the device", func() {
		expectSetup := func() {
			workspaceMock.EXPECT().ResetProbationTimer(ctx).Return(nil)
			expectInstall("3")
			expectAppStart()
		}

		It("should wait for the rollback reboot and reconnect", func() {
			expectSetup()
			workspaceMock.EXPECT().WaitDown(ctx, 10*time.Second).Return(true, nil)
			workspaceMock.EXPECT().WaitBack(ctx, rebootWait).Return(nil)

			sc := scenarioByName("L_UpdateCtrl_LockProbation_0003")
			Expect(sc.Run(ctx, env, rec)).To(Succeed())
			Expect(rec.Passed()).To(BeTrue())
		})

		It("should fail when the device never goes down", func() {
			expectSetup()
			workspaceMock.EXPECT().WaitDown(ctx, 10*time.Second).Return(false, nil)
			workspaceMock.EXPECT().Reboot(ctx, rebootWait).Return(nil)

			sc := scenarioByName("L_UpdateCtrl_LockProbation_0003")
			Expect(sc.Run(ctx, env, rec)).To(Succeed())
			Expect(rec.Passed()).To(BeFalse())
			Expect(rec.Failures()[0]).To(ContainSubstring("did not go down"))
		})
	})

	Context("stopping the lock-holder reboots the device", func() {
		expectSetup := func() {
			workspaceMock.EXPECT().ResetProbationTimer(ctx).Return(nil)
			expectInstall("4")
			expectAppStart()
			sessionMock.EXPECT().Run(ctx, "app stop testUpdateCtrl").Return("", 0, nil)
		}

		It("should wait for the rollback reboot after stopping the app", func() {
			expectSetup()
			workspaceMock.EXPECT().WaitDown(ctx, 10*time.Second).Return(true, nil)
			workspaceMock.EXPECT().WaitBack(ctx, rebootWait).Return(nil)

			sc := scenarioByName("L_UpdateCtrl_LockProbation_0004")
			Expect(sc.Run(ctx, env, rec)).To(Succeed())
			Expect(rec.Passed()).To(BeTrue())
		})

		It("should fail when the device never goes down", func() {
			expectSetup()
			workspaceMock.EXPECT().WaitDown(ctx, 10*time.Second).Return(false, nil)
			workspaceMock.EXPECT().Reboot(ctx, rebootWait).Return(nil)

			sc := scenarioByName("L_UpdateCtrl_LockProbation_0004")
			Expect(sc.Run(ctx, env, rec)).To(Succeed())
			Expect(rec.Passed()).To(BeFalse())
		})
	})
})
