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
	"errors"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/legato-af/lifecycle-harness/internal/config"
	sessionMockPkg "github.com/legato-af/lifecycle-harness/internal/session/mocks"
	workspaceMockPkg "github.com/legato-af/lifecycle-harness/internal/workspace/mocks"
	"github.com/legato-af/lifecycle-harness/internal/wrappers"
)

var _ = Describe("Runner", func() {
	var (
		r             *Runner
		sessionMock   *sessionMockPkg.Interface
		workspaceMock *workspaceMockPkg.Interface
		env           *Env
		cfg           config.Config
		ctx           context.Context
	)

	const rebootWait = 30 * time.Second

	newScenario := func(name string, run func(context.Context, *Env, *Recorder) error) Scenario {
		return Scenario{Name: name, Run: run}
	}

	BeforeEach(func() {
		sessionMock = sessionMockPkg.NewInterface(GinkgoT())
		workspaceMock = workspaceMockPkg.NewInterface(GinkgoT())
		ctx = context.Background()
		cfg = config.Config{
			RebootWait:   rebootWait,
			LockFilePath: filepath.Join(GinkgoT().TempDir(), "harness.lock"),
		}
		env = &Env{
			Cfg:       cfg,
			Session:   sessionMock,
			Workspace: workspaceMock,
		}
	})

	expectTeardown := func() {
		workspaceMock.EXPECT().WaitReady(mock.Anything).Return(nil)
		workspaceMock.EXPECT().RestoreBaseline(mock.Anything).Return(nil)
		workspaceMock.EXPECT().Reboot(mock.Anything, rebootWait).Return(nil)
	}

	Context("runScenario", func() {
		BeforeEach(func() {
			r = NewRunner(logr.Discard(), env, wrappers.NewOS(), nil, nil)
		})

		It("should report a clean run as passed", func() {
			workspaceMock.EXPECT().ClearTargetLog(mock.Anything).Return(nil)
			expectTeardown()

			res := r.runScenario(ctx, newScenario("clean", func(context.Context, *Env, *Recorder) error {
				return nil
			}))
			Expect(res.Passed).To(BeTrue())
			Expect(res.Scenario).To(Equal("clean"))
			Expect(res.Errors).To(BeEmpty())
		})

		It("should convert an infrastructure error into a recorded abort", func() {
			workspaceMock.EXPECT().ClearTargetLog(mock.Anything).Return(nil)
			expectTeardown()

			res := r.runScenario(ctx, newScenario("aborting", func(context.Context, *Env, *Recorder) error {
				return errors.New("target vanished")
			}))
			Expect(res.Passed).To(BeFalse())
			Expect(res.Errors).To(HaveLen(1))
			Expect(res.Errors[0]).To(ContainSubstring("scenario aborted: target vanished"))
		})

		It("should still tear down after a failed scenario", func() {
			workspaceMock.EXPECT().ClearTargetLog(mock.Anything).Return(nil)
			expectTeardown()

			res := r.runScenario(ctx, newScenario("failing", func(_ context.Context, _ *Env, rec *Recorder) error {
				rec.Step("only step")
				rec.Failf("assertion broke")
				return nil
			}))
			Expect(res.Passed).To(BeFalse())
			Expect(res.Errors).To(ConsistOf("step 1: assertion broke"))
		})

		It("should fail the scenario when the baseline restore fails", func() {
			workspaceMock.EXPECT().ClearTargetLog(mock.Anything).Return(nil)
			workspaceMock.EXPECT().WaitReady(mock.Anything).Return(nil)
			workspaceMock.EXPECT().RestoreBaseline(mock.Anything).Return(errors.New("no package"))

			res := r.runScenario(ctx, newScenario("clean", func(context.Context, *Env, *Recorder) error {
				return nil
			}))
			Expect(res.Passed).To(BeFalse())
			Expect(res.Errors[0]).To(ContainSubstring("baseline restore failed"))
		})

		It("should keep going when clearing the target log fails", func() {
			workspaceMock.EXPECT().ClearTargetLog(mock.Anything).Return(errors.New("no syslog"))
			expectTeardown()

			res := r.runScenario(ctx, newScenario("clean", func(context.Context, *Env, *Recorder) error {
				return nil
			}))
			Expect(res.Passed).To(BeTrue())
		})
	})

	Context("Run", func() {
		It("should bootstrap once and name the failed scenarios", func() {
			sessionMock.EXPECT().Connect(mock.Anything).Return(nil)
			sessionMock.EXPECT().Close().Return(nil)
			workspaceMock.EXPECT().Bootstrap(mock.Anything).Return(nil)
			workspaceMock.EXPECT().ClearTargetLog(mock.Anything).Return(nil).Times(2)
			workspaceMock.EXPECT().WaitReady(mock.Anything).Return(nil).Times(2)
			workspaceMock.EXPECT().RestoreBaseline(mock.Anything).Return(nil).Times(2)
			workspaceMock.EXPECT().Reboot(mock.Anything, rebootWait).Return(nil).Times(2)

			scenarios := []Scenario{
				newScenario("passing", func(context.Context, *Env, *Recorder) error {
					return nil
				}),
				newScenario("failing", func(_ context.Context, _ *Env, rec *Recorder) error {
					rec.Failf("broken")
					return nil
				}),
			}
			r = NewRunner(logr.Discard(), env, wrappers.NewOS(), nil, scenarios)

			err := r.Run(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("1 of 2 scenarios failed: failing"))
		})

		It("should refuse to start when the session cannot be opened", func() {
			connectErr := errors.New("no route to host")
			sessionMock.EXPECT().Connect(mock.Anything).Return(connectErr)
			sessionMock.EXPECT().Close().Return(nil).Maybe()

			r = NewRunner(logr.Discard(), env, wrappers.NewOS(), nil, nil)
			Expect(r.Run(ctx)).To(MatchError(connectErr))
		})
	})
})
