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
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	sessionMockPkg "github.com/legato-af/lifecycle-harness/internal/session/mocks"
)

var _ = Describe("Probe", func() {
	var (
		p           *probe
		sessionMock *sessionMockPkg.Interface
		ctx         context.Context
	)

	BeforeEach(func() {
		sessionMock = sessionMockPkg.NewInterface(GinkgoT())
		ctx = context.Background()
		p = New(sessionMock).(*probe)
	})

	const legatoStatusOutput = `Systems installed:
  24 [good]
  25 [tried 1] <-- current
Legato framework is running.
`

	Context("IsModulePresent", func() {
		It("should report present when grep finds the module", func() {
			sessionMock.EXPECT().Run(ctx, `/sbin/lsmod | grep -F "example"`).
				Return("example 16384 0", 0, nil)

			present, err := p.IsModulePresent(ctx, "example")
			Expect(err).NotTo(HaveOccurred())
			Expect(present).To(BeTrue())
		})

		It("should report absent when grep exits non-zero", func() {
			sessionMock.EXPECT().Run(ctx, `/sbin/lsmod | grep -F "example"`).
				Return("", 1, nil)

			present, err := p.IsModulePresent(ctx, "example")
			Expect(err).NotTo(HaveOccurred())
			Expect(present).To(BeFalse())
		})

		It("should propagate transport errors", func() {
			transportErr := errors.New("connection reset")
			sessionMock.EXPECT().Run(ctx, `/sbin/lsmod | grep -F "example"`).
				Return("", 0, transportErr)

			_, err := p.IsModulePresent(ctx, "example")
			Expect(err).To(MatchError(transportErr))
		})
	})

	Context("IsAppRunning", func() {
		It("should report running from the status marker", func() {
			sessionMock.EXPECT().Run(ctx, "app status LoopingHelloWorld").
				Return("[running] LoopingHelloWorld", 0, nil)

			running, err := p.IsAppRunning(ctx, "LoopingHelloWorld")
			Expect(err).NotTo(HaveOccurred())
			Expect(running).To(BeTrue())
		})

		It("should report stopped apps as not running", func() {
			sessionMock.EXPECT().Run(ctx, "app status LoopingHelloWorld").
				Return("[stopped] LoopingHelloWorld", 0, nil)

			running, err := p.IsAppRunning(ctx, "LoopingHelloWorld")
			Expect(err).NotTo(HaveOccurred())
			Expect(running).To(BeFalse())
		})

		It("should report unknown apps as not running", func() {
			sessionMock.EXPECT().Run(ctx, "app status unknown").
				Return("", 1, nil)

			running, err := p.IsAppRunning(ctx, "unknown")
			Expect(err).NotTo(HaveOccurred())
			Expect(running).To(BeFalse())
		})
	})

	Context("IsAppInstalled", func() {
		It("should match the app name as a whole token", func() {
			sessionMock.EXPECT().Run(ctx, "app list").
				Return("tools\nLoopingHelloWorld\n", 0, nil)

			installed, err := p.IsAppInstalled(ctx, "LoopingHelloWorld")
			Expect(err).NotTo(HaveOccurred())
			Expect(installed).To(BeTrue())
		})

		It("should not match a name that is only a prefix of a listed app", func() {
			sessionMock.EXPECT().Run(ctx, "app list").
				Return("LoopingHelloWorldExtended\n", 0, nil)

			installed, err := p.IsAppInstalled(ctx, "LoopingHelloWorld")
			Expect(err).NotTo(HaveOccurred())
			Expect(installed).To(BeFalse())
		})
	})

	Context("SystemStatus", func() {
		It("should parse a tried system with its attempt counter", func() {
			sessionMock.EXPECT().Run(ctx, "legato status").Return(legatoStatusOutput, 0, nil)

			status, err := p.SystemStatus(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(StatusTried))
		})

		It("should parse a good system", func() {
			sessionMock.EXPECT().Run(ctx, "legato status").
				Return("  25 [good] <-- current\n", 0, nil)

			status, err := p.SystemStatus(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(StatusGood))
		})

		It("should parse a bad system", func() {
			sessionMock.EXPECT().Run(ctx, "legato status").
				Return("  25 [bad] <-- current\n", 0, nil)

			status, err := p.SystemStatus(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(StatusBad))
		})

		It("should fail when no current system is listed", func() {
			sessionMock.EXPECT().Run(ctx, "legato status").
				Return("Systems installed:\n  24 [good]\n", 0, nil)

			status, err := p.SystemStatus(ctx)
			Expect(err).To(HaveOccurred())
			Expect(status).To(Equal(StatusUnknown))
		})

		It("should fail on an unrecognized status word", func() {
			sessionMock.EXPECT().Run(ctx, "legato status").
				Return("  25 [melted] <-- current\n", 0, nil)

			status, err := p.SystemStatus(ctx)
			Expect(err).To(HaveOccurred())
			Expect(status).To(Equal(StatusUnknown))
		})

		It("should fail when the command exits non-zero", func() {
			sessionMock.EXPECT().Run(ctx, "legato status").Return("", 1, nil)

			_, err := p.SystemStatus(ctx)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("SystemIndex", func() {
		It("should return the index of the current system", func() {
			sessionMock.EXPECT().Run(ctx, "legato status").Return(legatoStatusOutput, 0, nil)

			index, err := p.SystemIndex(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(index).To(Equal(25))
		})

		It("should fail when the line does not start with an index", func() {
			sessionMock.EXPECT().Run(ctx, "legato status").
				Return("  borked [good] <-- current\n", 0, nil)

			_, err := p.SystemIndex(ctx)
			Expect(err).To(HaveOccurred())
		})
	})
})
