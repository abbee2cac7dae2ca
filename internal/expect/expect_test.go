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

package expect

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/legato-af/lifecycle-harness/internal/session"
	sessionMockPkg "github.com/legato-af/lifecycle-harness/internal/session/mocks"
)

var _ = Describe("Expect", func() {
	var (
		e           *engine
		sessionMock *sessionMockPkg.Interface
		ctx         context.Context
	)

	const timeout = 30 * time.Second

	BeforeEach(func() {
		sessionMock = sessionMockPkg.NewInterface(GinkgoT())
		ctx = context.Background()
		e = New(sessionMock, timeout).(*engine)
	})

	loadPatterns := []string{
		"Load of module example.ko has been successful.",
		"LE_FAULT",
		"LE_DUPLICATE",
	}
	unloadPatterns := []string{
		"Unload of module example.ko has been successful.",
		"LE_FAULT",
		"LE_BUSY",
	}

	Context("AttemptLoad", func() {
		It("should classify the success message", func() {
			sessionMock.EXPECT().Send(ctx, "kmod load example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, loadPatterns, timeout).Return(0, nil)

			outcome, err := e.AttemptLoad(ctx, "example")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(LoadOK))
		})

		It("should classify a fault", func() {
			sessionMock.EXPECT().Send(ctx, "kmod load example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, loadPatterns, timeout).Return(1, nil)

			outcome, err := e.AttemptLoad(ctx, "example")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(LoadFault))
		})

		It("should classify a duplicate rejection", func() {
			sessionMock.EXPECT().Send(ctx, "kmod load example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, loadPatterns, timeout).Return(2, nil)

			outcome, err := e.AttemptLoad(ctx, "example")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(LoadDuplicate))
		})

		It("should report a silent channel as a timeout outcome, not an error", func() {
			sessionMock.EXPECT().Send(ctx, "kmod load example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, loadPatterns, timeout).Return(-1, session.ErrTimeout)

			outcome, err := e.AttemptLoad(ctx, "example")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(LoadTimeout))
		})

		It("should propagate transport errors", func() {
			transportErr := errors.New("connection reset")
			sessionMock.EXPECT().Send(ctx, "kmod load example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, loadPatterns, timeout).Return(-1, transportErr)

			_, err := e.AttemptLoad(ctx, "example")
			Expect(err).To(MatchError(transportErr))
		})

		It("should propagate send errors", func() {
			sendErr := errors.New("broken pipe")
			sessionMock.EXPECT().Send(ctx, "kmod load example.ko").Return(sendErr)

			_, err := e.AttemptLoad(ctx, "example")
			Expect(err).To(MatchError(sendErr))
		})
	})

	Context("AttemptUnload", func() {
		It("should classify the success message", func() {
			sessionMock.EXPECT().Send(ctx, "kmod unload example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, unloadPatterns, timeout).Return(0, nil)

			outcome, err := e.AttemptUnload(ctx, "example")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(UnloadOK))
		})

		It("should classify a busy rejection", func() {
			sessionMock.EXPECT().Send(ctx, "kmod unload example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, unloadPatterns, timeout).Return(2, nil)

			outcome, err := e.AttemptUnload(ctx, "example")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(UnloadBusy))
		})

		It("should report a silent channel as a timeout outcome, not an error", func() {
			sessionMock.EXPECT().Send(ctx, "kmod unload example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, unloadPatterns, timeout).Return(-1, session.ErrTimeout)

			outcome, err := e.AttemptUnload(ctx, "example")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(UnloadTimeout))
		})
	})

	Context("CheckLoad", func() {
		It("should confirm a matching outcome", func() {
			sessionMock.EXPECT().Send(ctx, "kmod load example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, loadPatterns, timeout).Return(2, nil)

			ok, observed, err := e.CheckLoad(ctx, "example", LoadDuplicate)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(observed).To(Equal(LoadDuplicate))
		})

		It("should report the observed outcome on a mismatch", func() {
			sessionMock.EXPECT().Send(ctx, "kmod load example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, loadPatterns, timeout).Return(1, nil)

			ok, observed, err := e.CheckLoad(ctx, "example", LoadOK)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(observed).To(Equal(LoadFault))
		})
	})

	Context("CheckUnload", func() {
		It("should report the observed outcome on a mismatch", func() {
			sessionMock.EXPECT().Send(ctx, "kmod unload example.ko").Return(nil)
			sessionMock.EXPECT().Expect(ctx, unloadPatterns, timeout).Return(2, nil)

			ok, observed, err := e.CheckUnload(ctx, "example", UnloadOK)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(observed).To(Equal(UnloadBusy))
		})
	})
})
