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

package session

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Stream", func() {
	var (
		s         *stream
		shellIn   *bytes.Buffer
		outWriter *io.PipeWriter
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		shellIn = &bytes.Buffer{}
		var outReader *io.PipeReader
		outReader, outWriter = io.Pipe()
		s = newStream(shellIn, outReader)
	})

	AfterEach(func() {
		_ = outWriter.Close()
	})

	feed := func(text string) {
		_, err := io.WriteString(outWriter, text)
		Expect(err).NotTo(HaveOccurred())
	}

	Context("send", func() {
		It("should terminate the command line with a newline", func() {
			Expect(s.send("kmod load example.ko")).To(Succeed())
			line, err := bufio.NewReader(shellIn).ReadString('\n')
			Expect(err).NotTo(HaveOccurred())
			Expect(line).To(Equal("kmod load example.ko\n"))
		})
	})

	Context("expect", func() {
		It("should return the index of the pattern that appears", func() {
			feed("noise\nLE_FAULT\nmore noise\n")
			idx, err := s.expect(ctx, []string{"successful", "LE_FAULT"}, time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(idx).To(Equal(1))
		})

		It("should prefer the pattern that arrived first", func() {
			feed("LE_DUPLICATE before LE_FAULT\n")
			idx, err := s.expect(ctx, []string{"ok", "LE_FAULT", "LE_DUPLICATE"}, time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(idx).To(Equal(2))
		})

		It("should prefer the lowest index when patterns overlap at the same position", func() {
			feed("LE_FAULT\n")
			idx, err := s.expect(ctx, []string{"LE_FAULT", "LE_FAULT"}, time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(idx).To(Equal(0))
		})

		It("should consume the buffer past the match", func() {
			feed("first marker\nsecond marker\n")
			idx, err := s.expect(ctx, []string{"first marker"}, time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(idx).To(Equal(0))

			// A stale "first marker" must not satisfy the next expectation.
			idx, err = s.expect(ctx, []string{"second marker", "first marker"}, time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(idx).To(Equal(0))
		})

		It("should match output that arrives after the call", func() {
			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				defer close(done)
				idx, err := s.expect(ctx, []string{"late arrival"}, 2*time.Second)
				Expect(err).NotTo(HaveOccurred())
				Expect(idx).To(Equal(0))
			}()
			time.Sleep(50 * time.Millisecond)
			feed("late arrival\n")
			Eventually(done, time.Second).Should(BeClosed())
		})

		It("should report a timeout when nothing matches", func() {
			feed("unrelated output\n")
			_, err := s.expect(ctx, []string{"never printed"}, 100*time.Millisecond)
			Expect(err).To(MatchError(ErrTimeout))
		})

		It("should report EOF as a timeout", func() {
			feed("unrelated output\n")
			Expect(outWriter.Close()).To(Succeed())
			_, err := s.expect(ctx, []string{"never printed"}, 5*time.Second)
			Expect(err).To(MatchError(ErrTimeout))
		})

		It("should stop when the context is canceled", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := s.expect(canceled, []string{"never printed"}, 5*time.Second)
			Expect(err).To(MatchError(context.Canceled))
		})

		It("should ignore empty patterns", func() {
			feed("payload\n")
			idx, err := s.expect(ctx, []string{"", "payload"}, time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(idx).To(Equal(1))
		})
	})
})
