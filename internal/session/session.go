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
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"
)

// ErrTimeout is returned by Expect when none of the expected patterns
// appeared in the target output before the deadline.
var ErrTimeout = errors.New("none of the expected patterns observed before deadline")

// ErrNotConnected is returned when the channel is used before Connect.
var ErrNotConnected = errors.New("session is not connected")

// Interface is the interface exposed by the session package. It models a
// line-oriented command channel to the target device plus one-shot command
// execution for state queries.
type Interface interface {
	// Connect establishes the channel to the target. Calling Connect on an
	// already connected channel tears the old connection down first.
	Connect(ctx context.Context) error
	// Close tears the channel down. Safe to call on a closed channel.
	Close() error
	// Send writes a single command line to the interactive shell. Fire and forget.
	Send(ctx context.Context, line string) error
	// Expect blocks until one of the patterns appears in the accumulated shell
	// output or the timeout elapses. It returns the index of the matched
	// pattern and consumes the read buffer past the match. The earliest match
	// in arrival order wins; on a tie the lowest list index wins.
	Expect(ctx context.Context, patterns []string, timeout time.Duration) (int, error)
	// Run executes a command in a fresh one-shot session and returns its
	// stdout and exit status. A non-zero exit status is not an error.
	Run(ctx context.Context, command string) (string, int, error)
}

// pollTick bounds how often Expect re-scans the accumulated output.
const pollTick = 20 * time.Millisecond

// stream accumulates shell output and matches expected patterns against it.
// It is transport-agnostic: the SSH layer hands it the shell's stdin/stdout.
type stream struct {
	in io.Writer

	mu   sync.Mutex
	buf  []byte
	rerr error
}

func newStream(in io.Writer, out io.Reader) *stream {
	s := &stream{in: in}
	go s.collect(out)
	return s
}

// collect drains the shell output into the buffer until the reader fails.
func (s *stream) collect(out io.Reader) {
	chunk := make([]byte, 4096)
	for {
		n, err := out.Read(chunk)
		s.mu.Lock()
		if n > 0 {
			s.buf = append(s.buf, chunk[:n]...)
		}
		if err != nil {
			s.rerr = err
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
	}
}

func (s *stream) send(line string) error {
	_, err := io.WriteString(s.in, line+"\n")
	return err
}

func (s *stream) expect(ctx context.Context, patterns []string, timeout time.Duration) (int, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	tick := time.NewTicker(pollTick)
	defer tick.Stop()
	for {
		if idx, ok := s.match(patterns); ok {
			return idx, nil
		}
		s.mu.Lock()
		rerr := s.rerr
		s.mu.Unlock()
		if rerr != nil {
			// The channel is gone and the data already buffered did not
			// match. EOF is reported as a timeout so that callers classify
			// it the same way as an unresponsive target.
			if errors.Is(rerr, io.EOF) {
				return -1, ErrTimeout
			}
			return -1, rerr
		}
		select {
		case <-ctx.Done():
			return -1, ctx.Err()
		case <-deadline.C:
			return -1, ErrTimeout
		case <-tick.C:
		}
	}
}

// match scans the buffer for the earliest occurrence of any pattern and, on
// success, consumes the buffer through the end of the match.
func (s *stream) match(patterns []string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched, matchedPos := -1, -1
	for i, p := range patterns {
		if p == "" {
			continue
		}
		pos := bytes.Index(s.buf, []byte(p))
		if pos < 0 {
			continue
		}
		if matchedPos < 0 || pos < matchedPos {
			matched, matchedPos = i, pos
		}
	}
	if matched < 0 {
		return -1, false
	}
	s.buf = s.buf[matchedPos+len(patterns[matched]):]
	return matched, true
}
