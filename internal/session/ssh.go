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
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/crypto/ssh"
)

// Options describe how to reach the target device.
type Options struct {
	Host        string
	Port        int
	User        string
	Password    string
	DialTimeout time.Duration
}

// New initialize the SSH implementation of the session.Interface.
func New(opts Options) Interface {
	return &sshChannel{opts: opts}
}

type sshChannel struct {
	opts Options

	mu     sync.Mutex
	client *ssh.Client
	shell  *ssh.Session
	stream *stream
}

// Connect is the default implementation of the session.Interface.
func (s *sshChannel) Connect(ctx context.Context) error {
	log := logr.FromContextOrDiscard(ctx)
	_ = s.Close()

	clientConfig := &ssh.ClientConfig{
		User: s.opts.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(s.opts.Password),
			ssh.KeyboardInteractive(
				func(user, instruction string, questions []string, echos []bool) ([]string, error) {
					answers := make([]string, len(questions))
					for i := range answers {
						answers[i] = s.opts.Password
					}
					return answers, nil
				}),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         s.opts.DialTimeout,
	}

	addr := net.JoinHostPort(s.opts.Host, strconv.Itoa(s.opts.Port))
	log.V(1).Info("Connect()", "addr", addr, "user", s.opts.User)
	client, err := ssh.Dial("tcp", addr, clientConfig)
	if err != nil {
		return err
	}

	shell, err := client.NewSession()
	if err != nil {
		_ = client.Close()
		return err
	}
	// A pty merges stderr into the stream, so rejection markers printed on
	// either descriptor are visible to Expect.
	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := shell.RequestPty("xterm", 80, 200, modes); err != nil {
		_ = shell.Close()
		_ = client.Close()
		return err
	}
	stdin, err := shell.StdinPipe()
	if err != nil {
		_ = shell.Close()
		_ = client.Close()
		return err
	}
	stdout, err := shell.StdoutPipe()
	if err != nil {
		_ = shell.Close()
		_ = client.Close()
		return err
	}
	if err := shell.Shell(); err != nil {
		_ = shell.Close()
		_ = client.Close()
		return err
	}

	s.mu.Lock()
	s.client = client
	s.shell = shell
	s.stream = newStream(stdin, stdout)
	s.mu.Unlock()
	return nil
}

// Close is the default implementation of the session.Interface.
func (s *sshChannel) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	if s.shell != nil {
		_ = s.shell.Close()
		s.shell = nil
	}
	if s.client != nil {
		err = s.client.Close()
		s.client = nil
	}
	s.stream = nil
	return err
}

// Send is the default implementation of the session.Interface.
func (s *sshChannel) Send(ctx context.Context, line string) error {
	log := logr.FromContextOrDiscard(ctx)
	s.mu.Lock()
	st := s.stream
	s.mu.Unlock()
	if st == nil {
		return ErrNotConnected
	}
	log.V(1).Info("Send()", "line", line)
	return st.send(line)
}

// Expect is the default implementation of the session.Interface.
func (s *sshChannel) Expect(ctx context.Context, patterns []string, timeout time.Duration) (int, error) {
	log := logr.FromContextOrDiscard(ctx)
	s.mu.Lock()
	st := s.stream
	s.mu.Unlock()
	if st == nil {
		return -1, ErrNotConnected
	}
	idx, err := st.expect(ctx, patterns, timeout)
	log.V(1).Info("Expect()", "patterns", patterns, "matched", idx, "error", err)
	return idx, err
}

// Run is the default implementation of the session.Interface.
func (s *sshChannel) Run(ctx context.Context, command string) (string, int, error) {
	log := logr.FromContextOrDiscard(ctx)
	s.mu.Lock()
	client := s.client
	s.mu.Unlock()
	if client == nil {
		return "", -1, ErrNotConnected
	}

	sess, err := client.NewSession()
	if err != nil {
		return "", -1, err
	}
	defer func() { _ = sess.Close() }()

	var stdout, stderr bytes.Buffer
	sess.Stdout = &stdout
	sess.Stderr = &stderr

	done := make(chan error, 1)
	go func() { done <- sess.Run(command) }()

	select {
	case <-ctx.Done():
		_ = sess.Signal(ssh.SIGKILL)
		return stdout.String(), -1, ctx.Err()
	case err := <-done:
		log.V(1).Info("Run()", "command", command, "error", err,
			"stdout", stdout.String(), "stderr", stderr.String())
		if err == nil {
			return stdout.String(), 0, nil
		}
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), exitErr.ExitStatus(), nil
		}
		return stdout.String(), -1, err
	}
}
