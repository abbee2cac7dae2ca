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
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/legato-af/lifecycle-harness/internal/constants"
	"github.com/legato-af/lifecycle-harness/internal/session"
)

// LoadOutcome classifies the target's response to "kmod load". The numeric
// values mirror the position of the matched pattern in the expectation list.
type LoadOutcome int

const (
	LoadOK LoadOutcome = iota
	LoadFault
	LoadDuplicate
	// LoadTimeout means no pattern matched before the deadline. It is not a
	// classification of the command but of the channel.
	LoadTimeout
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadOK:
		return "OK"
	case LoadFault:
		return "FAULT"
	case LoadDuplicate:
		return "DUPLICATE"
	case LoadTimeout:
		return "TIMEOUT"
	default:
		return fmt.Sprintf("LoadOutcome(%d)", int(o))
	}
}

// UnloadOutcome classifies the target's response to "kmod unload". It is a
// separate type from LoadOutcome on purpose: both use index 2 on the wire but
// with different meanings, and sharing a type invites cross-talk.
type UnloadOutcome int

const (
	UnloadOK UnloadOutcome = iota
	UnloadFault
	UnloadBusy
	UnloadTimeout
)

func (o UnloadOutcome) String() string {
	switch o {
	case UnloadOK:
		return "OK"
	case UnloadFault:
		return "FAULT"
	case UnloadBusy:
		return "BUSY"
	case UnloadTimeout:
		return "TIMEOUT"
	default:
		return fmt.Sprintf("UnloadOutcome(%d)", int(o))
	}
}

// Interface is the interface exposed by the expect package. The engine only
// observes: callers supply the expected outcome to the Check variants and the
// engine reports equality, it never retries and never predicts which rejection
// the device will report.
type Interface interface {
	// AttemptLoad sends "kmod load <module>.ko" and classifies the response.
	AttemptLoad(ctx context.Context, module string) (LoadOutcome, error)
	// AttemptUnload sends "kmod unload <module>.ko" and classifies the response.
	AttemptUnload(ctx context.Context, module string) (UnloadOutcome, error)
	// CheckLoad reports whether the observed outcome equals the expected one,
	// together with the observed outcome itself.
	CheckLoad(ctx context.Context, module string, expected LoadOutcome) (bool, LoadOutcome, error)
	// CheckUnload reports whether the observed outcome equals the expected
	// one, together with the observed outcome itself.
	CheckUnload(ctx context.Context, module string, expected UnloadOutcome) (bool, UnloadOutcome, error)
}

// New initialize default implementation of the expect.Interface.
func New(s session.Interface, timeout time.Duration) Interface {
	return &engine{
		session: s,
		timeout: timeout,
	}
}

type engine struct {
	session session.Interface
	timeout time.Duration
}

// LoadSuccessMessage is the exact success line printed by the kmod tool.
func LoadSuccessMessage(module string) string {
	return fmt.Sprintf("Load of module %s.ko has been successful.", module)
}

// UnloadSuccessMessage is the exact success line printed by the kmod tool.
func UnloadSuccessMessage(module string) string {
	return fmt.Sprintf("Unload of module %s.ko has been successful.", module)
}

// AttemptLoad is the default implementation of the expect.Interface.
func (e *engine) AttemptLoad(ctx context.Context, module string) (LoadOutcome, error) {
	log := logr.FromContextOrDiscard(ctx)
	if err := e.session.Send(ctx, fmt.Sprintf("kmod load %s.ko", module)); err != nil {
		return LoadTimeout, err
	}
	patterns := []string{
		LoadSuccessMessage(module),
		constants.MarkerFault,
		constants.MarkerDuplicate,
	}
	idx, err := e.session.Expect(ctx, patterns, e.timeout)
	if err != nil {
		if errors.Is(err, session.ErrTimeout) {
			log.Error(err, "load attempt could not be classified", "module", module)
			return LoadTimeout, nil
		}
		return LoadTimeout, err
	}
	return LoadOutcome(idx), nil
}

// AttemptUnload is the default implementation of the expect.Interface.
func (e *engine) AttemptUnload(ctx context.Context, module string) (UnloadOutcome, error) {
	log := logr.FromContextOrDiscard(ctx)
	if err := e.session.Send(ctx, fmt.Sprintf("kmod unload %s.ko", module)); err != nil {
		return UnloadTimeout, err
	}
	patterns := []string{
		UnloadSuccessMessage(module),
		constants.MarkerFault,
		constants.MarkerBusy,
	}
	idx, err := e.session.Expect(ctx, patterns, e.timeout)
	if err != nil {
		if errors.Is(err, session.ErrTimeout) {
			log.Error(err, "unload attempt could not be classified", "module", module)
			return UnloadTimeout, nil
		}
		return UnloadTimeout, err
	}
	return UnloadOutcome(idx), nil
}

// CheckLoad is the default implementation of the expect.Interface.
func (e *engine) CheckLoad(ctx context.Context, module string, expected LoadOutcome) (bool, LoadOutcome, error) {
	observed, err := e.AttemptLoad(ctx, module)
	if err != nil {
		return false, observed, err
	}
	return observed == expected, observed, nil
}

// CheckUnload is the default implementation of the expect.Interface.
func (e *engine) CheckUnload(ctx context.Context, module string, expected UnloadOutcome) (bool, UnloadOutcome, error) {
	observed, err := e.AttemptUnload(ctx, module)
	if err != nil {
		return false, observed, err
	}
	return observed == expected, observed, nil
}
