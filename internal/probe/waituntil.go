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
	"fmt"
	"time"
)

// ErrExhausted is returned by WaitUntil when the condition did not hold
// before the attempt budget ran out.
var ErrExhausted = errors.New("condition not met before attempts were exhausted")

// WaitOptions bound a polling wait.
type WaitOptions struct {
	// Attempts is the maximum number of predicate evaluations.
	Attempts int
	// Interval is the fixed delay between evaluations.
	Interval time.Duration
}

// WaitUntil polls the predicate at a fixed interval until it reports true,
// the attempt budget is exhausted or the context is canceled. Predicate
// errors count as failed attempts; the last one is attached to ErrExhausted.
// Whether exhaustion fails a scenario is the caller's decision.
func WaitUntil(ctx context.Context, pred func(context.Context) (bool, error), opts WaitOptions) error {
	var lastErr error
	for attempt := 0; attempt < opts.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.Interval):
			}
		}
		ok, err := pred(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if ok {
			return nil
		}
	}
	if lastErr != nil {
		return fmt.Errorf("%w (last attempt: %v)", ErrExhausted, lastErr)
	}
	return ErrExhausted
}
