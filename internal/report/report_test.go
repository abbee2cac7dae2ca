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

package report

import (
	"context"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/legato-af/lifecycle-harness/internal/wrappers"
)

var _ = Describe("Report store", func() {
	var (
		s   Interface
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		s, err = Open(filepath.Join(GinkgoT().TempDir(), "results", "harness.db"), wrappers.NewOS())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(s.Close()).To(Succeed())
	})

	It("should persist and read back a result", func() {
		res := Result{
			Scenario:  "L_Tools_Kmod_0004",
			Passed:    false,
			Errors:    []string{"step 2: kernel module missing"},
			StartedAt: time.Now(),
			Duration:  90 * time.Second,
		}
		Expect(s.Record(ctx, res)).To(Succeed())

		db := s.(*store).db
		var scenario, errs string
		var passed bool
		var durationMs int64
		row := db.QueryRowContext(ctx,
			`SELECT scenario, passed, errors, duration_ms FROM scenario_results`)
		Expect(row.Scan(&scenario, &passed, &errs, &durationMs)).To(Succeed())
		Expect(scenario).To(Equal("L_Tools_Kmod_0004"))
		Expect(passed).To(BeFalse())
		Expect(errs).To(MatchJSON(`["step 2: kernel module missing"]`))
		Expect(durationMs).To(Equal(int64(90000)))
	})

	It("should append results across runs of the same scenario", func() {
		res := Result{Scenario: "L_UpdateCtrl_LockProbation_0001", Passed: true, StartedAt: time.Now()}
		Expect(s.Record(ctx, res)).To(Succeed())
		Expect(s.Record(ctx, res)).To(Succeed())

		db := s.(*store).db
		var count int
		row := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scenario_results`)
		Expect(row.Scan(&count)).To(Succeed())
		Expect(count).To(Equal(2))
	})
})
