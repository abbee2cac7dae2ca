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
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/legato-af/lifecycle-harness/internal/wrappers"
)

// Result is one scenario run.
type Result struct {
	Scenario  string
	Passed    bool
	Errors    []string
	StartedAt time.Time
	Duration  time.Duration
}

// Interface is the interface exposed by the report package. The store keeps
// an append-only history of scenario verdicts; it is best-effort and must
// never fail a run.
type Interface interface {
	// Record appends one scenario result.
	Record(ctx context.Context, res Result) error
	// Close releases the underlying database.
	Close() error
}

// Open initializes the SQLite-backed result store at the given path.
func Open(path string, osWrapper wrappers.OSWrapper) (Interface, error) {
	if err := osWrapper.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	dsn := "file:" + path + "?_pragma=busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS scenario_results(
			scenario TEXT NOT NULL,
			passed INTEGER NOT NULL,
			errors TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL);
		CREATE INDEX IF NOT EXISTS idx_scenario_results_name ON scenario_results(scenario);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &store{db: db}, nil
}

type store struct {
	db *sql.DB
}

// Record is the default implementation of the report.Interface.
func (s *store) Record(ctx context.Context, res Result) error {
	errs, err := json.Marshal(res.Errors)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scenario_results(scenario, passed, errors, started_at, duration_ms) VALUES(?,?,?,?,?)`,
		res.Scenario, res.Passed, string(errs), res.StartedAt.Unix(), res.Duration.Milliseconds())
	return err
}

// Close is the default implementation of the report.Interface.
func (s *store) Close() error {
	return s.db.Close()
}
