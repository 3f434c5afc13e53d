package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"ABTestLab/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tools can read while the simulator writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			days             INTEGER,
			visitors_per_day INTEGER,
			baseline_rate    REAL,
			variant_rate     REAL,
			seed             INTEGER,
			start_date       TEXT,
			confidence       REAL,
			final_rate       REAL,
			ci_lower         REAL,
			ci_upper         REAL,
			expected_lift    REAL,
			observed_lift    REAL,
			z_score          REAL,
			p_value          REAL,
			significant      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS observations (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id          INTEGER NOT NULL REFERENCES runs(id),
			date            TEXT NOT NULL,
			conversions     INTEGER,
			visitors        INTEGER,
			cum_conversions INTEGER,
			cum_visitors    INTEGER,
			cum_rate        REAL,
			std_err         REAL,
			ci_lower        REAL,
			ci_upper        REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_observations_run ON observations(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores the run summary and all per-day rows in one transaction.
func (r *SQLiteRecorder) RecordRun(exp model.Experiment, obs []model.Observation, sum *model.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	significant := 0
	if sum.Significant {
		significant = 1
	}
	res, err := tx.Exec(`INSERT INTO runs
		(timestamp, days, visitors_per_day, baseline_rate, variant_rate, seed,
		 start_date, confidence, final_rate, ci_lower, ci_upper,
		 expected_lift, observed_lift, z_score, p_value, significant)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), exp.Days, exp.VisitorsPerDay, exp.BaselineRate,
		exp.VariantRate, exp.Seed, exp.StartDate.Format("2006-01-02"), exp.Confidence,
		sum.FinalRate, sum.CILower, sum.CIUpper,
		sum.ExpectedLift, sum.ObservedLift, sum.ZScore, sum.PValue, significant,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("run id: %w", err)
	}

	for _, o := range obs {
		if _, err := tx.Exec(`INSERT INTO observations
			(run_id, date, conversions, visitors, cum_conversions, cum_visitors,
			 cum_rate, std_err, ci_lower, ci_upper)
			VALUES (?,?,?,?,?,?,?,?,?,?)`,
			runID, o.Date.Format("2006-01-02"), o.Conversions, o.Visitors,
			o.CumConversions, o.CumVisitors, o.CumRate, o.StdErr, o.CILower, o.CIUpper,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert observation: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
