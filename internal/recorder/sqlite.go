package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"RiskFrontier/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis runs to a SQLite database.
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
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			start_date   TEXT NOT NULL,
			end_date     TEXT NOT NULL,
			observations INTEGER NOT NULL,
			assets       TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS asset_stats (
			run_id   INTEGER NOT NULL REFERENCES runs(id),
			symbol   TEXT NOT NULL,
			mean     REAL,
			variance REAL,
			std_dev  REAL,
			q1       REAL,
			q3       REAL,
			iqr      REAL,
			PRIMARY KEY (run_id, symbol)
		)`,

		`CREATE TABLE IF NOT EXISTS covariances (
			run_id     INTEGER NOT NULL REFERENCES runs(id),
			asset_a    TEXT NOT NULL,
			asset_b    TEXT NOT NULL,
			covariance REAL,
			PRIMARY KEY (run_id, asset_a, asset_b)
		)`,

		`CREATE TABLE IF NOT EXISTS frontier_points (
			run_id          INTEGER NOT NULL REFERENCES runs(id),
			asset_a         TEXT NOT NULL,
			asset_b         TEXT NOT NULL,
			idx             INTEGER NOT NULL,
			weight_a        REAL,
			weight_b        REAL,
			expected_return REAL,
			volatility      REAL,
			is_max_return   INTEGER NOT NULL DEFAULT 0,
			is_min_variance INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, asset_a, asset_b, idx)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis stores one run in a single transaction and returns once it
// is committed.
func (r *SQLiteRecorder) RecordAnalysis(a *model.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (timestamp, start_date, end_date, observations, assets)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), a.Start.Format(time.DateOnly), a.End.Format(time.DateOnly),
		a.Observations, strings.Join(a.Covariance.Symbols, ","),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, s := range a.Stats {
		q, _ := a.QuantilesFor(s.Symbol)
		if _, err := tx.Exec(`INSERT INTO asset_stats
			(run_id, symbol, mean, variance, std_dev, q1, q3, iqr)
			VALUES (?,?,?,?,?,?,?,?)`,
			runID, s.Symbol, s.Mean, s.Variance, s.StdDev, q.Q1, q.Q3, q.IQR,
		); err != nil {
			return fmt.Errorf("insert stats %s: %w", s.Symbol, err)
		}
	}

	// Upper triangle only; the matrix is symmetric.
	cov := a.Covariance
	for i := 0; i < cov.Size(); i++ {
		for j := i; j < cov.Size(); j++ {
			if _, err := tx.Exec(`INSERT INTO covariances (run_id, asset_a, asset_b, covariance)
				VALUES (?,?,?,?)`,
				runID, cov.Symbols[i], cov.Symbols[j], cov.At(i, j),
			); err != nil {
				return fmt.Errorf("insert covariance %s/%s: %w", cov.Symbols[i], cov.Symbols[j], err)
			}
		}
	}

	for _, p := range a.Pairs {
		f := p.Frontier
		for i, pt := range f.Points {
			if _, err := tx.Exec(`INSERT INTO frontier_points
				(run_id, asset_a, asset_b, idx, weight_a, weight_b, expected_return, volatility, is_max_return, is_min_variance)
				VALUES (?,?,?,?,?,?,?,?,?,?)`,
				runID, f.AssetA, f.AssetB, i, pt.WeightA, pt.WeightB, pt.ExpectedReturn, pt.Volatility,
				i == f.MaxReturnIndex, i == f.MinVarianceIndex,
			); err != nil {
				return fmt.Errorf("insert frontier %s/%s: %w", f.AssetA, f.AssetB, err)
			}
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
