package metrics

import (
	"context"
	"database/sql"
	"time"

	metricsdb "grocery-optimizer/internal/metrics/db"
)

// SolveMetric records metadata for a single solver invocation.
type SolveMetric struct {
	VersionLabel string
	Status       string
	NumProducts  int
	NumColumns   int
	NumRows      int
	LatencyMS    int64
	Timestamp    time.Time
}

// Store handles persistence of solve metrics to SQLite.
type Store struct {
	queries *metricsdb.Queries
	db      *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		queries: metricsdb.New(db),
		db:      db,
	}
}

// Record saves a metric to the database.
func (s *Store) Record(m SolveMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	return s.queries.InsertSolveMetric(context.Background(), metricsdb.InsertSolveMetricParams{
		VersionLabel: m.VersionLabel,
		Status:       m.Status,
		NumProducts:  int64(m.NumProducts),
		NumColumns:   int64(m.NumColumns),
		NumRows:      int64(m.NumRows),
		LatencyMs:    m.LatencyMS,
		Timestamp:    ts,
	})
}

// RecentSolves retrieves the N most recent solver invocations.
func (s *Store) RecentSolves(limit int) ([]SolveMetric, error) {
	rows, err := s.queries.ListRecentSolveMetrics(context.Background(), int64(limit))
	if err != nil {
		return nil, err
	}

	var results []SolveMetric
	for _, r := range rows {
		results = append(results, SolveMetric{
			VersionLabel: r.VersionLabel,
			Status:       r.Status,
			NumProducts:  int(r.NumProducts),
			NumColumns:   int(r.NumColumns),
			NumRows:      int(r.NumRows),
			LatencyMS:    r.LatencyMs,
			Timestamp:    r.Timestamp,
		})
	}
	return results, nil
}

// Cleanup removes records older than the specified number of days.
func (s *Store) Cleanup(olderThanDays int) (int64, error) {
	threshold := time.Now().AddDate(0, 0, -olderThanDays)
	err := s.queries.CleanupSolveMetrics(context.Background(), threshold)
	if err != nil {
		return 0, err
	}

	// sqlc's :exec doesn't return rows affected for SQLite easily without extra steps.
	// For simplicity, we'll return 0 or implement a custom check if needed.
	return 0, nil
}
