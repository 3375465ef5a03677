package metrics

import (
	"path/filepath"
	"testing"
	"time"

	"grocery-optimizer/internal/database"
)

func TestStore(t *testing.T) {
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	store := NewStore(db.SQL)

	recorded := []SolveMetric{
		{VersionLabel: "A", Status: "optimal", NumProducts: 80, NumColumns: 320, NumRows: 250, LatencyMS: 140},
		{VersionLabel: "B", Status: "optimal", NumProducts: 80, NumColumns: 320, NumRows: 250, LatencyMS: 155},
		{VersionLabel: "C", Status: "infeasible", NumProducts: 80, NumColumns: 320, NumRows: 250, LatencyMS: 90},
	}
	for _, m := range recorded {
		if err := store.Record(m); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	t.Run("RecentSolves", func(t *testing.T) {
		solves, err := store.RecentSolves(2)
		if err != nil {
			t.Fatalf("RecentSolves failed: %v", err)
		}
		if len(solves) != 2 {
			t.Fatalf("Expected 2 solves, got %d", len(solves))
		}
		// Most recent first.
		if solves[0].VersionLabel != "C" || solves[1].VersionLabel != "B" {
			t.Errorf("Expected C then B, got %s then %s", solves[0].VersionLabel, solves[1].VersionLabel)
		}
		if solves[0].Status != "infeasible" || solves[0].LatencyMS != 90 {
			t.Errorf("Metric fields did not round-trip: %+v", solves[0])
		}
		if solves[0].Timestamp.IsZero() {
			t.Error("Expected Record to default a zero timestamp")
		}
	})

	t.Run("Cleanup", func(t *testing.T) {
		old := SolveMetric{
			VersionLabel: "A",
			Status:       "optimal",
			Timestamp:    time.Now().UTC().AddDate(0, 0, -60),
		}
		if err := store.Record(old); err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		if _, err := store.Cleanup(30); err != nil {
			t.Fatalf("Cleanup failed: %v", err)
		}

		solves, err := store.RecentSolves(10)
		if err != nil {
			t.Fatalf("RecentSolves failed: %v", err)
		}
		if len(solves) != 3 {
			t.Errorf("Expected the 60-day-old metric to be removed, got %d rows", len(solves))
		}
		for _, s := range solves {
			if time.Since(s.Timestamp) > 24*time.Hour {
				t.Errorf("Stale metric survived cleanup: %+v", s)
			}
		}
	})
}
