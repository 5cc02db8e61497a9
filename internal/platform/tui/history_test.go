package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/blastgrid/internal/storage"
)

func TestHistoryTableEmpty(t *testing.T) {
	if got := HistoryTable(nil, 80, false); got != "No runs recorded yet." {
		t.Errorf("unexpected empty table %q", got)
	}
}

func TestHistoryTableRows(t *testing.T) {
	runs := []storage.RunRecord{
		{
			InputPath: "maps/a.txt", TargetX: 1, TargetY: 2, Width: 3, Height: 4,
			Status: storage.StatusOK, Detonations: 5, Hits: 6, Kills: 2,
			CreatedAt: time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
		},
		{
			InputPath: "maps/b.txt", Status: storage.StatusError,
			ErrorCode: "TARGET_NOT_A_BOMB",
		},
	}

	out := HistoryTable(runs, 120, false)
	for _, want := range []string{"Input", "maps/a.txt", "(1,2)", "3x4", "ok", "maps/b.txt", "TARGET_NOT_A_BOMB", "Mar 04 10:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("history table missing %q:\n%s", want, out)
		}
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path     string
		width    int
		expected string
	}{
		{"short.txt", 20, "short.txt"},
		{"very/long/path/to/level.txt", 12, "...level.txt"},
		{"abc", 2, "abc"},
	}

	for _, tc := range tests {
		if got := truncatePath(tc.path, tc.width); got != tc.expected {
			t.Errorf("truncatePath(%q, %d) = %q, expected %q", tc.path, tc.width, got, tc.expected)
		}
	}
}

func TestStatsView(t *testing.T) {
	out := StatsView(&storage.RunStats{TotalRuns: 3, FailedRuns: 1, MaxChain: 4}, PlainTheme())
	for _, want := range []string{"runs          3", "failed        1", "longest chain 4", "last run      never"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats view missing %q:\n%s", want, out)
		}
	}
}
