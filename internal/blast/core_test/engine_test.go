package core_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/blastgrid/internal/blast/core"
)

func TestExecuteTurn(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		target   core.Coord
		expected string
	}{
		{
			name:     "enemy beside bomb, wall below",
			input:    "B1 F1\nW _\n",
			target:   core.C(0, 0),
			expected: "_ _\nW _\n",
		},
		{
			name:     "detour redirects downward blast",
			input:    "F2 _ _\nB3 _ _\nDR _ F1\n",
			target:   core.C(0, 1),
			expected: "F1 _ _\n_ _ _\nDR _ _\n",
		},
		{
			name:     "surplus reach damages once",
			input:    "B5 _ F2\n",
			target:   core.C(0, 0),
			expected: "_ _ F1\n",
		},
		{
			name:     "reach too short",
			input:    "B1 _ F2\n",
			target:   core.C(0, 0),
			expected: "_ _ F2\n",
		},
		{
			name:     "wall stops plain bomb",
			input:    "B3 W F1\n",
			target:   core.C(0, 0),
			expected: "_ W F1\n",
		},
		{
			name:     "wall stops piercing bomb",
			input:    "S3 W F1\n",
			target:   core.C(0, 0),
			expected: "_ W F1\n",
		},
		{
			name:     "rock stops plain bomb",
			input:    "B3 R F1\n",
			target:   core.C(0, 0),
			expected: "_ R F1\n",
		},
		{
			name:     "piercing bomb passes rock",
			input:    "S3 R F1\n",
			target:   core.C(0, 0),
			expected: "_ R _\n",
		},
		{
			name:     "chain reaction",
			input:    "B1 B1 F1\n",
			target:   core.C(0, 0),
			expected: "_ _ _\n",
		},
		{
			name:     "piercing chain through rock",
			input:    "S2 R B1 F1\n",
			target:   core.C(0, 0),
			expected: "_ R _ _\n",
		},
		{
			name:     "chained blast stopped by rock",
			input:    "B1 B2 R F1\n",
			target:   core.C(0, 0),
			expected: "_ _ R F1\n",
		},
		{
			name:     "single cell grid",
			input:    "B3\n",
			target:   core.C(0, 0),
			expected: "_\n",
		},
		{
			name:     "detour loops back across origin",
			input:    "_ DD _\n_ B3 _\n_ F2 _\n",
			target:   core.C(1, 1),
			expected: "_ DD _\n_ _ _\n_ _ _\n",
		},
		{
			name:     "enemy revisited by one sweep is hit once",
			input:    "DR B10 DD\n_ _ F3\nDU _ DL\n",
			target:   core.C(1, 0),
			expected: "DR _ DD\n_ _ F1\nDU _ DL\n",
		},
		{
			name:     "separate chained sweeps each damage",
			input:    "F2 _ DL\n_ _ _\nB2 _ B4\n",
			target:   core.C(0, 2),
			expected: "_ _ DL\n_ _ _\n_ _ _\n",
		},
		{
			name:     "damage uses health recorded before a nested chain",
			input:    "B2 F2 B1\n",
			target:   core.C(0, 0),
			expected: "_ F1 _\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.input)

			result, err := core.ExecuteTurn(g, tc.target)
			if err != nil {
				t.Fatalf("ExecuteTurn failed: %v", err)
			}
			if result.Grid != g {
				t.Error("result should reference the mutated grid")
			}
			if out := g.String(); out != tc.expected {
				t.Errorf("unexpected grid:\ngot:\n%s\nexpected:\n%s", out, tc.expected)
			}
		})
	}
}

func TestExecuteTurnReport(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		target      core.Coord
		detonated   []core.Coord
		hits, kills int
	}{
		{
			name:      "single bomb",
			input:     "B1 F1\nW _\n",
			target:    core.C(0, 0),
			detonated: []core.Coord{core.C(0, 0)},
			hits:      1,
			kills:     1,
		},
		{
			name:      "chain reaction",
			input:     "B1 B1 F1\n",
			target:    core.C(0, 0),
			detonated: []core.Coord{core.C(0, 0), core.C(1, 0)},
			hits:      1,
			kills:     1,
		},
		{
			name:      "two sweeps over one enemy",
			input:     "_ DD _\n_ B3 _\n_ F2 _\n",
			target:    core.C(1, 1),
			detonated: []core.Coord{core.C(1, 1)},
			hits:      2,
			kills:     1,
		},
		{
			name:      "chain hits in up-down-left-right order",
			input:     "_ B1 _\nB1 B1 B1\n_ B1 _\n",
			target:    core.C(1, 1),
			detonated: []core.Coord{core.C(1, 1), core.C(1, 0), core.C(1, 2), core.C(0, 1), core.C(2, 1)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.input)

			result, err := core.ExecuteTurn(g, tc.target)
			if err != nil {
				t.Fatalf("ExecuteTurn failed: %v", err)
			}

			if result.Detonations() != len(tc.detonated) {
				t.Fatalf("expected %d detonations, got %v", len(tc.detonated), result.Detonated)
			}
			for i, c := range tc.detonated {
				if result.Detonated[i] != c {
					t.Errorf("detonation %d: expected %v, got %v", i, c, result.Detonated[i])
				}
			}
			if result.Hits() != tc.hits {
				t.Errorf("expected %d hits, got %d", tc.hits, result.Hits())
			}
			if result.Kills() != tc.kills {
				t.Errorf("expected %d kills, got %d", tc.kills, result.Kills())
			}
		})
	}
}

func TestExecuteTurnRejectsTarget(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		target   core.Coord
		sentinel error
	}{
		{"rock", "R B1\n", core.C(0, 0), core.ErrNotABomb},
		{"empty", "_ B1\n", core.C(0, 0), core.ErrNotABomb},
		{"enemy", "F1 B1\n", core.C(0, 0), core.ErrNotABomb},
		{"detour", "DU B1\n", core.C(0, 0), core.ErrNotABomb},
		{"past right edge", "R B1\n", core.C(2, 0), core.ErrTargetOutOfBounds},
		{"past bottom edge", "R B1\n", core.C(0, 1), core.ErrTargetOutOfBounds},
		{"negative", "R B1\n", core.C(-1, 0), core.ErrTargetOutOfBounds},
		{"far away", "R B1\n", core.C(0, 100), core.ErrTargetOutOfBounds},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.input)
			before := g.Clone()

			result, err := core.ExecuteTurn(g, tc.target)
			if !errors.Is(err, tc.sentinel) {
				t.Fatalf("expected %v, got %v", tc.sentinel, err)
			}
			if !g.Equal(before) {
				t.Errorf("grid should be unchanged, got:\n%s", g)
			}
			if result.Detonations() != 0 {
				t.Errorf("expected no detonations, got %d", result.Detonations())
			}
		})
	}
}

func TestExecuteTurnPiercingBombTarget(t *testing.T) {
	g := mustGrid(t, "F1\nR\nS2\n")

	if _, err := core.ExecuteTurn(g, core.C(0, 2)); err != nil {
		t.Fatalf("ExecuteTurn failed: %v", err)
	}
	if out := g.String(); out != "_\nR\n_\n" {
		t.Errorf("unexpected grid %q", out)
	}
}

func TestExecuteTurnDetourLoopTerminates(t *testing.T) {
	b := core.Bomb(math.MaxInt)
	dr, dd := core.Detour(core.DirRight), core.Detour(core.DirDown)
	du, dl := core.Detour(core.DirUp), core.Detour(core.DirLeft)

	testCases := []struct {
		name     string
		rows     [][]core.Item
		expected string
	}{
		{
			name:     "tight loop",
			rows:     [][]core.Item{{b, dr, dd}, {core.Empty(), du, dl}},
			expected: "_ DR DD\n_ DU DL\n",
		},
		{
			name: "enemy inside loop is hit once",
			rows: [][]core.Item{
				{b, dr, core.Empty(), dd},
				{core.Empty(), du, core.Enemy(3), dl},
			},
			expected: "_ DR _ DD\n_ DU F2 DL\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGrid(tc.rows)
			if err != nil {
				t.Fatalf("NewGrid failed: %v", err)
			}

			done := make(chan error, 1)
			go func() {
				_, err := core.ExecuteTurn(g, core.C(0, 0))
				done <- err
			}()

			select {
			case err := <-done:
				if err != nil {
					t.Fatalf("ExecuteTurn failed: %v", err)
				}
			case <-time.After(3 * time.Second):
				t.Fatal("ExecuteTurn did not finish")
			}

			if out := g.String(); out != tc.expected {
				t.Errorf("expected:\n%s\ngot:\n%s", tc.expected, out)
			}
		})
	}
}
