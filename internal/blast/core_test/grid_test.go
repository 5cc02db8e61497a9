package core_test

import (
	"testing"

	"github.com/vovakirdan/blastgrid/internal/blast/core"
)

func mustGrid(t *testing.T, text string) *core.Grid {
	t.Helper()
	g, err := core.ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid(%q) failed: %v", text, err)
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g, err := core.NewGrid([][]core.Item{
		{core.Bomb(1), core.Enemy(2), core.Wall()},
		{core.Rock(), core.Empty(), core.Detour(core.DirLeft)},
	})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	w, h := g.Dimensions()
	if w != 3 || h != 2 {
		t.Errorf("expected 3x2 grid, got %dx%d", w, h)
	}

	testCases := []struct {
		coord    core.Coord
		expected core.Item
	}{
		{core.C(0, 0), core.Bomb(1)},
		{core.C(1, 0), core.Enemy(2)},
		{core.C(2, 0), core.Wall()},
		{core.C(0, 1), core.Rock()},
		{core.C(1, 1), core.Empty()},
		{core.C(2, 1), core.Detour(core.DirLeft)},
	}

	for _, tc := range testCases {
		if got := g.At(tc.coord); got != tc.expected {
			t.Errorf("At(%v): expected %v, got %v", tc.coord, tc.expected, got)
		}
	}
}

func TestNewGridRejectsBadShapes(t *testing.T) {
	testCases := []struct {
		name string
		rows [][]core.Item
		code core.ErrorCode
	}{
		{"no rows", nil, core.CodeEmptyGrid},
		{"empty row", [][]core.Item{{}}, core.CodeEmptyGrid},
		{"ragged", [][]core.Item{{core.Wall(), core.Wall()}, {core.Wall()}}, core.CodeRaggedGrid},
		{"empty first row", [][]core.Item{{}, {core.Wall()}}, core.CodeRaggedGrid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewGrid(tc.rows)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if code := core.CodeOf(err); code != tc.code {
				t.Errorf("expected code %s, got %s (%v)", tc.code, code, err)
			}
		})
	}
}

func TestGridInBounds(t *testing.T) {
	g := core.NewEmptyGrid(5, 3)

	testCases := []struct {
		coord    core.Coord
		expected bool
	}{
		{core.C(0, 0), true},
		{core.C(4, 2), true},
		{core.C(2, 1), true},
		{core.C(-1, 0), false},
		{core.C(0, -1), false},
		{core.C(5, 0), false},
		{core.C(0, 3), false},
		{core.C(4, 3), false},
		{core.C(5, 2), false},
	}

	for _, tc := range testCases {
		result := g.InBounds(tc.coord)
		if result != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.coord, tc.expected, result)
		}
	}
}

func TestGridInBoundsMatchesDimensions(t *testing.T) {
	g := mustGrid(t, "_ _ _ _\n_ _ _ _\n")
	w, h := g.Dimensions()

	for y := -2; y < h+2; y++ {
		for x := -2; x < w+2; x++ {
			want := x >= 0 && x < w && y >= 0 && y < h
			if got := g.InBounds(core.C(x, y)); got != want {
				t.Errorf("InBounds(%d,%d) = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestGridSetAndAt(t *testing.T) {
	g := core.NewEmptyGrid(3, 3)

	g.Set(core.C(1, 2), core.Enemy(3))
	if got := g.At(core.C(1, 2)); got != core.Enemy(3) {
		t.Errorf("expected F3 at (1,2), got %v", got)
	}

	g.Set(core.C(1, 2), core.Empty())
	if got := g.At(core.C(1, 2)); got.Kind != core.KindEmpty {
		t.Errorf("expected empty cell at (1,2) after clearing, got %v", got)
	}
}

func TestGridClone(t *testing.T) {
	g := mustGrid(t, "B1 F2\nW _\n")
	clone := g.Clone()

	if !g.Equal(clone) {
		t.Error("clone should be equal to original")
	}

	g.Set(core.C(1, 0), core.Empty())

	if clone.At(core.C(1, 0)) != core.Enemy(2) {
		t.Error("clone should not be affected by original modification")
	}
	if g.Equal(clone) {
		t.Error("grids should differ after modifying the original")
	}
}

func TestGridCounts(t *testing.T) {
	g := mustGrid(t, "B1 F2 F3\nS2 R F1\n")

	if n := g.Count(core.KindEnemy); n != 3 {
		t.Errorf("expected 3 enemies, got %d", n)
	}
	if n := g.EnemyHealth(); n != 6 {
		t.Errorf("expected total enemy health 6, got %d", n)
	}

	bombs := g.Bombs()
	if len(bombs) != 2 || bombs[0] != core.C(0, 0) || bombs[1] != core.C(0, 1) {
		t.Errorf("unexpected bomb coords: %v", bombs)
	}
}

func TestCoordStep(t *testing.T) {
	c := core.C(2, 3)

	testCases := []struct {
		dir      core.Dir
		expected core.Coord
	}{
		{core.DirUp, core.C(2, 2)},
		{core.DirDown, core.C(2, 4)},
		{core.DirLeft, core.C(1, 3)},
		{core.DirRight, core.C(3, 3)},
	}

	for _, tc := range testCases {
		if got := c.Step(tc.dir); got != tc.expected {
			t.Errorf("Step(%v): expected %v, got %v", tc.dir, tc.expected, got)
		}
	}
}
