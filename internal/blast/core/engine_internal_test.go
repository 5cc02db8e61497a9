package core

import (
	"errors"
	"testing"
)

func TestDetonateNonBombIsInternalError(t *testing.T) {
	testCases := []struct {
		name string
		item Item
	}{
		{"empty", Empty()},
		{"wall", Wall()},
		{"enemy", Enemy(2)},
		{"detour", Detour(DirLeft)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid([][]Item{{tc.item, Enemy(1)}})
			if err != nil {
				t.Fatalf("NewGrid failed: %v", err)
			}
			before := g.Clone()

			d := &detonator{grid: g}
			err = d.detonate(C(0, 0))
			if !errors.Is(err, ErrInternal) {
				t.Fatalf("expected internal error, got %v", err)
			}
			if !g.Equal(before) {
				t.Errorf("grid changed:\n%s", g)
			}
			if len(d.result.Detonated) != 0 {
				t.Errorf("expected no detonations, got %v", d.result.Detonated)
			}
		})
	}
}
