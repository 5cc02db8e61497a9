package core

// HitEvent records damage applied to one enemy by one sweep.
type HitEvent struct {
	Coord  Coord
	Before int // Health recorded when the sweep passed the cell
	After  int // 0 means the enemy was removed
}

// TurnResult contains information about what happened during a detonation.
type TurnResult struct {
	Grid      *Grid
	Detonated []Coord    // Bombs in the order they went off
	HitEvents []HitEvent // One entry per enemy per sweep
}

// Detonations returns how many bombs went off.
func (r TurnResult) Detonations() int {
	return len(r.Detonated)
}

// Hits returns how many times an enemy took damage.
func (r TurnResult) Hits() int {
	return len(r.HitEvents)
}

// Kills returns how many hits removed an enemy.
func (r TurnResult) Kills() int {
	kills := 0
	for _, h := range r.HitEvents {
		if h.After == 0 {
			kills++
		}
	}
	return kills
}

// ExecuteTurn detonates the bomb at target and runs the full chain reaction,
// mutating g in place.
//
// The target must be in bounds and hold a Bomb or PiercingBomb; otherwise the
// grid is left untouched. If a failure happens mid-chain, the grid keeps the
// state reached so far and the returned result describes that partial work.
func ExecuteTurn(g *Grid, target Coord) (TurnResult, error) {
	if !g.InBounds(target) {
		w, h := g.Dimensions()
		return TurnResult{Grid: g}, newError(CodeTargetOutOfBounds,
			"target %s is outside the %dx%d grid", target, w, h)
	}
	if it := g.At(target); !it.IsBomb() {
		return TurnResult{Grid: g}, newError(CodeNotABomb,
			"target %s holds %s, not a bomb", target, it.Kind)
	}

	d := &detonator{grid: g}
	err := d.detonate(target)
	d.result.Grid = g
	return d.result, err
}

// detonator carries the grid and the event log through one recursive chain.
type detonator struct {
	grid   *Grid
	result TurnResult
}

// detonate clears the bomb at p and sweeps its blast in all four directions.
// Clearing first guarantees a bomb never re-triggers itself.
func (d *detonator) detonate(p Coord) error {
	reach, piercing, ok := d.grid.At(p).Blast()
	if !ok {
		return newError(CodeInternal, "chain reached %s which holds no bomb", p)
	}
	d.grid.Set(p, Empty())
	d.result.Detonated = append(d.result.Detonated, p)

	for _, dir := range BlastOrder {
		if err := d.spreadBurst(p, dir, piercing, reach); err != nil {
			return err
		}
	}
	return nil
}

// sweepState is a position and heading within one sweep.
type sweepState struct {
	at  Coord
	dir Dir
}

// spreadBurst traces one ray from origin for reach+1 cells (the origin is
// step 0). Enemies are damaged at most once per sweep, after the scan ends.
func (d *detonator) spreadBurst(origin Coord, dir Dir, piercing bool, reach int) error {
	current := origin
	pending := make(map[Coord]int)
	order := make([]Coord, 0)
	visited := make(map[sweepState]bool)

	for step := 0; step <= reach; step++ {
		// A repeated (cell, heading) pair can only replay what was already seen.
		state := sweepState{at: current, dir: dir}
		if visited[state] {
			break
		}
		visited[state] = true

		it := d.grid.At(current)
		stop := false

		switch it.Kind {
		case KindWall:
			stop = true
		case KindRock:
			stop = !piercing
		case KindBomb, KindPiercingBomb:
			if err := d.detonate(current); err != nil {
				return err
			}
			stop = true
		case KindDetour:
			dir = it.Direction()
		case KindEnemy:
			if _, seen := pending[current]; !seen {
				pending[current] = it.Health()
				order = append(order, current)
			}
		}
		if stop {
			break
		}

		next := current.Step(dir)
		if !d.grid.InBounds(next) {
			break
		}
		current = next
	}

	for _, c := range order {
		health := pending[c] - 1
		if health <= 0 {
			d.grid.Set(c, Empty())
		} else {
			d.grid.Set(c, Enemy(health))
		}
		d.result.HitEvents = append(d.result.HitEvents, HitEvent{
			Coord:  c,
			Before: pending[c],
			After:  health,
		})
	}
	return nil
}
