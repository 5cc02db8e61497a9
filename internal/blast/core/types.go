// Package core provides the grid model and detonation engine for blastgrid.
// This package is UI-agnostic, deterministic, and performs no I/O.
package core

import "strconv"

// Kind identifies the variant held by a grid cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindWall
	KindRock
	KindEnemy
	KindBomb
	KindPiercingBomb
	KindDetour
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindWall:
		return "Wall"
	case KindRock:
		return "Rock"
	case KindEnemy:
		return "Enemy"
	case KindBomb:
		return "Bomb"
	case KindPiercingBomb:
		return "PiercingBomb"
	case KindDetour:
		return "Detour"
	default:
		return "Unknown"
	}
}

// MaxEnemyHealth is the highest health an enemy may start with.
const MaxEnemyHealth = 3

// Item represents the content of a single grid cell.
// Value holds the payload: health for enemies, reach for bombs,
// and the Dir for detours. It is zero for the other kinds.
type Item struct {
	Kind  Kind
	Value int
}

// Empty returns an empty cell.
func Empty() Item { return Item{Kind: KindEmpty} }

// Wall returns a wall cell.
func Wall() Item { return Item{Kind: KindWall} }

// Rock returns a rock cell.
func Rock() Item { return Item{Kind: KindRock} }

// Enemy returns an enemy cell with the given health.
func Enemy(health int) Item { return Item{Kind: KindEnemy, Value: health} }

// Bomb returns a plain bomb cell with the given reach.
func Bomb(reach int) Item { return Item{Kind: KindBomb, Value: reach} }

// PiercingBomb returns a piercing bomb cell with the given reach.
func PiercingBomb(reach int) Item { return Item{Kind: KindPiercingBomb, Value: reach} }

// Detour returns a detour cell pointing in the given direction.
func Detour(d Dir) Item { return Item{Kind: KindDetour, Value: int(d)} }

// IsBomb reports whether the item is a plain or piercing bomb.
func (it Item) IsBomb() bool {
	return it.Kind == KindBomb || it.Kind == KindPiercingBomb
}

// Blast returns the reach and piercing flag of a bomb item.
// ok is false for any non-bomb item.
func (it Item) Blast() (reach int, piercing bool, ok bool) {
	switch it.Kind {
	case KindBomb:
		return it.Value, false, true
	case KindPiercingBomb:
		return it.Value, true, true
	}
	return 0, false, false
}

// Direction returns the detour direction. Only meaningful for KindDetour.
func (it Item) Direction() Dir {
	return Dir(it.Value)
}

// Health returns the enemy health. Only meaningful for KindEnemy.
func (it Item) Health() int {
	return it.Value
}

// String returns the token form of the item used by the text grid format.
func (it Item) String() string {
	switch it.Kind {
	case KindEmpty:
		return "_"
	case KindWall:
		return "W"
	case KindRock:
		return "R"
	case KindEnemy:
		return "F" + strconv.Itoa(it.Value)
	case KindBomb:
		return "B" + strconv.Itoa(it.Value)
	case KindPiercingBomb:
		return "S" + strconv.Itoa(it.Value)
	case KindDetour:
		return "D" + string(it.Direction().Letter())
	default:
		return "?"
	}
}
