package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseItem parses a single cell token.
//
// Grammar:
//
//	_     empty
//	W     wall
//	R     rock
//	F<n>  enemy with health n, 1 <= n <= 3
//	B<n>  bomb with reach n >= 1
//	S<n>  piercing bomb with reach n >= 1
//	D<c>  detour, c in {U, D, L, R}
func ParseItem(token string) (Item, error) {
	switch token {
	case "_":
		return Empty(), nil
	case "W":
		return Wall(), nil
	case "R":
		return Rock(), nil
	}

	if token == "" {
		return Item{}, newError(CodeMalformedToken, "empty token")
	}

	prefix, payload := token[0], token[1:]
	switch prefix {
	case 'D':
		d, ok := ParseDir(payload)
		if !ok {
			return Item{}, newError(CodeInvalidDetour, "invalid detour direction in %q", token)
		}
		return Detour(d), nil

	case 'F':
		health, err := parsePositive(token, payload)
		if err != nil {
			return Item{}, err
		}
		if health > MaxEnemyHealth {
			return Item{}, newError(CodeHealthOutOfRange,
				"enemy health %d in %q exceeds %d", health, token, MaxEnemyHealth)
		}
		return Enemy(health), nil

	case 'B':
		reach, err := parsePositive(token, payload)
		if err != nil {
			return Item{}, err
		}
		return Bomb(reach), nil

	case 'S':
		reach, err := parsePositive(token, payload)
		if err != nil {
			return Item{}, err
		}
		return PiercingBomb(reach), nil
	}

	return Item{}, newError(CodeMalformedToken, "invalid token %q", token)
}

// MaxPayload is the largest health or reach a token may carry (32-bit unsigned).
const MaxPayload = math.MaxUint32

// parsePositive parses a health/reach payload that must be > 0 and fit in
// 32 bits unsigned.
func parsePositive(token, payload string) (int, error) {
	n, err := strconv.ParseInt(payload, 10, 64)
	if err != nil || n > MaxPayload {
		return 0, newError(CodeMalformedToken, "cannot read health/reach in %q", token)
	}
	if n <= 0 {
		return 0, newError(CodeNonPositive, "health/reach in %q must be greater than zero", token)
	}
	return int(n), nil
}

// ParseGrid parses the text grid format: one row per line, cells separated
// by whitespace. A single trailing newline does not produce an empty row.
func ParseGrid(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]Item, 0, len(lines))
	for y, line := range lines {
		tokens := strings.Fields(line)
		row := make([]Item, 0, len(tokens))
		for x, token := range tokens {
			it, err := ParseItem(token)
			if err != nil {
				var e *Error
				if !errors.As(err, &e) {
					return nil, fmt.Errorf("row %d, column %d: %w", y+1, x+1, err)
				}
				return nil, newError(e.Code, "row %d, column %d: %s", y+1, x+1, e.Message)
			}
			row = append(row, it)
		}
		rows = append(rows, row)
	}

	return NewGrid(rows)
}

// FormatGrid renders the grid in the text format: tokens joined by a single
// space, with a newline after every row including the last.
func FormatGrid(g *Grid) string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.At(C(x, y)).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String returns the grid in the text format.
func (g *Grid) String() string {
	return FormatGrid(g)
}
