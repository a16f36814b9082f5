// Package anvil finds the shortest sequence of forging moves that brings an
// anvil gauge from zero to a target value.
//
// Every move shifts the gauge by a fixed delta and the gauge must stay within
// [MinGauge, MaxGauge] after each move. A solve may additionally require the
// sequence to end with a given list of move categories (the "last hits"
// printed on the anvil). The search is a depth-first enumeration in a fixed
// delta order, so results are deterministic for identical inputs.
package anvil

import (
	"errors"
	"fmt"
	"strings"
)

// Delta is a single signed change applied to the gauge by one move.
type Delta int

// Move is a named class of forging moves. Several deltas share the Hit
// category; every other category is produced by exactly one delta.
type Move int

const (
	Hit Move = iota
	Draw
	Punch
	Bend
	Upset
	Shrink
)

var moveNames = [...]string{
	Hit:    "hit",
	Draw:   "draw",
	Punch:  "punch",
	Bend:   "bend",
	Upset:  "upset",
	Shrink: "shrink",
}

// String returns the lowercase name used on the command line.
func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// ErrUnknownMove is returned when a name does not match any Move.
var ErrUnknownMove = errors.New("unknown move")

// catalogEntry keeps the forward mapping in declaration order; the inverse
// lists are derived from it so per-category delta order is stable.
type catalogEntry struct {
	delta Delta
	move  Move
}

var catalog = []catalogEntry{
	{-3, Hit},
	{-6, Hit},
	{-9, Hit},
	{-15, Draw},
	{+2, Punch},
	{+7, Bend},
	{+13, Upset},
	{+16, Shrink},
}

var (
	deltaToMove  = make(map[Delta]Move, len(catalog))
	moveToDeltas = make(map[Move][]Delta, len(moveNames))
)

func init() {
	for _, e := range catalog {
		deltaToMove[e.delta] = e.move
		moveToDeltas[e.move] = append(moveToDeltas[e.move], e.delta)
	}
}

// Move returns the category that d belongs to. Deltas outside the catalog
// report -1.
func (d Delta) Move() Move {
	m, ok := deltaToMove[d]
	if !ok {
		return -1
	}
	return m
}

// Deltas returns the deltas producing m, in catalog order.
func (m Move) Deltas() []Delta {
	ds := moveToDeltas[m]
	out := make([]Delta, len(ds))
	copy(out, ds)
	return out
}

// AllMoves returns every category in declaration order.
func AllMoves() []Move {
	return []Move{Hit, Draw, Punch, Bend, Upset, Shrink}
}

// AllDeltas returns the eight deltas in catalog order.
func AllDeltas() []Delta {
	out := make([]Delta, len(catalog))
	for i, e := range catalog {
		out[i] = e.delta
	}
	return out
}

// ParseMove resolves a category name, ignoring case and surrounding space.
func ParseMove(name string) (Move, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range moveNames {
		if s == n {
			return Move(i), nil
		}
	}
	return -1, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownMove, name, strings.Join(moveNames[:], ", "))
}

// ParseMoves resolves names in order, failing on the first unknown one.
func ParseMoves(names []string) ([]Move, error) {
	moves := make([]Move, 0, len(names))
	for _, name := range names {
		m, err := ParseMove(name)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
