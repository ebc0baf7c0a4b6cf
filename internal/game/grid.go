package game

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrPositionOccupied = errors.New("grid position already occupied")
	ErrNilCard          = errors.New("card cannot be nil")
	ErrNilGrid          = errors.New("grid cannot be nil")
)

// CardLookup is the read side of a grid used by transactions and scoring.
type CardLookup interface {
	Card(pos GridPosition) (*Card, bool)
}

// isNilLookup reports whether grid is nil, including a nil *Grid behind the interface.
func isNilLookup(grid CardLookup) bool {
	if grid == nil {
		return true
	}
	g, ok := grid.(*Grid)
	return ok && g == nil
}

// CardPlacer is a grid that also accepts new cards.
type CardPlacer interface {
	CardLookup
	CanPutCard(pos GridPosition) bool
	PutCard(pos GridPosition, card *Card) error
}

// Grid holds one player's placed cards, at most one per position.
type Grid struct {
	cards map[GridPosition]*Card
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{cards: make(map[GridPosition]*Card)}
}

// Card returns the card at pos, if any.
func (g *Grid) Card(pos GridPosition) (*Card, bool) {
	if g == nil {
		return nil, false
	}
	c, ok := g.cards[pos]
	return c, ok
}

// CanPutCard reports whether pos is free.
func (g *Grid) CanPutCard(pos GridPosition) bool {
	_, taken := g.cards[pos]
	return !taken
}

// PutCard places card at pos.
func (g *Grid) PutCard(pos GridPosition, card *Card) error {
	if card == nil {
		return ErrNilCard
	}
	if !g.CanPutCard(pos) {
		return fmt.Errorf("%w: %s", ErrPositionOccupied, pos)
	}
	g.cards[pos] = card
	return nil
}

// Len returns the number of placed cards.
func (g *Grid) Len() int {
	return len(g.cards)
}

// Positions returns the occupied positions in x-major order.
func (g *Grid) Positions() []GridPosition {
	positions := make([]GridPosition, 0, len(g.cards))
	for pos := range g.cards {
		positions = append(positions, pos)
	}
	sortPositions(positions)
	return positions
}

func sortPositions(positions []GridPosition) {
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })
}

// PlacedCard pairs a card snapshot with its cell.
type PlacedCard struct {
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Card CardState `json:"card"`
}

// GridState is the exported snapshot of a grid.
type GridState struct {
	Cards []PlacedCard `json:"cards"`
}

// State returns a structured snapshot of every placed card.
func (g *Grid) State() GridState {
	st := GridState{Cards: []PlacedCard{}}
	for _, pos := range g.Positions() {
		st.Cards = append(st.Cards, PlacedCard{X: pos.X, Y: pos.Y, Card: g.cards[pos].State()})
	}
	return st
}
