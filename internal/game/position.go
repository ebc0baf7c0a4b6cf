package game

import (
	"errors"
	"fmt"
)

// Grid coordinates are bounded on both axes (inclusive).
const (
	MinCoord = -2
	MaxCoord = 2
)

var ErrPositionOutOfRange = errors.New("grid position out of range")

// GridPosition identifies a cell of a player's grid. Comparable, so it can be used as a map key.
type GridPosition struct {
	X int
	Y int
}

// NewGridPosition validates both coordinates against [MinCoord, MaxCoord].
func NewGridPosition(x, y int) (GridPosition, error) {
	if x < MinCoord || x > MaxCoord || y < MinCoord || y > MaxCoord {
		return GridPosition{}, fmt.Errorf("%w: (%d,%d) not in [%d, %d]", ErrPositionOutOfRange, x, y, MinCoord, MaxCoord)
	}
	return GridPosition{X: x, Y: y}, nil
}

// MustGridPosition is NewGridPosition that panics on invalid coordinates.
func MustGridPosition(x, y int) GridPosition {
	pos, err := NewGridPosition(x, y)
	if err != nil {
		panic(err)
	}
	return pos
}

func (p GridPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Less orders positions x-major, then y.
func (p GridPosition) Less(o GridPosition) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// AllPositions enumerates every cell of the grid in x-major order.
func AllPositions() []GridPosition {
	positions := make([]GridPosition, 0, (MaxCoord-MinCoord+1)*(MaxCoord-MinCoord+1))
	for x := MinCoord; x <= MaxCoord; x++ {
		for y := MinCoord; y <= MaxCoord; y++ {
			positions = append(positions, GridPosition{X: x, Y: y})
		}
	}
	return positions
}
