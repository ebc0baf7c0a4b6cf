package game

import (
	"errors"
	"testing"
)

func TestGridPositionRange(t *testing.T) {
	if _, err := NewGridPosition(MinCoord, MaxCoord); err != nil {
		t.Errorf("Expected corner to be valid, got %v", err)
	}
	for _, p := range [][2]int{{MinCoord - 1, 0}, {0, MaxCoord + 1}} {
		if _, err := NewGridPosition(p[0], p[1]); !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("Expected ErrPositionOutOfRange for %v, got %v", p, err)
		}
	}
	if n := len(AllPositions()); n != 25 {
		t.Errorf("Expected 25 positions, got %d", n)
	}
}

func TestGridPutCard(t *testing.T) {
	g := NewGrid()
	pos := MustGridPosition(1, -1)

	if !g.CanPutCard(pos) {
		t.Fatal("Expected empty cell to accept a card")
	}
	if err := g.PutCard(pos, nil); !errors.Is(err, ErrNilCard) {
		t.Errorf("Expected ErrNilCard, got %v", err)
	}
	place(t, g, 1, -1, plainCard("A", nil, 1))
	if g.CanPutCard(pos) {
		t.Error("Expected occupied cell to refuse a card")
	}
	if err := g.PutCard(pos, plainCard("B", nil, 1)); !errors.Is(err, ErrPositionOccupied) {
		t.Errorf("Expected ErrPositionOccupied, got %v", err)
	}
	if c, _ := g.Card(pos); c.Name != "A" {
		t.Errorf("Expected A to stay at %s, got %s", pos, c)
	}
}

func TestGridPositionsSorted(t *testing.T) {
	g := NewGrid()
	place(t, g, 1, 0, plainCard("c", nil, 1))
	place(t, g, -1, 2, plainCard("a", nil, 1))
	place(t, g, -1, -2, plainCard("b", nil, 1))

	want := []GridPosition{{-1, -2}, {-1, 2}, {1, 0}}
	got := g.Positions()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
	st := g.State()
	if len(st.Cards) != 3 || st.Cards[0].Card.Name != "b" {
		t.Errorf("Unexpected grid state %+v", st)
	}
}
