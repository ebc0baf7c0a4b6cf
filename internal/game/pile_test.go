package game

import (
	"errors"
	"testing"

	"github.com/peterkuimelis/terrafutura/internal/log"
)

func namedCards(names ...string) []*Card {
	cards := make([]*Card, len(names))
	for i, n := range names {
		cards[i] = plainCard(n, nil, 1)
	}
	return cards
}

func TestPileFillsVisibleRow(t *testing.T) {
	p := NewPile(namedCards("a", "b"), namedCards("c", "d", "e"))
	if p.VisibleCount() != MaxVisibleCards {
		t.Errorf("Expected %d visible, got %d", MaxVisibleCards, p.VisibleCount())
	}
	if p.HiddenCount() != 1 {
		t.Errorf("Expected 1 hidden, got %d", p.HiddenCount())
	}
	if c, _ := p.Card(4); c.Name != "d" {
		t.Errorf("Expected slot 4 to be d, got %s", c)
	}
}

func TestPileTakeCardRefills(t *testing.T) {
	p := NewPile(namedCards("a", "b", "c", "d"), namedCards("e"))

	if err := p.TakeCard(2); err != nil {
		t.Fatalf("TakeCard: %v", err)
	}
	var names []string
	for i := 1; i <= p.VisibleCount(); i++ {
		c, _ := p.Card(i)
		names = append(names, c.Name)
	}
	want := []string{"a", "c", "d", "e"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, names)
		}
	}
	if p.HiddenCount() != 0 {
		t.Errorf("Expected hidden stack to be empty, got %d", p.HiddenCount())
	}
}

func TestPileIndexBounds(t *testing.T) {
	p := NewPile(namedCards("a"), nil)
	for _, i := range []int{0, 2, -1} {
		if _, ok := p.Card(i); ok {
			t.Errorf("Expected no card at %d", i)
		}
		if err := p.TakeCard(i); !errors.Is(err, ErrInvalidCardIndex) {
			t.Errorf("Expected ErrInvalidCardIndex at %d, got %v", i, err)
		}
	}
}

func TestPileRemoveLastCard(t *testing.T) {
	p := NewPile(namedCards("a", "b"), nil)
	p.RemoveLastCard()
	if p.VisibleCount() != 1 {
		t.Fatalf("Expected 1 visible, got %d", p.VisibleCount())
	}
	p.RemoveLastCard()
	p.RemoveLastCard()
	if p.VisibleCount() != 0 {
		t.Errorf("Expected empty pile, got %d", p.VisibleCount())
	}
}

func TestPileState(t *testing.T) {
	p := NewPile(namedCards("a"), nil)
	st := p.State()
	if len(st.Visible) != 1 || st.Visible[0].Name != "a" || st.Hidden != 0 {
		t.Errorf("Unexpected state %+v", st)
	}
}

func TestMoveCard(t *testing.T) {
	p := NewPile(namedCards("a", "b"), namedCards("hidden"))
	g := NewGrid()
	logger := log.NewMemoryLogger()

	m, err := NewMoveCard(2)
	if err != nil {
		t.Fatalf("NewMoveCard: %v", err)
	}
	m.Player = 1
	m.Logger = logger

	if !m.Move(p, MustGridPosition(0, 0), g) {
		t.Fatal("Expected move to succeed")
	}
	c, ok := g.Card(MustGridPosition(0, 0))
	if !ok || c.Name != "b" {
		t.Fatalf("Expected b at (0,0), got %v", c)
	}
	if first, _ := p.Card(1); first.Name != "a" {
		t.Errorf("Expected slot 1 to still be a, got %s", first)
	}
	if second, _ := p.Card(2); second.Name == "b" {
		t.Error("Expected b to have left the pile")
	}

	moved := logger.EventsOfType(log.EventCardMoved)
	if len(moved) != 1 || moved[0].Player != 1 || moved[0].Position != "(0,0)" {
		t.Errorf("Unexpected move events %+v", moved)
	}
}

func TestMoveCardOccupied(t *testing.T) {
	p := NewPile(namedCards("a", "b"), nil)
	g := NewGrid()
	place(t, g, 0, 0, plainCard("Start", nil, 1))

	m, _ := NewMoveCard(1)
	if m.Move(p, MustGridPosition(0, 0), g) {
		t.Fatal("Expected move onto an occupied cell to fail")
	}
	if p.VisibleCount() != 2 {
		t.Errorf("Expected pile untouched, got %d visible", p.VisibleCount())
	}
}

func TestMoveCardEmptySlot(t *testing.T) {
	p := NewPile(namedCards("a"), nil)
	m, _ := NewMoveCard(3)
	if m.Move(p, MustGridPosition(1, 1), NewGrid()) {
		t.Error("Expected move from an empty slot to fail")
	}
}

func TestNewMoveCardRange(t *testing.T) {
	for _, i := range []int{0, MaxVisibleCards + 1} {
		if _, err := NewMoveCard(i); !errors.Is(err, ErrInvalidCardIndex) {
			t.Errorf("Expected ErrInvalidCardIndex for %d, got %v", i, err)
		}
	}
}
