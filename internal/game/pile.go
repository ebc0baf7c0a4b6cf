package game

import (
	"errors"
	"fmt"
)

// MaxVisibleCards is the size of a pile's face-up row.
const MaxVisibleCards = 4

var ErrInvalidCardIndex = errors.New("invalid pile card index")

// Pile is a face-up row of cards backed by a face-down stack. Visible slots
// are numbered from 1. Draw order is decided by whoever builds the pile.
type Pile struct {
	visible []*Card
	hidden  []*Card // next card to reveal is hidden[0]
}

// NewPile creates a pile and fills the visible row up to MaxVisibleCards.
func NewPile(visible, hidden []*Card) *Pile {
	p := &Pile{
		visible: append([]*Card(nil), visible...),
		hidden:  append([]*Card(nil), hidden...),
	}
	p.refill()
	return p
}

// Card returns the visible card in slot index, if any.
func (p *Pile) Card(index int) (*Card, bool) {
	if index < 1 || index > len(p.visible) {
		return nil, false
	}
	c := p.visible[index-1]
	return c, c != nil
}

// TakeCard removes the visible card in slot index and reveals a replacement.
func (p *Pile) TakeCard(index int) error {
	if index < 1 || index > len(p.visible) {
		return fmt.Errorf("%w: %d", ErrInvalidCardIndex, index)
	}
	p.visible = append(p.visible[:index-1], p.visible[index:]...)
	p.refill()
	return nil
}

// RemoveLastCard discards the last visible card, if any, and reveals a replacement.
func (p *Pile) RemoveLastCard() {
	if len(p.visible) == 0 {
		return
	}
	p.visible = p.visible[:len(p.visible)-1]
	p.refill()
}

// VisibleCount returns the number of face-up cards.
func (p *Pile) VisibleCount() int {
	return len(p.visible)
}

// HiddenCount returns the number of face-down cards.
func (p *Pile) HiddenCount() int {
	return len(p.hidden)
}

func (p *Pile) refill() {
	for len(p.visible) < MaxVisibleCards && len(p.hidden) > 0 {
		p.visible = append(p.visible, p.hidden[0])
		p.hidden = p.hidden[1:]
	}
}

// PileState is the exported snapshot of a pile. Hidden cards are only counted.
type PileState struct {
	Visible []CardState `json:"visible"`
	Hidden  int         `json:"hidden"`
}

// State returns a structured snapshot of the pile.
func (p *Pile) State() PileState {
	st := PileState{Visible: []CardState{}, Hidden: len(p.hidden)}
	for _, c := range p.visible {
		st.Visible = append(st.Visible, c.State())
	}
	return st
}
