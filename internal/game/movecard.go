package game

import (
	"fmt"

	"github.com/peterkuimelis/terrafutura/internal/log"
)

// MoveCard takes the card in a fixed visible pile slot and places it on a grid.
type MoveCard struct {
	cardIndex int
	Player    int
	Logger    log.EventLogger
}

// NewMoveCard selects pile slot cardIndex (1..MaxVisibleCards).
func NewMoveCard(cardIndex int) (*MoveCard, error) {
	if cardIndex < 1 || cardIndex > MaxVisibleCards {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCardIndex, cardIndex)
	}
	return &MoveCard{cardIndex: cardIndex, Player: log.NoPlayer, Logger: log.Nop{}}, nil
}

// Move returns false, changing nothing, when pos is taken or the slot is empty.
func (m *MoveCard) Move(pile *Pile, pos GridPosition, grid CardPlacer) bool {
	if pile == nil || grid == nil {
		return false
	}
	if !grid.CanPutCard(pos) {
		return false
	}
	card, ok := pile.Card(m.cardIndex)
	if !ok {
		return false
	}
	if err := pile.TakeCard(m.cardIndex); err != nil {
		return false
	}
	if err := grid.PutCard(pos, card); err != nil {
		panic(err) // CanPutCard held a moment ago
	}
	if m.Logger != nil {
		m.Logger.Log(log.NewCardMovedEvent(m.Player, card.String(), m.cardIndex, pos.String()))
	}
	return true
}
