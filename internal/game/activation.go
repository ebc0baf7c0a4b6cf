package game

import (
	"github.com/peterkuimelis/terrafutura/internal/log"
)

// ProcessAction activates a card's upper effect for a single player: the
// effect judges the resources involved, then the executor moves them.
type ProcessAction struct {
	executor *CardTransactionExecutor
	Player   int
	Logger   log.EventLogger
}

// NewProcessAction wraps executor. A nil executor gets a default one that shares no logger.
func NewProcessAction(executor *CardTransactionExecutor) *ProcessAction {
	if executor == nil {
		executor = NewCardTransactionExecutor(nil)
	}
	return &ProcessAction{executor: executor, Player: log.NoPlayer, Logger: executor.Logger}
}

// ActivateCard returns true only if the card's effect accepts the activation
// and the transaction was applied to grid.
func (p *ProcessAction) ActivateCard(card *Card, grid CardLookup, inputs, outputs []ResourceAt, pollution []GridPosition) bool {
	if card == nil || isNilLookup(grid) {
		return false
	}
	return activate(p.executor, p.logger(), p.Player, card, grid, inputs, outputs, pollution)
}

func (p *ProcessAction) logger() log.EventLogger {
	if p.Logger == nil {
		return log.Nop{}
	}
	return p.Logger
}

// ProcessActionAssistance is ProcessAction for cards whose effect may be
// assisted by another player's card.
type ProcessActionAssistance struct {
	executor *CardTransactionExecutor
	Player   int
	Logger   log.EventLogger
}

// NewProcessActionAssistance wraps executor. A nil executor gets a default one.
func NewProcessActionAssistance(executor *CardTransactionExecutor) *ProcessActionAssistance {
	if executor == nil {
		executor = NewCardTransactionExecutor(nil)
	}
	return &ProcessActionAssistance{executor: executor, Player: log.NoPlayer, Logger: executor.Logger}
}

// ActivateCard behaves like ProcessAction.ActivateCard, but a card with
// assistance additionally requires a valid assisting player and card.
// The assisting card only gates the activation; its resources are not part
// of the transaction.
func (p *ProcessActionAssistance) ActivateCard(card *Card, grid CardLookup, assistingPlayer int, assistingCard *Card, inputs, outputs []ResourceAt, pollution []GridPosition) bool {
	if card == nil || isNilLookup(grid) {
		return false
	}
	if card.HasAssistance() && (assistingPlayer < 0 || assistingCard == nil) {
		p.logger().Log(log.NewActivationRejectedEvent(p.Player, card.String(), "assistance requires an assisting player and card"))
		return false
	}
	return activate(p.executor, p.logger(), p.Player, card, grid, inputs, outputs, pollution)
}

func (p *ProcessActionAssistance) logger() log.EventLogger {
	if p.Logger == nil {
		return log.Nop{}
	}
	return p.Logger
}

func activate(executor *CardTransactionExecutor, logger log.EventLogger, player int, card *Card, grid CardLookup, inputs, outputs []ResourceAt, pollution []GridPosition) bool {
	in := flatten(inputs)
	out := flatten(outputs)

	// check if the card effect allows this activation
	if !card.CheckUpper(in, out, len(pollution)) {
		reason := "effect does not match"
		if !card.IsActive() {
			reason = "card is inactive"
		}
		logger.Log(log.NewActivationRejectedEvent(player, card.String(), reason))
		return false
	}

	if !executor.Execute(grid, inputs, outputs, pollution) {
		logger.Log(log.NewActivationRejectedEvent(player, card.String(), "transaction failed"))
		return false
	}
	logger.Log(log.NewActivateEvent(player, card.String(), resourceNames(in), resourceNames(out), len(pollution)))
	return true
}
