package game

import (
	"github.com/peterkuimelis/terrafutura/internal/log"
)

// ResourceAt names one resource unit on the card at Pos.
type ResourceAt struct {
	Resource Resource
	Pos      GridPosition
}

// CardTransactionExecutor moves resources between cards of a grid as a single
// all-or-nothing step.
type CardTransactionExecutor struct {
	Logger log.EventLogger
}

// NewCardTransactionExecutor creates an executor. A nil logger discards events.
func NewCardTransactionExecutor(logger log.EventLogger) *CardTransactionExecutor {
	if logger == nil {
		logger = log.Nop{}
	}
	return &CardTransactionExecutor{Logger: logger}
}

// Execute pays inputs from their cards, then places outputs and one pollution
// unit per entry of pollution. Every removal and addition is validated before
// any card is touched; when Execute returns false the grid is unchanged.
func (x *CardTransactionExecutor) Execute(grid CardLookup, inputs, outputs []ResourceAt, pollution []GridPosition) bool {
	if isNilLookup(grid) {
		return false
	}

	toRemove := groupByPosition(inputs)
	toAdd := groupByPosition(outputs)
	for _, pos := range pollution {
		toAdd[pos] = append(toAdd[pos], Pollution)
	}

	removeAt := sortedKeys(toRemove)
	addAt := sortedKeys(toAdd)

	// 1) validate removals (paying resources)
	for _, pos := range removeAt {
		card, ok := grid.Card(pos)
		if !ok {
			x.logger().Log(log.NewTransactionRejectedEvent(pos.String(), "no card to pay from"))
			return false
		}
		if !card.CanGetResources(toRemove[pos]) {
			x.logger().Log(log.NewTransactionRejectedEvent(pos.String(), "cannot pay "+formatResources(toRemove[pos])))
			return false
		}
	}

	// 2) validate additions (gaining resources + pollution)
	for _, pos := range addAt {
		card, ok := grid.Card(pos)
		if !ok {
			x.logger().Log(log.NewTransactionRejectedEvent(pos.String(), "no card to receive"))
			return false
		}
		if !card.CanPutResources(toAdd[pos]) {
			x.logger().Log(log.NewTransactionRejectedEvent(pos.String(), "card is inactive"))
			return false
		}
	}

	// 3) apply: all removals, then all additions
	for _, pos := range removeAt {
		card, _ := grid.Card(pos)
		if err := card.GetResources(toRemove[pos]); err != nil {
			panic(err) // validated above; a failure here means the grid changed underneath us
		}
	}
	for _, pos := range addAt {
		card, _ := grid.Card(pos)
		if err := card.PutResources(toAdd[pos]); err != nil {
			panic(err)
		}
	}

	x.logger().Log(log.NewTransactionEvent(len(inputs), len(outputs), len(pollution)))
	return true
}

func (x *CardTransactionExecutor) logger() log.EventLogger {
	if x.Logger == nil {
		return log.Nop{}
	}
	return x.Logger
}

func groupByPosition(items []ResourceAt) map[GridPosition][]Resource {
	grouped := make(map[GridPosition][]Resource)
	for _, it := range items {
		grouped[it.Pos] = append(grouped[it.Pos], it.Resource)
	}
	return grouped
}

func sortedKeys(m map[GridPosition][]Resource) []GridPosition {
	keys := make([]GridPosition, 0, len(m))
	for pos := range m {
		keys = append(keys, pos)
	}
	sortPositions(keys)
	return keys
}

func flatten(items []ResourceAt) []Resource {
	out := make([]Resource, len(items))
	for i, it := range items {
		out[i] = it.Resource
	}
	return out
}
