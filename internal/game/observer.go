package game

import (
	"sort"

	"github.com/peterkuimelis/terrafutura/internal/log"
)

// Observer receives serialized state updates for one player.
type Observer interface {
	Notify(state string)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(state string)

func (f ObserverFunc) Notify(state string) { f(state) }

// GameObserver routes per-player state updates to registered observers.
type GameObserver struct {
	observers map[int]Observer
	Logger    log.EventLogger
}

func NewGameObserver() *GameObserver {
	return &GameObserver{observers: make(map[int]Observer), Logger: log.Nop{}}
}

// AddObserver registers (or replaces) the observer of playerID.
func (g *GameObserver) AddObserver(playerID int, o Observer) {
	if o == nil {
		panic("observer cannot be nil")
	}
	g.observers[playerID] = o
}

// RemoveObserver stops notifications for playerID.
func (g *GameObserver) RemoveObserver(playerID int) {
	delete(g.observers, playerID)
}

// NotifyAll delivers each player's state. Players without an observer are skipped.
func (g *GameObserver) NotifyAll(states map[int]string) {
	ids := make([]int, 0, len(states))
	for id := range states {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		o, ok := g.observers[id]
		if !ok {
			continue
		}
		o.Notify(states[id])
		if g.Logger != nil {
			g.Logger.Log(log.NewNotifyEvent(id))
		}
	}
}
