// Package view turns engine snapshots into the JSON documents handed to
// players, tools and observers.
package view

import (
	"encoding/json"

	"github.com/peterkuimelis/terrafutura/internal/game"
	"github.com/peterkuimelis/terrafutura/internal/log"
)

// GridView is a player's grid, one entry per placed card.
type GridView struct {
	Cards []PositionedCard `json:"cards"`
}

// PositionedCard is a card snapshot with its cell.
type PositionedCard struct {
	X    int            `json:"x"`
	Y    int            `json:"y"`
	Card game.CardState `json:"card"`
}

// EventView is an engine event as shown to clients.
type EventView struct {
	Seq      int    `json:"seq"`
	Player   int    `json:"player"`
	Type     string `json:"type"`
	Position string `json:"position,omitempty"`
	Card     string `json:"card,omitempty"`
	Details  string `json:"details"`
}

// SessionView is everything a player sees of one session.
type SessionView struct {
	SessionID string              `json:"session_id"`
	Grid      GridView            `json:"grid"`
	Pile      *game.PileState     `json:"pile,omitempty"`
	Scoring   []game.ScoringState `json:"scoring"`
	Events    []EventView         `json:"events,omitempty"`
}

// BuildGridView snapshots every card on g.
func BuildGridView(g *game.Grid) GridView {
	v := GridView{Cards: []PositionedCard{}}
	if g == nil {
		return v
	}
	for _, pc := range g.State().Cards {
		v.Cards = append(v.Cards, PositionedCard{X: pc.X, Y: pc.Y, Card: pc.Card})
	}
	return v
}

// BuildEventViews converts logged events.
func BuildEventViews(events []log.GameEvent) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			Seq:      e.Seq,
			Player:   e.Player,
			Type:     e.Type.String(),
			Position: e.Position,
			Card:     e.Card,
			Details:  e.Details,
		})
	}
	return views
}

// BuildSessionView assembles a full session snapshot. pile may be nil.
func BuildSessionView(sessionID string, g *game.Grid, pile *game.Pile, scoring []*game.ScoringMethod, events []log.GameEvent) SessionView {
	v := SessionView{
		SessionID: sessionID,
		Grid:      BuildGridView(g),
		Scoring:   []game.ScoringState{},
	}
	if pile != nil {
		st := pile.State()
		v.Pile = &st
	}
	for _, s := range scoring {
		v.Scoring = append(v.Scoring, s.State())
	}
	if len(events) > 0 {
		v.Events = BuildEventViews(events)
	}
	return v
}

// Marshal encodes a view as indented JSON.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// PlayerStates encodes one session view per player, ready for GameObserver.NotifyAll.
func PlayerStates(views map[int]SessionView) (map[int]string, error) {
	states := make(map[int]string, len(views))
	for id, v := range views {
		b, err := Marshal(v)
		if err != nil {
			return nil, err
		}
		states[id] = string(b)
	}
	return states, nil
}
