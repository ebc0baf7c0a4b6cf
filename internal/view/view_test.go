package view_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/peterkuimelis/terrafutura/internal/game"
	"github.com/peterkuimelis/terrafutura/internal/log"
	"github.com/peterkuimelis/terrafutura/internal/view"
)

func compile(t *testing.T, name string) *jsonschema.Schema {
	t.Helper()
	p := filepath.Join("..", "..", "schemas", name)
	s, err := jsonschema.Compile(p)
	if err != nil {
		t.Fatalf("compile %s: %v", name, err)
	}
	return s
}

// validate round-trips v through JSON so the schema sees what clients see.
func validate(t *testing.T, s *jsonschema.Schema, v any) {
	t.Helper()
	b, err := view.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := s.Validate(doc); err != nil {
		t.Fatalf("validate: %v\n%s", err, b)
	}
}

func demo(t *testing.T) (*game.Catalog, *game.Grid) {
	t.Helper()
	c, err := game.LoadCatalog(filepath.Join("..", "..", "cards.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	g, err := c.NewGrid("demo")
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return c, g
}

func TestSchemas_Cards(t *testing.T) {
	cardSchema := compile(t, "card.schema.json")
	c, _ := demo(t)
	for _, name := range c.CardNames() {
		card, err := c.NewCard(name)
		if err != nil {
			t.Fatalf("NewCard(%s): %v", name, err)
		}
		validate(t, cardSchema, card.State())
	}
}

func TestSchemas_Grid(t *testing.T) {
	_, g := demo(t)
	v := view.BuildGridView(g)
	if len(v.Cards) != g.Len() {
		t.Fatalf("Expected %d cards, got %d", g.Len(), len(v.Cards))
	}
	validate(t, compile(t, "grid.schema.json"), v)
	validate(t, compile(t, "grid.schema.json"), view.BuildGridView(game.NewGrid()))
}

func TestSchemas_Scoring(t *testing.T) {
	c, g := demo(t)
	schema := compile(t, "scoring.schema.json")
	s, err := c.NewScoringMethod(1, g)
	if err != nil {
		t.Fatalf("NewScoringMethod: %v", err)
	}
	validate(t, schema, s.State())

	s.SelectThisMethodAndCalculate()
	b, _ := view.Marshal(s.State())
	if !strings.Contains(string(b), `"calculated_total": 13`) {
		t.Errorf("Expected calculated_total 13, got %s", b)
	}
	validate(t, schema, s.State())
}

func TestSchemas_Session(t *testing.T) {
	c, g := demo(t)
	pile, err := c.NewPile("I")
	if err != nil {
		t.Fatalf("NewPile: %v", err)
	}
	s, _ := c.NewScoringMethod(2, g)
	logger := log.NewMemoryLogger()
	s.Logger = logger
	s.SelectThisMethodAndCalculate()

	v := view.BuildSessionView("abc", g, pile, []*game.ScoringMethod{s}, logger.Events())
	if len(v.Events) != 1 || v.Events[0].Type != "Scoring" {
		t.Errorf("Expected one Scoring event, got %+v", v.Events)
	}
	validate(t, compile(t, "session.schema.json"), v)
	validate(t, compile(t, "session.schema.json"), view.BuildSessionView("empty", nil, nil, nil, nil))
}

func TestPlayerStates(t *testing.T) {
	_, g := demo(t)
	states, err := view.PlayerStates(map[int]view.SessionView{
		0: view.BuildSessionView("s0", g, nil, nil, nil),
		1: view.BuildSessionView("s1", game.NewGrid(), nil, nil, nil),
	})
	if err != nil {
		t.Fatalf("PlayerStates: %v", err)
	}
	if !strings.Contains(states[0], `"session_id": "s0"`) || !strings.Contains(states[1], `"cards": []`) {
		t.Errorf("Unexpected states %v", states)
	}

	var got []string
	obs := game.NewGameObserver()
	obs.AddObserver(1, game.ObserverFunc(func(s string) { got = append(got, s) }))
	obs.NotifyAll(states)
	if len(got) != 1 || got[0] != states[1] {
		t.Errorf("Expected player 1 to receive its state, got %v", got)
	}
}
