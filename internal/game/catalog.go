package game

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownEntry = errors.New("unknown catalog entry")

// CatalogFile represents the top-level YAML structure.
type CatalogFile struct {
	Cards   []CardDef    `yaml:"cards"`
	Scoring []ScoringDef `yaml:"scoring"`
	Piles   []PileDef    `yaml:"piles"`
	Boards  []BoardDef   `yaml:"boards"`
}

// CardDef describes a card template.
type CardDef struct {
	Name            string     `yaml:"name"`
	Resources       []Resource `yaml:"resources"`
	Upper           *EffectDef `yaml:"upper"`
	Lower           *EffectDef `yaml:"lower"`
	PollutionSpaces int        `yaml:"pollution_spaces"`
}

// EffectDef is the YAML form of an Effect tree.
type EffectDef struct {
	Kind       string      `yaml:"kind"`
	From       []Resource  `yaml:"from"`
	FromCount  int         `yaml:"from_count"`
	To         []Resource  `yaml:"to"`
	Pollution  int         `yaml:"pollution"`
	Assistance bool        `yaml:"assistance"`
	Effects    []EffectDef `yaml:"effects"`
}

// ScoringDef describes a scoring card.
type ScoringDef struct {
	Resources            []Resource `yaml:"resources"`
	PointsPerCombination int        `yaml:"points_per_combination"`
}

// PileDef lists card names for a pile; hidden cards are revealed front-first.
type PileDef struct {
	Name    string   `yaml:"name"`
	Visible []string `yaml:"visible"`
	Hidden  []string `yaml:"hidden"`
}

// BoardDef is a pre-built grid, mainly for fixtures and offline scoring.
type BoardDef struct {
	Name  string      `yaml:"name"`
	Cards []PlacedDef `yaml:"cards"`
}

// PlacedDef puts a catalog card on a board. Resources, when present, replace
// the card's starting resources.
type PlacedDef struct {
	X         int        `yaml:"x"`
	Y         int        `yaml:"y"`
	Card      string     `yaml:"card"`
	Resources []Resource `yaml:"resources"`
}

// Catalog is a validated set of card, scoring, pile and board definitions.
type Catalog struct {
	cards   map[string]CardDef
	names   []string
	scoring []ScoringDef
	piles   map[string]PileDef
	boards  map[string]BoardDef
}

// LoadCatalog reads and validates a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog parses and validates YAML catalog data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	c := &Catalog{
		cards:   make(map[string]CardDef),
		scoring: cf.Scoring,
		piles:   make(map[string]PileDef),
		boards:  make(map[string]BoardDef),
	}
	for _, def := range cf.Cards {
		if def.Name == "" {
			return nil, errors.New("card without a name")
		}
		if _, dup := c.cards[def.Name]; dup {
			return nil, fmt.Errorf("duplicate card %q", def.Name)
		}
		if _, err := def.Build(); err != nil {
			return nil, fmt.Errorf("card %q: %w", def.Name, err)
		}
		c.cards[def.Name] = def
		c.names = append(c.names, def.Name)
	}
	for i, def := range cf.Scoring {
		if len(def.Resources) == 0 {
			return nil, fmt.Errorf("scoring %d: %w", i+1, ErrEmptyPattern)
		}
	}
	for _, def := range cf.Piles {
		if _, dup := c.piles[def.Name]; dup {
			return nil, fmt.Errorf("duplicate pile %q", def.Name)
		}
		for _, name := range append(append([]string(nil), def.Visible...), def.Hidden...) {
			if _, ok := c.cards[name]; !ok {
				return nil, fmt.Errorf("pile %q: %w: card %q", def.Name, ErrUnknownEntry, name)
			}
		}
		c.piles[def.Name] = def
	}
	for _, def := range cf.Boards {
		if _, dup := c.boards[def.Name]; dup {
			return nil, fmt.Errorf("duplicate board %q", def.Name)
		}
		c.boards[def.Name] = def
		if _, err := c.NewGrid(def.Name); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// CardNames returns card names in file order.
func (c *Catalog) CardNames() []string {
	return append([]string(nil), c.names...)
}

// ScoringCount returns the number of scoring definitions.
func (c *Catalog) ScoringCount() int {
	return len(c.scoring)
}

// NewCard builds a fresh instance of the named card.
func (c *Catalog) NewCard(name string) (*Card, error) {
	def, ok := c.cards[name]
	if !ok {
		return nil, fmt.Errorf("%w: card %q", ErrUnknownEntry, name)
	}
	return def.Build()
}

// NewPile builds the named pile from fresh card instances.
func (c *Catalog) NewPile(name string) (*Pile, error) {
	def, ok := c.piles[name]
	if !ok {
		return nil, fmt.Errorf("%w: pile %q", ErrUnknownEntry, name)
	}
	visible, err := c.newCards(def.Visible)
	if err != nil {
		return nil, err
	}
	hidden, err := c.newCards(def.Hidden)
	if err != nil {
		return nil, err
	}
	return NewPile(visible, hidden), nil
}

// NewGrid builds the named board.
func (c *Catalog) NewGrid(name string) (*Grid, error) {
	def, ok := c.boards[name]
	if !ok {
		return nil, fmt.Errorf("%w: board %q", ErrUnknownEntry, name)
	}
	grid := NewGrid()
	for _, p := range def.Cards {
		pos, err := NewGridPosition(p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("board %q: %w", name, err)
		}
		card, err := c.NewCard(p.Card)
		if err != nil {
			return nil, fmt.Errorf("board %q: %w", name, err)
		}
		if p.Resources != nil {
			card.resources = append([]Resource(nil), p.Resources...)
		}
		if err := grid.PutCard(pos, card); err != nil {
			return nil, fmt.Errorf("board %q: %w", name, err)
		}
	}
	return grid, nil
}

// NewScoringMethod builds the i-th scoring definition (1-indexed) over grid.
func (c *Catalog) NewScoringMethod(i int, grid CardLookup) (*ScoringMethod, error) {
	if i < 1 || i > len(c.scoring) {
		return nil, fmt.Errorf("%w: scoring %d (have %d)", ErrUnknownEntry, i, len(c.scoring))
	}
	def := c.scoring[i-1]
	return NewScoringMethod(def.Resources, Points{Value: def.PointsPerCombination}, grid)
}

func (c *Catalog) newCards(names []string) ([]*Card, error) {
	cards := make([]*Card, 0, len(names))
	for _, name := range names {
		card, err := c.NewCard(name)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Build creates a card from the definition.
func (d CardDef) Build() (*Card, error) {
	upper, err := d.Upper.effect()
	if err != nil {
		return nil, fmt.Errorf("upper: %w", err)
	}
	lower, err := d.Lower.effect()
	if err != nil {
		return nil, fmt.Errorf("lower: %w", err)
	}
	card, err := NewCard(d.Resources, upper, lower, d.PollutionSpaces)
	if err != nil {
		return nil, err
	}
	card.Name = d.Name
	return card, nil
}

func (d *EffectDef) effect() (*Effect, error) {
	if d == nil {
		return nil, nil
	}
	e, err := d.Build()
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Build creates the Effect tree described by d.
func (d EffectDef) Build() (Effect, error) {
	kind, err := ParseEffectKind(d.Kind)
	if err != nil {
		return Effect{}, err
	}
	if d.Pollution < 0 {
		return Effect{}, fmt.Errorf("negative pollution %d", d.Pollution)
	}
	if d.FromCount < 0 {
		return Effect{}, fmt.Errorf("negative from_count %d", d.FromCount)
	}

	var e Effect
	switch kind {
	case EffectTransformationFixed:
		e = TransformationFixed(d.From, d.To, d.Pollution)
	case EffectArbitraryBasic:
		e = ArbitraryBasic(d.FromCount, d.To, d.Pollution)
	case EffectOr:
		children := make([]Effect, 0, len(d.Effects))
		for _, child := range d.Effects {
			ce, err := child.Build()
			if err != nil {
				return Effect{}, err
			}
			children = append(children, ce)
		}
		// assistance lives on the leaves
		if d.Assistance {
			return Effect{}, errors.New("assistance must be set on an EffectOr alternative, not the EffectOr itself")
		}
		return NewEffectOr(children...)
	}
	if d.Assistance {
		e = e.WithAssistance()
	}
	return e, nil
}

// ParseEffectKind resolves a kind name such as "TransformationFixed" or
// "arbitrary_basic".
func ParseEffectKind(s string) (EffectKind, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for _, k := range []EffectKind{EffectTransformationFixed, EffectArbitraryBasic, EffectOr} {
		if strings.ToLower(k.String()) == norm {
			return k, nil
		}
	}
	if norm == "or" {
		return EffectOr, nil
	}
	return 0, fmt.Errorf("unknown effect kind %q", s)
}
