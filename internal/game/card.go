package game

import (
	"errors"
	"fmt"
)

// A card tolerates up to MaxPollutionSpaces pollution before it shuts down.
const MaxPollutionSpaces = 3

var (
	ErrInvalidPollutionSpaces = errors.New("pollution spaces out of range")
	ErrInvalidOperation       = errors.New("invalid card operation")
)

// Card is a placed card: the resources sitting on it, its upper and lower
// effects, and how much pollution it can hold while still working.
type Card struct {
	Name string

	resources       []Resource
	upper           *Effect // nil when the card has no upper effect
	lower           *Effect // nil when the card has no lower effect
	pollutionSpaces int
}

// NewCard creates a card. pollutionSpaces must be within [0, MaxPollutionSpaces].
func NewCard(resources []Resource, upper, lower *Effect, pollutionSpaces int) (*Card, error) {
	if pollutionSpaces < 0 || pollutionSpaces > MaxPollutionSpaces {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidPollutionSpaces, pollutionSpaces, MaxPollutionSpaces)
	}
	return &Card{
		resources:       append([]Resource(nil), resources...),
		upper:           copyEffect(upper),
		lower:           copyEffect(lower),
		pollutionSpaces: pollutionSpaces,
	}, nil
}

// MustCard is NewCard that panics on an invalid definition.
func MustCard(resources []Resource, upper, lower *Effect, pollutionSpaces int) *Card {
	c, err := NewCard(resources, upper, lower, pollutionSpaces)
	if err != nil {
		panic(err)
	}
	return c
}

func copyEffect(e *Effect) *Effect {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

func (c *Card) String() string {
	if c == nil {
		return "(empty)"
	}
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("card%s", formatResources(c.resources))
}

// Resources returns a copy of the resources on the card.
func (c *Card) Resources() []Resource {
	return append([]Resource(nil), c.resources...)
}

// PollutionSpaces returns the fixed pollution capacity.
func (c *Card) PollutionSpaces() int {
	return c.pollutionSpaces
}

// PollutionCount returns the number of pollution units on the card.
func (c *Card) PollutionCount() int {
	n := 0
	for _, r := range c.resources {
		if r == Pollution {
			n++
		}
	}
	return n
}

// IsActive reports whether pollution on the card is still within capacity.
func (c *Card) IsActive() bool {
	return c.PollutionCount() <= c.pollutionSpaces
}

// CanGetResources reports whether requested can be paid from this card.
func (c *Card) CanGetResources(requested []Resource) bool {
	if len(requested) == 0 || !c.IsActive() {
		return false
	}
	return Contains(c.resources, requested)
}

// GetResources removes requested from the card. Callers check CanGetResources first.
func (c *Card) GetResources(requested []Resource) error {
	if !c.CanGetResources(requested) {
		return fmt.Errorf("%w: cannot take %s from %s", ErrInvalidOperation, formatResources(requested), c)
	}
	remaining := append([]Resource(nil), c.resources...)
	for _, r := range requested {
		for i, have := range remaining {
			if have == r {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	c.resources = remaining
	return nil
}

// CanPutResources reports whether the card accepts new resources. An inactive
// card accepts nothing, pollution included.
func (c *Card) CanPutResources(offered []Resource) bool {
	return c.IsActive()
}

// PutResources places offered on the card. Pollution pushed over capacity
// deactivates the card.
func (c *Card) PutResources(offered []Resource) error {
	if !c.CanPutResources(offered) {
		return fmt.Errorf("%w: cannot put %s on inactive %s", ErrInvalidOperation, formatResources(offered), c)
	}
	c.resources = append(c.resources, offered...)
	return nil
}

// CheckUpper asks the upper effect whether the activation is legal.
func (c *Card) CheckUpper(input, output []Resource, pollution int) bool {
	return c.check(c.upper, input, output, pollution)
}

// CheckLower asks the lower effect whether the activation is legal.
func (c *Card) CheckLower(input, output []Resource, pollution int) bool {
	return c.check(c.lower, input, output, pollution)
}

func (c *Card) check(effect *Effect, input, output []Resource, pollution int) bool {
	if effect == nil || !c.IsActive() {
		return false
	}
	return effect.Check(input, output, pollution)
}

// HasAssistance reports whether either effect lets another player assist.
func (c *Card) HasAssistance() bool {
	return (c.upper != nil && c.upper.HasAssistance()) || (c.lower != nil && c.lower.HasAssistance())
}

// CardState is the exported snapshot of a card.
type CardState struct {
	Name            string       `json:"name,omitempty"`
	Resources       []string     `json:"resources"`
	Active          bool         `json:"active"`
	Assistance      bool         `json:"assistance"`
	Upper           *EffectState `json:"upper,omitempty"`
	Lower           *EffectState `json:"lower,omitempty"`
	PollutionSpaces int          `json:"pollution_spaces"`
}

// State returns a structured snapshot of the card.
func (c *Card) State() CardState {
	st := CardState{
		Name:            c.Name,
		Resources:       resourceNames(c.resources),
		Active:          c.IsActive(),
		Assistance:      c.HasAssistance(),
		PollutionSpaces: c.pollutionSpaces,
	}
	if c.upper != nil {
		upper := c.upper.State()
		st.Upper = &upper
	}
	if c.lower != nil {
		lower := c.lower.State()
		st.Lower = &lower
	}
	return st
}
