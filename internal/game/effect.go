package game

import (
	"errors"
	"fmt"
	"strings"
)

// EffectKind selects the rule an Effect applies.
type EffectKind int

const (
	EffectTransformationFixed EffectKind = iota // exact input, exact output
	EffectArbitraryBasic                        // any input of a fixed size, exact output
	EffectOr                                    // any child effect matches
)

func (k EffectKind) String() string {
	switch k {
	case EffectTransformationFixed:
		return "TransformationFixed"
	case EffectArbitraryBasic:
		return "ArbitraryBasic"
	case EffectOr:
		return "EffectOr"
	default:
		return "Unknown"
	}
}

var ErrEmptyEffects = errors.New("effect list cannot be empty")

// Effect is the rule printed on one half of a card. It answers whether a
// proposed input/output/pollution triple is a legal activation and never
// touches card or grid state.
type Effect struct {
	Kind       EffectKind
	From       []Resource // EffectTransformationFixed: required input, in order
	FromCount  int        // EffectArbitraryBasic: required input size
	To         []Resource
	Pollution  int
	Assistance bool
	Effects    []Effect // EffectOr children
}

// TransformationFixed builds an effect that turns exactly from into exactly to.
func TransformationFixed(from, to []Resource, pollution int) Effect {
	return Effect{
		Kind:      EffectTransformationFixed,
		From:      append([]Resource(nil), from...),
		To:        append([]Resource(nil), to...),
		Pollution: pollution,
	}
}

// ArbitraryBasic builds an effect that accepts any count input resources.
func ArbitraryBasic(count int, to []Resource, pollution int) Effect {
	return Effect{
		Kind:      EffectArbitraryBasic,
		FromCount: count,
		To:        append([]Resource(nil), to...),
		Pollution: pollution,
	}
}

// NewEffectOr combines alternatives; at least one child is required.
func NewEffectOr(effects ...Effect) (Effect, error) {
	if len(effects) == 0 {
		return Effect{}, ErrEmptyEffects
	}
	return Effect{
		Kind:    EffectOr,
		Effects: append([]Effect(nil), effects...),
	}, nil
}

// WithAssistance returns a copy of a leaf effect that lets another player assist.
func (e Effect) WithAssistance() Effect {
	e.Assistance = true
	return e
}

// Check reports whether the triple satisfies this effect.
func (e Effect) Check(input, output []Resource, pollution int) bool {
	switch e.Kind {
	case EffectTransformationFixed:
		return sameSequence(input, e.From) && sameSequence(output, e.To) && pollution == e.Pollution
	case EffectArbitraryBasic:
		return len(input) == e.FromCount && sameSequence(output, e.To) && pollution == e.Pollution
	case EffectOr:
		for _, child := range e.Effects {
			if child.Check(input, output, pollution) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// HasAssistance reports whether this effect, or any alternative of it, grants assistance.
func (e Effect) HasAssistance() bool {
	if e.Kind != EffectOr {
		return e.Assistance
	}
	for _, child := range e.Effects {
		if child.HasAssistance() {
			return true
		}
	}
	return false
}

// EffectState is the exported snapshot of an effect.
type EffectState struct {
	Kind       string        `json:"kind" yaml:"kind"`
	From       []string      `json:"from,omitempty" yaml:"from,omitempty"`
	FromCount  int           `json:"from_count,omitempty" yaml:"from_count,omitempty"`
	To         []string      `json:"to,omitempty" yaml:"to,omitempty"`
	Pollution  int           `json:"pollution" yaml:"pollution"`
	Assistance bool          `json:"assistance" yaml:"assistance"`
	Effects    []EffectState `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// State returns a structured snapshot of the effect tree.
func (e Effect) State() EffectState {
	st := EffectState{
		Kind:       e.Kind.String(),
		Pollution:  e.Pollution,
		Assistance: e.HasAssistance(),
	}
	switch e.Kind {
	case EffectTransformationFixed:
		st.From = resourceNames(e.From)
		st.To = resourceNames(e.To)
	case EffectArbitraryBasic:
		st.FromCount = e.FromCount
		st.To = resourceNames(e.To)
	case EffectOr:
		st.Pollution = 0
		for _, child := range e.Effects {
			st.Effects = append(st.Effects, child.State())
		}
	}
	return st
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectTransformationFixed:
		return fmt.Sprintf("TransformationFixed{from=%s, to=%s, pollution=%d}", formatResources(e.From), formatResources(e.To), e.Pollution)
	case EffectArbitraryBasic:
		return fmt.Sprintf("ArbitraryBasic{from=%d, to=%s, pollution=%d}", e.FromCount, formatResources(e.To), e.Pollution)
	case EffectOr:
		parts := make([]string, len(e.Effects))
		for i, child := range e.Effects {
			parts[i] = child.String()
		}
		return fmt.Sprintf("EffectOr{%s}", strings.Join(parts, ", "))
	default:
		return "Unknown"
	}
}
