package game

import (
	"errors"

	"github.com/peterkuimelis/terrafutura/internal/log"
)

var ErrEmptyPattern = errors.New("scoring pattern cannot be empty")

// Points is a score value.
type Points struct {
	Value int
}

// ScoreBreakdown explains a calculated total.
type ScoreBreakdown struct {
	Totals       map[Resource]int // units counted per resource; Pollution counts polluted cards
	Base         int
	Combinations int
	Bonus        int
	Total        int
}

// ScoringMethod is an end-of-game scoring card: the base value of everything
// on the grid plus a bonus for each complete set of Pattern.
type ScoringMethod struct {
	pattern        []Resource
	perCombination Points
	grid           CardLookup
	Logger         log.EventLogger

	calculated *ScoreBreakdown
}

// NewScoringMethod creates a scoring method over grid.
func NewScoringMethod(pattern []Resource, perCombination Points, grid CardLookup) (*ScoringMethod, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if isNilLookup(grid) {
		return nil, ErrNilGrid
	}
	return &ScoringMethod{
		pattern:        append([]Resource(nil), pattern...),
		perCombination: perCombination,
		grid:           grid,
		Logger:         log.Nop{},
	}, nil
}

// Pattern returns the resource set rewarded by this method.
func (s *ScoringMethod) Pattern() []Resource {
	return append([]Resource(nil), s.pattern...)
}

// PointsPerCombination returns the bonus per complete pattern.
func (s *ScoringMethod) PointsPerCombination() Points {
	return s.perCombination
}

// SelectThisMethodAndCalculate scores the grid and caches the result.
// Calling it again recalculates from the current grid.
func (s *ScoringMethod) SelectThisMethodAndCalculate() Points {
	totals := make(map[Resource]int, len(AllResources))
	for _, r := range AllResources {
		totals[r] = 0
	}

	for _, pos := range AllPositions() {
		card, ok := s.grid.Card(pos)
		if !ok || card == nil {
			continue
		}
		// an inactive card counts as one pollution and nothing else
		if !card.IsActive() {
			totals[Pollution]++
			continue
		}
		polluted := false
		for _, r := range card.resources {
			if r == Pollution {
				polluted = true
				continue
			}
			totals[r]++
		}
		if polluted {
			totals[Pollution]++
		}
	}

	base := 0
	for r, n := range totals {
		base += r.Points() * n
	}

	combinations := countCombinations(totals, s.pattern)
	b := &ScoreBreakdown{
		Totals:       totals,
		Base:         base,
		Combinations: combinations,
		Bonus:        combinations * s.perCombination.Value,
	}
	b.Total = b.Base + b.Bonus
	s.calculated = b

	if s.Logger != nil {
		s.Logger.Log(log.NewScoringEvent(resourceNames(s.pattern), b.Base, b.Combinations, b.Total))
	}
	return Points{Value: b.Total}
}

// countCombinations returns how many whole copies of pattern fit in totals.
func countCombinations(totals map[Resource]int, pattern []Resource) int {
	remaining := make(map[Resource]int, len(totals))
	for r, n := range totals {
		remaining[r] = n
	}
	combinations := 0
	for {
		for _, r := range pattern {
			if remaining[r] <= 0 {
				return combinations
			}
			remaining[r]--
		}
		combinations++
	}
}

// CalculatedTotal returns the cached total once calculated.
func (s *ScoringMethod) CalculatedTotal() (Points, bool) {
	if s.calculated == nil {
		return Points{}, false
	}
	return Points{Value: s.calculated.Total}, true
}

// Breakdown returns the details of the last calculation.
func (s *ScoringMethod) Breakdown() (ScoreBreakdown, bool) {
	if s.calculated == nil {
		return ScoreBreakdown{}, false
	}
	return *s.calculated, true
}

// ScoringState is the exported snapshot of a scoring method.
type ScoringState struct {
	Resources            []string `json:"resources"`
	PointsPerCombination int      `json:"points_per_combination"`
	CalculatedTotal      *int     `json:"calculated_total,omitempty"`
}

// State returns a structured snapshot; CalculatedTotal is set only after calculation.
func (s *ScoringMethod) State() ScoringState {
	st := ScoringState{
		Resources:            resourceNames(s.pattern),
		PointsPerCombination: s.perCombination.Value,
	}
	if total, ok := s.CalculatedTotal(); ok {
		v := total.Value
		st.CalculatedTotal = &v
	}
	return st
}
