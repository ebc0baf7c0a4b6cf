package game

import (
	"reflect"
	"testing"
)

// res is shorthand for a resource list.
func res(rs ...Resource) []Resource {
	return rs
}

func at(r Resource, x, y int) ResourceAt {
	return ResourceAt{Resource: r, Pos: MustGridPosition(x, y)}
}

// plainCard creates a card with no effects.
func plainCard(name string, resources []Resource, pollutionSpaces int) *Card {
	c := MustCard(resources, nil, nil, pollutionSpaces)
	c.Name = name
	return c
}

// effectCard creates a card whose upper effect is upper.
func effectCard(name string, resources []Resource, upper Effect, pollutionSpaces int) *Card {
	c := MustCard(resources, &upper, nil, pollutionSpaces)
	c.Name = name
	return c
}

func place(t *testing.T, g *Grid, x, y int, c *Card) {
	t.Helper()
	if err := g.PutCard(MustGridPosition(x, y), c); err != nil {
		t.Fatalf("PutCard(%d,%d): %v", x, y, err)
	}
}

// snapshotGrid captures every card's resources for before/after comparisons.
func snapshotGrid(g *Grid) map[GridPosition][]Resource {
	snap := make(map[GridPosition][]Resource)
	for _, pos := range g.Positions() {
		c, _ := g.Card(pos)
		snap[pos] = c.Resources()
	}
	return snap
}

func assertGridUnchanged(t *testing.T, before map[GridPosition][]Resource, g *Grid) {
	t.Helper()
	after := snapshotGrid(g)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Expected grid unchanged\nbefore: %v\nafter:  %v", before, after)
	}
}

func assertResources(t *testing.T, c *Card, want []Resource) {
	t.Helper()
	got := c.Resources()
	if !sameMultiset(got, want) {
		t.Errorf("Expected %s to hold %s, got %s", c, formatResources(want), formatResources(got))
	}
}

func sameMultiset(a, b []Resource) bool {
	return len(a) == len(b) && Contains(a, b)
}
