package game

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestResourcePoints(t *testing.T) {
	want := map[Resource]int{Green: 1, Red: 1, Yellow: 1, Bulb: 5, Gear: 5, Car: 6, Money: 0, Pollution: -1}
	for r, p := range want {
		if r.Points() != p {
			t.Errorf("Expected %s to be worth %d, got %d", r, p, r.Points())
		}
	}
}

func TestResourceValid(t *testing.T) {
	for _, r := range AllResources {
		if !r.Valid() {
			t.Errorf("Expected %s to be valid", r)
		}
	}
	for _, r := range []Resource{-1, Resource(len(AllResources)), 42} {
		if r.Valid() {
			t.Errorf("Expected Resource(%d) to be invalid", int(r))
		}
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		available, requested []Resource
		want                 bool
	}{
		{res(Green, Green, Red), res(Green, Green), true},
		{res(Green, Red), res(Red, Green), true},
		{res(Green), res(Green, Green), false},
		{res(Green), nil, true},
		{nil, res(Car), false},
	}
	for _, tc := range cases {
		if got := Contains(tc.available, tc.requested); got != tc.want {
			t.Errorf("Contains(%s, %s) = %v, expected %v", formatResources(tc.available), formatResources(tc.requested), got, tc.want)
		}
	}
}

func TestParseResources(t *testing.T) {
	got, err := ParseResources([]string{"green", " CAR ", "Pollution"})
	if err != nil {
		t.Fatalf("ParseResources: %v", err)
	}
	if !sameSequence(got, res(Green, Car, Pollution)) {
		t.Errorf("Expected [GREEN, CAR, POLLUTION], got %s", formatResources(got))
	}
	if _, err := ParseResources([]string{"GREEN", "WOOD"}); err == nil {
		t.Error("Expected unknown resource to fail")
	}
}

func TestResourceYAML(t *testing.T) {
	var rs []Resource
	if err := yaml.Unmarshal([]byte("[BULB, gear]"), &rs); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !sameSequence(rs, res(Bulb, Gear)) {
		t.Errorf("Expected [BULB, GEAR], got %s", formatResources(rs))
	}
	out, err := yaml.Marshal(rs)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "- BULB\n- GEAR\n" {
		t.Errorf("Unexpected YAML %q", out)
	}
}
