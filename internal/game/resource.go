package game

import (
	"fmt"
	"strings"
)

// Resource is a fungible unit placed on cards.
type Resource int

const (
	Green Resource = iota
	Red
	Yellow
	Bulb
	Gear
	Car
	Money
	Pollution
)

// AllResources lists every resource type in declaration order.
var AllResources = []Resource{Green, Red, Yellow, Bulb, Gear, Car, Money, Pollution}

func (r Resource) String() string {
	switch r {
	case Green:
		return "GREEN"
	case Red:
		return "RED"
	case Yellow:
		return "YELLOW"
	case Bulb:
		return "BULB"
	case Gear:
		return "GEAR"
	case Car:
		return "CAR"
	case Money:
		return "MONEY"
	case Pollution:
		return "POLLUTION"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether r is one of AllResources.
func (r Resource) Valid() bool {
	return r >= Green && r <= Pollution
}

// Points returns the score value of a single unit.
func (r Resource) Points() int {
	switch r {
	case Green, Red, Yellow:
		return 1
	case Bulb, Gear:
		return 5
	case Car:
		return 6
	case Pollution:
		return -1
	default:
		return 0
	}
}

// ParseResource resolves a resource tag such as "GREEN" (case-insensitive).
func ParseResource(s string) (Resource, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, r := range AllResources {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", s)
}

// ParseResources resolves a list of resource tags.
func ParseResources(names []string) ([]Resource, error) {
	out := make([]Resource, 0, len(names))
	for _, n := range names {
		r, err := ParseResource(n)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// MarshalYAML / UnmarshalYAML let catalogs spell resources by tag.
func (r Resource) MarshalYAML() (any, error) {
	return r.String(), nil
}

func (r *Resource) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseResource(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// --- Multiset helpers ---

func countResources(resources []Resource) map[Resource]int {
	counts := make(map[Resource]int, len(AllResources))
	for _, r := range resources {
		counts[r]++
	}
	return counts
}

// Contains reports whether requested is a sub-multiset of available: every
// requested unit is matched against a distinct available unit of the same type.
func Contains(available, requested []Resource) bool {
	counts := countResources(available)
	for _, r := range requested {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}

func sameSequence(a, b []Resource) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func resourceNames(resources []Resource) []string {
	names := make([]string, len(resources))
	for i, r := range resources {
		names[i] = r.String()
	}
	return names
}

func formatResources(resources []Resource) string {
	return "[" + strings.Join(resourceNames(resources), ", ") + "]"
}
