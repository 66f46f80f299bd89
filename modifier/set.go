package modifier

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownModifier is returned when a key does not decode to a modifier
var ErrUnknownModifier = errors.New("unknown modifier")

// Set is an immutable collection of modifiers, unique by key and ordered by key
// The zero value is an empty set
type Set struct {
	items []Modifier
}

// NewSet builds a set, later duplicates by key are dropped
func NewSet(mods ...Modifier) Set {
	return Set{}.With(mods...)
}

// With returns a set that also contains mods
func (s Set) With(mods ...Modifier) Set {
	if len(mods) == 0 {
		return s
	}
	items := slices.Clone(s.items)
	for _, m := range mods {
		if m == nil {
			continue
		}
		key := m.Key()
		idx, found := slices.BinarySearchFunc(items, key, func(e Modifier, k string) int {
			return strings.Compare(e.Key(), k)
		})
		if found {
			continue
		}
		items = slices.Insert(items, idx, m)
	}
	return Set{items: items}
}

// Without returns a set with mods removed
func (s Set) Without(mods ...Modifier) Set {
	if len(mods) == 0 || len(s.items) == 0 {
		return s
	}
	items := slices.DeleteFunc(slices.Clone(s.items), func(e Modifier) bool {
		key := e.Key()
		for _, m := range mods {
			if m != nil && m.Key() == key {
				return true
			}
		}
		return false
	})
	return Set{items: items}
}

// Union merges two sets
func (s Set) Union(other Set) Set {
	return s.With(other.items...)
}

// Contains reports membership by key
func (s Set) Contains(m Modifier) bool {
	if m == nil {
		return false
	}
	return s.Has(m.Key())
}

// Has reports membership of a key
func (s Set) Has(key string) bool {
	_, found := slices.BinarySearchFunc(s.items, key, func(e Modifier, k string) int {
		return strings.Compare(e.Key(), k)
	})
	return found
}

// Find returns the first modifier matching the predicate
func (s Set) Find(match func(Modifier) bool) (Modifier, bool) {
	for _, m := range s.items {
		if match(m) {
			return m, true
		}
	}
	return nil, false
}

func (s Set) Len() int { return len(s.items) }

func (s Set) IsEmpty() bool { return len(s.items) == 0 }

// List returns the members in key order
func (s Set) List() []Modifier {
	return slices.Clone(s.items)
}

// Key is the joined member keys, equal sets produce equal keys
func (s Set) Key() string {
	if len(s.items) == 0 {
		return ""
	}
	keys := make([]string, len(s.items))
	for i, m := range s.items {
		keys[i] = m.Key()
	}
	return strings.Join(keys, "|")
}

// Equal compares sets by key
func (s Set) Equal(other Set) bool {
	return s.Key() == other.Key()
}

// Parse decodes a single modifier key produced by Key()
func Parse(key string) (Modifier, error) {
	if s, ok := SimpleByKey(key); ok {
		return s, nil
	}

	parts := strings.Split(key, ":")
	switch parts[0] {
	case "border":
		if len(parts) < 2 {
			break
		}
		bt, ok := ParseBorderType(parts[1])
		if !ok {
			break
		}
		positions := make([]BorderPosition, 0, len(parts)-2)
		for _, p := range parts[2:] {
			bp, ok := ParseBorderPosition(p)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownModifier, key)
			}
			positions = append(positions, bp)
		}
		return NewBorder(bt, positions...), nil

	case "ray-shade":
		if len(parts) != 5 {
			break
		}
		var vals [3]float64
		for i := range vals {
			v, err := strconv.ParseFloat(parts[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrUnknownModifier, key, err)
			}
			vals[i] = v
		}
		raysOnly, err := strconv.ParseBool(parts[4])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownModifier, key, err)
		}
		return &RayShade{Opacity: vals[0], Threshold: vals[1], Strength: vals[2], RaysOnly: raysOnly}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownModifier, key)
}
