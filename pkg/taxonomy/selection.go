package taxonomy

import "slices"

// Selection is the flat ordered set of selected taxonomy keys. It may hold
// the All sentinel, bare top level type names and "Type - Subtype" keys.
// Checkbox render state is derived from membership, never stored.
type Selection []string

// DefaultSelection is the unrestricted state.
func DefaultSelection() Selection {
	return Selection{All}
}

func (s Selection) Contains(key string) bool {
	return slices.Contains(s, key)
}

// IsAll reports whether the selection is the unrestricted sentinel state.
func (s Selection) IsAll() bool {
	return len(s) == 1 && s[0] == All
}

func (s *Selection) add(key string) {
	if !s.Contains(key) {
		*s = append(*s, key)
	}
}

func (s *Selection) remove(key string) {
	if i := slices.Index(*s, key); i >= 0 {
		*s = slices.Delete(*s, i, i+1)
	}
}

// ToggleAll flips the sentinel: selecting All clears everything else,
// deselecting it empties the selection.
func (s *Selection) ToggleAll() {
	if s.Contains(All) {
		*s = Selection{}
		return
	}
	*s = Selection{All}
}

// fullyChecked reports whether a type renders as checked: directly present,
// or all of its subtypes present.
func (s Selection) fullyChecked(typeName string) bool {
	if s.Contains(typeName) {
		return true
	}
	subs := Subtypes(typeName)
	if len(subs) == 0 {
		return false
	}
	for _, sub := range subs {
		if !s.Contains(Key(typeName, sub)) {
			return false
		}
	}
	return true
}

// ToggleType checks or unchecks a whole type. Checking adds the bare type
// key plus every subtype key; unchecking removes all of them. The All
// sentinel is cleared first in both directions.
func (s *Selection) ToggleType(typeName string) {
	s.remove(All)
	subs := Subtypes(typeName)
	if s.fullyChecked(typeName) {
		s.remove(typeName)
		for _, sub := range subs {
			s.remove(Key(typeName, sub))
		}
		return
	}
	s.add(typeName)
	for _, sub := range subs {
		s.add(Key(typeName, sub))
	}
}

// ToggleSubtype checks or unchecks one subtype key. Checking the last
// missing subtype rolls the bare type key up; unchecking any subtype rolls
// it back down.
func (s *Selection) ToggleSubtype(typeName, subtype string, checked bool) {
	s.remove(All)
	key := Key(typeName, subtype)
	if checked {
		s.add(key)
		all := true
		for _, sub := range Subtypes(typeName) {
			if !s.Contains(Key(typeName, sub)) {
				all = false
				break
			}
		}
		if all {
			s.add(typeName)
		}
		return
	}
	s.remove(key)
	s.remove(typeName)
}

// State is the derived render state of a type checkbox.
type State struct {
	Checked       bool
	Indeterminate bool
}

// TypeState derives the tri-state checkbox condition for a top level type.
// A type without subtypes is plain membership and never indeterminate.
func (s Selection) TypeState(typeName string) State {
	subs := Subtypes(typeName)
	if len(subs) == 0 {
		return State{Checked: s.Contains(typeName)}
	}
	count := 0
	for _, sub := range subs {
		if s.Contains(Key(typeName, sub)) {
			count++
		}
	}
	if count == len(subs) || s.Contains(typeName) {
		return State{Checked: true}
	}
	return State{Indeterminate: count > 0}
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	return slices.Clone(s)
}
