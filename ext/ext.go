// Package ext implements the type-keyed extension storage shared by
// weaver's Request and Response value objects: arbitrary application
// state attached to a request (e.g. an authenticated user, a per-request
// counter) and carried alongside it, keyed by its Go type rather than a
// string the caller has to coordinate.
package ext

import "reflect"

// Map is a type-keyed bag of values. The zero value is ready to use.
type Map struct {
	values map[reflect.Type]any
}

// Set stores value, keyed by its own type. A later Set with the same type
// overwrites the previous value.
func Set[T any](m *Map, value T) {
	if m.values == nil {
		m.values = make(map[reflect.Type]any)
	}
	m.values[reflect.TypeOf(value)] = value
}

// Get retrieves the value of type T, if one was stored.
func Get[T any](m Map) (T, bool) {
	var zero T
	if m.values == nil {
		return zero, false
	}
	v, ok := m.values[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Len reports how many distinct types are stored.
func (m Map) Len() int { return len(m.values) }

// Take moves every value out of m into a fresh Map, leaving m empty. Used
// by the Extensions extractor, which must leave the request's extension
// map empty after consuming it (mirroring the Path extractor's move
// semantics).
func (m *Map) Take() Map {
	taken := Map{values: m.values}
	m.values = nil
	return taken
}

// Merge copies every entry of other into m, overwriting on type conflict.
// This is the "insert if absent, overwrite if present" semantics used by
// Extend[Extensions].
func (m *Map) Merge(other Map) {
	if other.values == nil {
		return
	}
	if m.values == nil {
		m.values = make(map[reflect.Type]any, len(other.values))
	}
	for k, v := range other.values {
		m.values[k] = v
	}
}

// Replace discards m's current contents and adopts other's.
func (m *Map) Replace(other Map) {
	m.values = other.values
}
