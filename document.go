package jpointer

import "slices"

// D represents a document, defined as an ordered collection of key-value pairs.
// Each entry in the document is represented by an E.
type D []E

// A represents an array, defined as a slice of values of any type.
type A []any

// E represents a single entry in a document. It consists of a string key and an
// associated value of any type.
type E struct {
	Key   string
	Value any
}

func (d D) index(key string) int {
	for i := range d {
		if d[i].Key == key {
			return i
		}
	}
	return -1
}

// Lookup returns the value stored under key and whether the key is present.
// A present key holding nil reports (nil, true).
func (d D) Lookup(key string) (any, bool) {
	if i := d.index(key); i >= 0 {
		return d[i].Value, true
	}
	return nil, false
}

// Set overwrites the value of an existing key in place or appends a new
// entry. The returned document must be used, as with append. A new entry
// never lands in spare capacity shared with another D.
func (d D) Set(key string, v any) D {
	if i := d.index(key); i >= 0 {
		d[i].Value = v
		return d
	}
	return append(slices.Clip(d), E{Key: key, Value: v})
}

// Delete removes key, preserving the order of the remaining entries. The
// result is a fresh slice; d itself is left unchanged.
func (d D) Delete(key string) D {
	if i := d.index(key); i >= 0 {
		return without(d, i)
	}
	return d
}

// Keys returns the keys of d in order.
func (d D) Keys() []string {
	keys := make([]string, len(d))
	for i := range d {
		keys[i] = d[i].Key
	}
	return keys
}

type kind uint8

const (
	scalarKind kind = iota
	mappingKind
	sequenceKind
)

func kindOf(v any) kind {
	switch v.(type) {
	case D, map[string]any:
		return mappingKind
	case A, []any:
		return sequenceKind
	default:
		return scalarKind
	}
}

// lookup reads key from a mapping node.
func lookup(m any, key string) (any, bool) {
	switch m := m.(type) {
	case D:
		return m.Lookup(key)
	case map[string]any:
		v, ok := m[key]
		return v, ok
	}
	return nil, false
}

// store writes key into a mapping node and returns the node to put back in
// its parent.
func store(m any, key string, v any) any {
	switch m := m.(type) {
	case D:
		return m.Set(key, v)
	case map[string]any:
		m[key] = v
		return m
	}
	return m
}

func remove(m any, key string) any {
	switch m := m.(type) {
	case D:
		return m.Delete(key)
	case map[string]any:
		delete(m, key)
		return m
	}
	return m
}

// elems exposes the elements of a sequence node. A and []any share their
// backing array, so element assignment is visible through the node passed in.
func elems(s any) []any {
	switch s := s.(type) {
	case A:
		return s
	case []any:
		return s
	}
	return nil
}

// without returns s minus element i in a new backing array.
func without[S ~[]T, T any](s S, i int) S {
	return append(s[:i:i], s[i+1:]...)
}

// grow returns es extended to length n with nils, never reusing spare
// capacity that another node may share.
func grow(es []any, n int) []any {
	if n <= len(es) {
		return es
	}
	return append(slices.Clip(es), make([]any, n-len(es))...)
}

// withElems returns es typed like the sequence node s.
func withElems(s any, es []any) any {
	if _, ok := s.(A); ok {
		return A(es)
	}
	return es
}
