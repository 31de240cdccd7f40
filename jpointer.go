// Package jpointer reads and modifies values deep inside in-memory documents
// addressed by JSON-Pointer-like paths.
//
// A document is a tree of mappings (D or map[string]any), sequences (A or
// []any) and scalars. Paths use "/" as separator with "~1" and "~0" escaping
// "/" and "~". Two tokens extend plain pointers: the wildcard ("*") matches
// every element of a sequence, and the append token ("-") as the final
// fragment of a write pushes onto a sequence.
//
// None of the operations fail. Absent paths read as nil and writes or deletes
// that cannot be applied are skipped.
//
// Set and Delete modify the document in place and return its root, which
// must be used in place of the argument when the root is a D or A value that
// may have grown or shrunk. Passing a *D, *A or *any root updates the
// pointed-to value as well.
package jpointer

import "slices"

// Get returns the value at p. Absent paths return nil. A wildcard produces an
// A holding one read per matched element.
func (p *Pointer) Get(doc any) any {
	return p.resolve(deref(doc), p.fragments).read()
}

// Exists reports whether p resolves to a present value; a stored nil counts
// as present. With a wildcard it reports whether any matched element has the
// remaining path.
func (p *Pointer) Exists(doc any) bool {
	return p.resolve(deref(doc), p.fragments).exists()
}

// Set writes value at p, creating missing intermediate mappings, and reports
// whether anything was written.
//
// The final fragment decides how the value lands. Under a mapping it assigns
// the key. Under a sequence an index inserts before that position and the
// wildcard overwrites every element. The append token pushes onto the
// sequence named by the previous fragment, creating it if absent. A wildcard
// earlier in the path writes the rest of the path into every element.
func (p *Pointer) Set(doc, value any) (any, bool) {
	var written bool
	doc = update(doc, func(root any) any {
		root, written = p.set(root, value)
		return root
	})
	return doc, written
}

// Delete removes the value at p and reports whether anything was removed.
// Deleting through a wildcard removes every element of the sequence, or the
// remaining path from every matched element. Removing a D entry or a
// sequence element builds a new slice, so a D or A passed by value keeps its
// old contents.
func (p *Pointer) Delete(doc any) (any, bool) {
	var deleted bool
	doc = update(doc, func(root any) any {
		root, deleted = p.delete(root)
		return root
	})
	return doc, deleted
}

// Get returns the value at path in doc.
func Get(doc any, path string, opts ...Option) any {
	return New(path, opts...).Get(doc)
}

// Exists reports whether path resolves in doc.
func Exists(doc any, path string, opts ...Option) bool {
	return New(path, opts...).Exists(doc)
}

// Set writes value at path in doc.
func Set(doc any, path string, value any, opts ...Option) (any, bool) {
	return New(path, opts...).Set(doc, value)
}

// Delete removes the value at path in doc.
func Delete(doc any, path string, opts ...Option) (any, bool) {
	return New(path, opts...).Delete(doc)
}

func (p *Pointer) set(root, value any) (any, bool) {
	n := len(p.fragments)
	if n == 0 {
		p.skipped("write at document root")
		return root, false
	}
	last := p.fragments[n-1]
	if last == p.cfg.Append {
		return p.push(root, value)
	}

	var written bool
	root = p.walk(root, p.fragments[:n-1], true, func(parent any) any {
		switch kindOf(parent) {
		case mappingKind:
			written = true
			return store(parent, p.key(last), value)
		case sequenceKind:
			es := elems(parent)
			if last == p.cfg.Wildcard {
				for i := range es {
					es[i] = value
				}
				written = written || len(es) > 0
				return parent
			}
			i, ok := p.index(last)
			if !ok {
				return parent
			}
			written = true
			return withElems(parent, slices.Insert(slices.Clip(grow(es, i)), i, value))
		}
		p.skipped("parent is not a container")
		return parent
	})
	return root, written
}

// push handles writes whose final fragment is the append token.
func (p *Pointer) push(root, value any) (any, bool) {
	n := len(p.fragments)
	if n == 1 {
		if kindOf(root) != sequenceKind {
			p.skipped("append target is not a sequence")
			return root, false
		}
		return withElems(root, append(slices.Clip(elems(root)), value)), true
	}

	var written bool
	slot := p.fragments[n-2]
	root = p.walk(root, p.fragments[:n-2], true, func(parent any) any {
		return p.child(parent, slot, func(v any, ok bool) (any, bool) {
			switch {
			case !ok || v == nil:
				written = true
				return A{value}, true
			case kindOf(v) == sequenceKind:
				written = true
				return withElems(v, append(slices.Clip(elems(v)), value)), true
			}
			p.skipped("append target is not a sequence")
			return nil, false
		})
	})
	return root, written
}

func (p *Pointer) delete(root any) (any, bool) {
	n := len(p.fragments)
	if n == 0 {
		p.skipped("delete at document root")
		return root, false
	}
	last := p.fragments[n-1]

	var deleted bool
	root = p.walk(root, p.fragments[:n-1], false, func(parent any) any {
		switch kindOf(parent) {
		case mappingKind:
			key := p.key(last)
			if _, ok := lookup(parent, key); ok {
				deleted = true
				return remove(parent, key)
			}
		case sequenceKind:
			es := elems(parent)
			if last == p.cfg.Wildcard {
				deleted = deleted || len(es) > 0
				return withElems(parent, []any{})
			}
			if i, ok := p.index(last); ok && i < len(es) {
				deleted = true
				return withElems(parent, without(es, i))
			}
		}
		return parent
	})
	return root, deleted
}

func (p *Pointer) skipped(reason string) {
	p.cfg.Logger.Debug("write skipped", "pointer", p.raw, "reason", reason)
}

func deref(doc any) any {
	switch d := doc.(type) {
	case *D:
		return *d
	case *A:
		return *d
	case *any:
		return *d
	}
	return doc
}

// update runs op on the root of doc and stores the result back through
// pointer roots.
func update(doc any, op func(root any) any) any {
	switch d := doc.(type) {
	case *D:
		if nd, ok := op(*d).(D); ok {
			*d = nd
		}
		return d
	case *A:
		if nd, ok := op(*d).(A); ok {
			*d = nd
		}
		return d
	case *any:
		*d = op(*d)
		return d
	}
	return op(doc)
}
