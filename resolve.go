package jpointer

type outcome uint8

const (
	notFound outcome = iota
	found
	fanOut
)

// result is the outcome of resolving fragments against a node. A fanOut
// result carries one sub-result per sequence element, in element order.
type result struct {
	outcome outcome
	value   any
	each    []result
}

// resolve locates the node addressed by fragments without modifying doc.
func (p *Pointer) resolve(node any, fragments []string) result {
	if len(fragments) == 0 {
		return result{outcome: found, value: node}
	}
	fragment, rest := fragments[0], fragments[1:]

	switch kindOf(node) {
	case mappingKind:
		v, ok := lookup(node, p.key(fragment))
		if !ok {
			return result{}
		}
		return p.resolve(v, rest)

	case sequenceKind:
		es := elems(node)
		if fragment == p.cfg.Wildcard {
			if len(es) == 0 {
				return result{}
			}
			each := make([]result, len(es))
			for i, e := range es {
				each[i] = p.resolve(e, rest)
			}
			return result{outcome: fanOut, each: each}
		}
		i, ok := p.index(fragment)
		if !ok || i >= len(es) {
			return result{}
		}
		return p.resolve(es[i], rest)

	default:
		return result{}
	}
}

// read turns a result into a caller-visible value. Not-found degrades to nil
// and a fan-out becomes an A of per-element reads.
func (r result) read() any {
	switch r.outcome {
	case found:
		return r.value
	case fanOut:
		out := make(A, len(r.each))
		for i, sub := range r.each {
			out[i] = sub.read()
		}
		return out
	default:
		return nil
	}
}

func (r result) exists() bool {
	switch r.outcome {
	case found:
		return true
	case fanOut:
		for _, sub := range r.each {
			if sub.exists() {
				return true
			}
		}
	}
	return false
}

// child applies fn to the node addressed by fragment inside container and
// stores fn's result back into the same slot. fn receives the current value
// and whether the slot exists; it returns the replacement and whether to
// store it. The container, possibly reallocated, is returned so the caller
// can put it back into its own parent.
//
// Against a sequence the wildcard visits every element. An index past the
// end is reported as absent and, if stored, pads the sequence with nils.
func (p *Pointer) child(container any, fragment string, fn func(v any, ok bool) (any, bool)) any {
	switch kindOf(container) {
	case mappingKind:
		key := p.key(fragment)
		v, ok := lookup(container, key)
		if nv, keep := fn(v, ok); keep {
			return store(container, key, nv)
		}
		return container

	case sequenceKind:
		es := elems(container)
		if fragment == p.cfg.Wildcard {
			for i, e := range es {
				if nv, keep := fn(e, true); keep {
					es[i] = nv
				}
			}
			return container
		}
		i, ok := p.index(fragment)
		if !ok {
			return container
		}
		if i < len(es) {
			if nv, keep := fn(es[i], true); keep {
				es[i] = nv
			}
			return container
		}
		nv, keep := fn(nil, false)
		if !keep {
			return container
		}
		es = grow(es, i+1)
		es[i] = nv
		return withElems(container, es)

	default:
		return container
	}
}

// walk descends fragments and calls apply with every container reached
// (several under a wildcard), writing the results back up the path. With
// create set, missing or nil slots on the way are filled with a new mapping;
// otherwise the branch is left untouched.
func (p *Pointer) walk(node any, fragments []string, create bool, apply func(target any) any) any {
	if len(fragments) == 0 {
		return apply(node)
	}
	rest := fragments[1:]
	return p.child(node, fragments[0], func(v any, ok bool) (any, bool) {
		if !ok || v == nil {
			if !create {
				return nil, false
			}
			v = p.cfg.NewMapping()
		}
		return p.walk(v, rest, create, apply), true
	})
}
