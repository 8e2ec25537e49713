package core

// IsTruthy implements the falsey rule: nil and false are the only
// falsey values; everything else, including 0, "", and empty
// sequences, is truthy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(val)
	default:
		return true
	}
}

// AsSequence returns the elements of a list or vector, or nil for
// Nil{}. ok is false for anything else.
func AsSequence(v Value) (items []Value, ok bool) {
	switch val := v.(type) {
	case *List:
		return val.Items(), true
	case *Vector:
		return val.Items(), true
	case Nil:
		return nil, true
	default:
		return nil, false
	}
}

// sequenceItems returns the elements of a list or vector only; unlike
// AsSequence it does not treat Nil{} as an empty sequence, so nil and
// () compare unequal as MAL requires.
func sequenceItems(v Value) ([]Value, bool) {
	switch val := v.(type) {
	case *List:
		return val.Items(), true
	case *Vector:
		return val.Items(), true
	default:
		return nil, false
	}
}

// IsSequential reports whether v is a list or a vector.
func IsSequential(v Value) bool {
	switch v.(type) {
	case *List, *Vector:
		return true
	default:
		return false
	}
}

// ValuesEqual implements MAL equality: a list and a vector with equal
// elements are equal; hash-maps compare by key/value regardless of
// order; metadata is ignored throughout.
func ValuesEqual(a, b Value) bool {
	aSeq, aIsSeq := sequenceItems(a)
	bSeq, bIsSeq := sequenceItems(b)
	if aIsSeq && bIsSeq {
		if len(aSeq) != len(bSeq) {
			return false
		}
		for i := range aSeq {
			if !ValuesEqual(aSeq[i], bSeq[i]) {
				return false
			}
		}
		return true
	}
	if aIsSeq != bIsSeq {
		return false
	}

	aMap, aIsMap := a.(*HashMap)
	bMap, bIsMap := b.(*HashMap)
	if aIsMap && bIsMap {
		if aMap.Count() != bMap.Count() {
			return false
		}
		for _, k := range aMap.Keys() {
			if !bMap.Has(k) || !ValuesEqual(aMap.Get(k), bMap.Get(k)) {
				return false
			}
		}
		return true
	}
	if aIsMap != bIsMap {
		return false
	}

	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Keyword:
		bv, ok := b.(Keyword)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Nil:
		_, ok := b.(Nil)
		return ok
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && av == bv
	default:
		return a == b
	}
}
