package unify

import (
	"fmt"

	"latticeproof/internal/logic"
)

// Unify computes a substitution extending s under which t1 and t2 are
// syntactically equal. The boolean is false when no such substitution exists.
//
// When both sides could bind, the variable on the left becomes the key, so
// argument order decides the shape of the result but never its success.
func Unify(t1, t2 logic.Term, s Subst) (Subst, bool) {
	if v, ok := t1.(logic.Variable); ok {
		if bound, ok := s.Lookup(v); ok {
			return Unify(Walk(bound, s), t2, s)
		}
		return bindVar(v, t2, s)
	}
	if v, ok := t2.(logic.Variable); ok {
		if bound, ok := s.Lookup(v); ok {
			return Unify(t1, Walk(bound, s), s)
		}
		return bindVar(v, t1, s)
	}

	switch a := t1.(type) {
	case logic.Bool:
		b, ok := t2.(logic.Bool)
		return s, ok && a.Value == b.Value
	case logic.Constructor:
		b, ok := t2.(logic.Constructor)
		return s, ok && a.Name == b.Name
	default:
		panic(fmt.Sprintf("unify: unhandled term %T", t1))
	}
}

// bindVar binds the unbound variable v to t, unless t already walks to v.
func bindVar(v logic.Variable, t logic.Term, s Subst) (Subst, bool) {
	if w, ok := Walk(t, s).(logic.Variable); ok && w.Name == v.Name {
		return s, true
	}
	return s.Bind(v, t), true
}

// Args unifies two argument lists pairwise, left to right, threading the
// substitution. The first failing pair fails the whole list and no partial
// substitution is returned.
func Args(xs, ys []logic.Term, s Subst) (Subst, bool) {
	if len(xs) != len(ys) {
		return Subst{}, false
	}
	for i := range xs {
		var ok bool
		s, ok = Unify(xs[i], ys[i], s)
		if !ok {
			return Subst{}, false
		}
	}
	return s, true
}

// Predicates unifies two predicates of the same symbol and arity starting
// from the empty substitution.
func Predicates(a, b logic.Predicate) (Subst, bool) {
	if a.Name != b.Name {
		return Empty(), false
	}
	return Args(a.Args, b.Args, Empty())
}
