package unify

import (
	"fmt"

	"latticeproof/internal/logic"
	"latticeproof/internal/smt"
)

// Resolve maps a term to its ground formula under s. Bound variables are
// followed recursively; unbound variables become free-variable references.
func Resolve(t logic.Term, s Subst) smt.Formula {
	switch v := t.(type) {
	case logic.Bool:
		if v.Value {
			return smt.True{}
		}
		return smt.False{}
	case logic.Variable:
		bound, ok := s.Lookup(v)
		if !ok {
			return smt.Var{Name: v.Name}
		}
		return Resolve(bound, s)
	case logic.Constructor:
		return smt.Const{Name: v.Name}
	default:
		panic(fmt.Sprintf("unify: unhandled term %T", t))
	}
}

// Walk follows variable bindings in s until it reaches an unbound variable
// or a non-variable term.
func Walk(t logic.Term, s Subst) logic.Term {
	v, ok := t.(logic.Variable)
	if !ok {
		return t
	}
	bound, ok := s.Lookup(v)
	if !ok {
		return t
	}
	return Walk(bound, s)
}
