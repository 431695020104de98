// Package unify implements syntactic unification over logic terms and the
// resolution of terms to formulas under a substitution.
package unify

import "latticeproof/internal/logic"

// Binding is one variable-to-term entry of a Subst.
type Binding struct {
	Var  logic.Variable
	Term logic.Term
}

// Subst is an immutable substitution. Bind returns a new Subst and leaves the
// receiver untouched. Bindings iterate in insertion order.
type Subst struct {
	order []Binding
	index map[string]int
}

// Empty returns the empty substitution.
func Empty() Subst {
	return Subst{}
}

// Len is the number of bound variables.
func (s Subst) Len() int { return len(s.order) }

// Lookup returns the term bound to v, if any.
func (s Subst) Lookup(v logic.Variable) (logic.Term, bool) {
	i, ok := s.index[v.Name]
	if !ok {
		return nil, false
	}
	return s.order[i].Term, true
}

// Has reports whether a variable of that name is bound.
func (s Subst) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Bind returns a copy of s extended with v bound to t. Rebinding an already
// bound variable is not allowed and panics.
func (s Subst) Bind(v logic.Variable, t logic.Term) Subst {
	if s.Has(v.Name) {
		panic("unify: rebinding " + v.Name)
	}
	next := Subst{
		order: make([]Binding, len(s.order), len(s.order)+1),
		index: make(map[string]int, len(s.order)+1),
	}
	copy(next.order, s.order)
	for k, i := range s.index {
		next.index[k] = i
	}
	next.index[v.Name] = len(next.order)
	next.order = append(next.order, Binding{Var: v, Term: t})
	return next
}

// Bindings returns the entries in insertion order.
func (s Subst) Bindings() []Binding {
	return append([]Binding(nil), s.order...)
}
