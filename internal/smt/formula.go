// Package smt models the proof-burden vocabulary (formulas and declarations)
// and renders it as SMT-LIB style S-expressions.
package smt

import "fmt"

// FormulaKind enumerates the variants of Formula.
type FormulaKind int

const (
	KindTrue FormulaKind = iota
	KindFalse
	KindVar
	KindConst
	KindEq
	KindAnd
	KindOr
	KindImplies
	KindApply
	KindForall

	formulaKindCount
)

// FormulaKinds returns every declared FormulaKind in declaration order.
func FormulaKinds() []FormulaKind {
	kinds := make([]FormulaKind, 0, formulaKindCount)
	for k := FormulaKind(0); k < formulaKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k FormulaKind) String() string {
	switch k {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindVar:
		return "var"
	case KindConst:
		return "const"
	case KindEq:
		return "eq"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindImplies:
		return "implies"
	case KindApply:
		return "apply"
	case KindForall:
		return "forall"
	default:
		return fmt.Sprintf("FormulaKind(%d)", int(k))
	}
}

// Formula is an immutable formula tree. Two formulas are equivalent when they
// are structurally equal.
type Formula interface {
	isFormula()
	Kind() FormulaKind
}

type (
	// True is the constant true.
	True struct{}

	// False is the constant false.
	False struct{}

	// Var references a free or bound variable by name.
	Var struct {
		Name string
	}

	// Const references a nullary constructor by name.
	Const struct {
		Name string
	}

	// Eq is an equality between two formulas.
	Eq struct {
		Lhs, Rhs Formula
	}

	// And is a conjunction; an empty And is true.
	And struct {
		Args []Formula
	}

	// Or is a disjunction; an empty Or is false.
	Or struct {
		Args []Formula
	}

	// Implies is an implication. The synthesizer does not emit it; the order
	// axioms do.
	Implies struct {
		Lhs, Rhs Formula
	}

	// Apply is a relation or function applied to arguments. An Apply without
	// arguments renders as its bare name.
	Apply struct {
		Name string
		Args []Formula
	}

	// Forall universally quantifies Body over Vars.
	Forall struct {
		Vars []Sorted
		Body Formula
	}
)

// Sorted is a variable name paired with its sort.
type Sorted struct {
	Name string
	Sort string
}

func (True) isFormula()    {}
func (False) isFormula()   {}
func (Var) isFormula()     {}
func (Const) isFormula()   {}
func (Eq) isFormula()      {}
func (And) isFormula()     {}
func (Or) isFormula()      {}
func (Implies) isFormula() {}
func (Apply) isFormula()   {}
func (Forall) isFormula()  {}

func (True) Kind() FormulaKind    { return KindTrue }
func (False) Kind() FormulaKind   { return KindFalse }
func (Var) Kind() FormulaKind     { return KindVar }
func (Const) Kind() FormulaKind   { return KindConst }
func (Eq) Kind() FormulaKind      { return KindEq }
func (And) Kind() FormulaKind     { return KindAnd }
func (Or) Kind() FormulaKind      { return KindOr }
func (Implies) Kind() FormulaKind { return KindImplies }
func (Apply) Kind() FormulaKind   { return KindApply }
func (Forall) Kind() FormulaKind  { return KindForall }

// Conj builds a conjunction.
func Conj(args ...Formula) And { return And{Args: args} }

// Disj builds a disjunction.
func Disj(args ...Formula) Or { return Or{Args: args} }

// Equal builds an equality.
func Equal(lhs, rhs Formula) Eq { return Eq{Lhs: lhs, Rhs: rhs} }

// FreeVars returns the names of variables referenced by f and not bound by an
// enclosing Forall, in first occurrence order and without duplicates.
func FreeVars(f Formula) []string {
	var names []string
	seen := make(map[string]bool)
	bound := make(map[string]int)
	var walk func(Formula)
	walk = func(f Formula) {
		switch t := f.(type) {
		case True, False, Const:
		case Var:
			if bound[t.Name] == 0 && !seen[t.Name] {
				seen[t.Name] = true
				names = append(names, t.Name)
			}
		case Eq:
			walk(t.Lhs)
			walk(t.Rhs)
		case And:
			for _, a := range t.Args {
				walk(a)
			}
		case Or:
			for _, a := range t.Args {
				walk(a)
			}
		case Implies:
			walk(t.Lhs)
			walk(t.Rhs)
		case Apply:
			for _, a := range t.Args {
				walk(a)
			}
		case Forall:
			for _, v := range t.Vars {
				bound[v.Name]++
			}
			walk(t.Body)
			for _, v := range t.Vars {
				bound[v.Name]--
			}
		default:
			panic(fmt.Sprintf("smt: unhandled formula %T", f))
		}
	}
	walk(f)
	return names
}
