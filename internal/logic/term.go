// Package logic holds the in-memory program description consumed by the
// proof-burden generator: terms, predicates, clauses, lattice declarations
// and their domain types. Values in this package are built once by a loader
// and are read-only afterwards.
package logic

import (
	"fmt"
	"strings"
)

// TermKind enumerates the variants of Term.
type TermKind int

const (
	KindBool TermKind = iota
	KindVariable
	KindConstructor

	termKindCount
)

// TermKinds returns every declared TermKind in declaration order.
func TermKinds() []TermKind {
	kinds := make([]TermKind, 0, termKindCount)
	for k := TermKind(0); k < termKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k TermKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindVariable:
		return "variable"
	case KindConstructor:
		return "constructor"
	default:
		return fmt.Sprintf("TermKind(%d)", int(k))
	}
}

// Term is a first-order term: a Boolean literal, a variable or a nullary
// constructor. Compound constructors are not part of the language.
type Term interface {
	isTerm()
	Kind() TermKind
	String() string
}

// Bool is a Boolean literal.
type Bool struct {
	Value bool
}

func (Bool) isTerm()          {}
func (Bool) Kind() TermKind   { return KindBool }
func (b Bool) String() string { return fmt.Sprintf("%t", b.Value) }

// Variable is a named logic variable. It is unbound unless a substitution
// says otherwise.
type Variable struct {
	Name string
}

func (Variable) isTerm()          {}
func (Variable) Kind() TermKind   { return KindVariable }
func (v Variable) String() string { return v.Name }

// Constructor is a nullary constructor of a lattice's enumerated domain.
type Constructor struct {
	Name string
}

func (Constructor) isTerm()          {}
func (Constructor) Kind() TermKind   { return KindConstructor }
func (c Constructor) String() string { return c.Name }

// Var, Ctor and Lit are shorthands used by loaders and tests.
func Var(name string) Variable     { return Variable{Name: name} }
func Ctor(name string) Constructor { return Constructor{Name: name} }
func Lit(v bool) Bool              { return Bool{Value: v} }

// Predicate is a predicate symbol applied to an ordered argument list.
type Predicate struct {
	Name PredicateSym
	Args []Term
}

// NewPredicate builds a predicate from a symbol name and its arguments.
func NewPredicate(name string, args ...Term) Predicate {
	return Predicate{Name: PredicateSym(name), Args: args}
}

// Arity is the number of arguments.
func (p Predicate) Arity() int { return len(p.Args) }

func (p Predicate) String() string {
	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(args, ", "))
}
