package logic

import "fmt"

// Type is the declared type of a lattice domain.
type Type interface {
	isType()
	TypeName() string
}

// Variant is a sum type. A lattice domain must be a Variant whose
// alternatives are all nullary.
type Variant struct {
	Name         string
	Alternatives []Alternative
}

// Alternative is one constructor of a Variant. Params is empty for a nullary
// constructor.
type Alternative struct {
	Name   string
	Params []Type
}

// Nullary reports whether the alternative takes no arguments.
func (a Alternative) Nullary() bool { return len(a.Params) == 0 }

// Primitive is a built-in scalar type such as bool, int or str.
type Primitive struct {
	Name string
}

func (Variant) isType()              {}
func (v Variant) TypeName() string   { return v.Name }
func (Primitive) isType()            {}
func (p Primitive) TypeName() string { return p.Name }

// Lattice is a user-declared lattice: a domain plus its order and join
// relations.
type Lattice struct {
	Name   LatticeSym
	Domain Type
	Leq    PredicateSym
	Join   PredicateSym
}

// Clause is a head predicate with a possibly empty body. A clause with an
// empty body is a fact.
type Clause struct {
	Head Predicate
	Body []Predicate
}

// IsFact reports whether the clause has an empty body.
func (c Clause) IsFact() bool { return len(c.Body) == 0 }

func (c Clause) String() string {
	if c.IsFact() {
		return c.Head.String() + "."
	}
	s := c.Head.String() + " :- "
	for i, b := range c.Body {
		if i > 0 {
			s += ", "
		}
		s += b.String()
	}
	return s + "."
}

// Program is the complete input: lattices in declaration order and clauses
// in source order.
type Program struct {
	lattices []Lattice
	byName   map[LatticeSym]int
	clauses  []Clause
}

// NewProgram builds a Program. Lattice names must be unique.
func NewProgram(lattices []Lattice, clauses []Clause) (*Program, error) {
	p := &Program{
		lattices: make([]Lattice, 0, len(lattices)),
		byName:   make(map[LatticeSym]int, len(lattices)),
		clauses:  append([]Clause(nil), clauses...),
	}
	for _, l := range lattices {
		if _, dup := p.byName[l.Name]; dup {
			return nil, fmt.Errorf("duplicate lattice %q", l.Name)
		}
		p.byName[l.Name] = len(p.lattices)
		p.lattices = append(p.lattices, l)
	}
	return p, nil
}

// MustNewProgram is NewProgram that panics on error. Intended for tests and
// static fixtures.
func MustNewProgram(lattices []Lattice, clauses []Clause) *Program {
	p, err := NewProgram(lattices, clauses)
	if err != nil {
		panic(err)
	}
	return p
}

// Lattices returns the lattices in declaration order.
func (p *Program) Lattices() []Lattice {
	return append([]Lattice(nil), p.lattices...)
}

// Lattice looks a lattice up by name.
func (p *Program) Lattice(name LatticeSym) (Lattice, bool) {
	i, ok := p.byName[name]
	if !ok {
		return Lattice{}, false
	}
	return p.lattices[i], true
}

// Clauses returns every clause in source order.
func (p *Program) Clauses() []Clause {
	return append([]Clause(nil), p.clauses...)
}

// ClausesFor returns the clauses whose head symbol is sym, in source order.
func (p *Program) ClausesFor(sym PredicateSym) []Clause {
	var out []Clause
	for _, c := range p.clauses {
		if c.Head.Name == sym {
			out = append(out, c)
		}
	}
	return out
}
