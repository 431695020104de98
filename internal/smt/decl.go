package smt

import "fmt"

// DeclKind enumerates the variants of Declaration.
type DeclKind int

const (
	KindDatatype DeclKind = iota
	KindRelation2
	KindRelation3
	KindAxiom

	declKindCount
)

// DeclKinds returns every declared DeclKind in declaration order.
func DeclKinds() []DeclKind {
	kinds := make([]DeclKind, 0, declKindCount)
	for k := DeclKind(0); k < declKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k DeclKind) String() string {
	switch k {
	case KindDatatype:
		return "datatype"
	case KindRelation2:
		return "relation2"
	case KindRelation3:
		return "relation3"
	case KindAxiom:
		return "axiom"
	default:
		return fmt.Sprintf("DeclKind(%d)", int(k))
	}
}

// Declaration is a top-level unit of the proof burden.
type Declaration interface {
	isDeclaration()
	Kind() DeclKind
}

// Datatype declares an enumeration sort. Variants keep their declared order.
type Datatype struct {
	Sort     string
	Variants []string
}

// Relation2 defines a binary relation over Sort as a Boolean function.
type Relation2 struct {
	Name   string
	Sort   string
	Params [2]string
	Body   Or
}

// Relation3 defines a ternary relation over Sort as a Boolean function.
type Relation3 struct {
	Name   string
	Sort   string
	Params [3]string
	Body   Or
}

// Axiom is a closed Boolean constant, rendered as a nullary define-fun.
type Axiom struct {
	Name string
	Body Formula
}

func (Datatype) isDeclaration()  {}
func (Relation2) isDeclaration() {}
func (Relation3) isDeclaration() {}
func (Axiom) isDeclaration()     {}

func (Datatype) Kind() DeclKind  { return KindDatatype }
func (Relation2) Kind() DeclKind { return KindRelation2 }
func (Relation3) Kind() DeclKind { return KindRelation3 }
func (Axiom) Kind() DeclKind     { return KindAxiom }
