package logic

import "fmt"

// LatticeSym names a declared lattice. It doubles as the sort name in the
// emitted proof burden.
type LatticeSym string

// PredicateSym names a relation defined by clauses.
type PredicateSym string

func (s LatticeSym) String() string   { return string(s) }
func (s PredicateSym) String() string { return string(s) }

// Symbol is any of the symbol kinds above.
type Symbol interface {
	LatticeSym | PredicateSym
}

// SymbolName maps a symbol of any kind to its textual name.
func SymbolName[S Symbol](s S) string {
	switch v := any(s).(type) {
	case LatticeSym:
		return string(v)
	case PredicateSym:
		return string(v)
	default:
		panic(fmt.Sprintf("logic: unhandled symbol kind %T", s))
	}
}
