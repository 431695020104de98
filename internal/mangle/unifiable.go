package mangle

import (
	"github.com/google/mangle/ast"
	"github.com/google/mangle/unionfind"

	"latticeproof/internal/logic"
)

// Unifiable reports whether two predicates unify according to Mangle's own
// union-find unifier. It is an independent check of the synthesizer's
// unifier; only success or failure is compared, never the bindings.
func Unifiable(a, b logic.Predicate) bool {
	if a.Name != b.Name || a.Arity() != b.Arity() {
		return false
	}
	xs := make([]ast.BaseTerm, len(a.Args))
	ys := make([]ast.BaseTerm, len(b.Args))
	for i := range a.Args {
		xs[i] = ToBaseTerm(a.Args[i])
		ys[i] = ToBaseTerm(b.Args[i])
	}
	_, err := unionfind.UnifyTerms(xs, ys)
	return err == nil
}
