// Package mangle reads lattice clauses written in Google Mangle (Datalog)
// syntax and converts them into the logic model. It is the clause side of
// the program loader; the core never sees Mangle AST values.
package mangle

import (
	"fmt"
	"strings"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	"github.com/google/mangle/parse"

	"latticeproof/internal/logic"
)

// Options controls clause loading.
type Options struct {
	// Analyze runs Mangle's semantic analysis (safety, stratification,
	// arity consistency) on the source before conversion.
	Analyze bool
}

// ClauseError identifies the clause that could not be converted.
type ClauseError struct {
	Clause  string
	Message string
}

func (e ClauseError) Error() string {
	return fmt.Sprintf("clause %s: %s", e.Clause, e.Message)
}

// ParseClauses parses Mangle source and converts every clause, keeping
// source order. Declarations in the source are ignored.
func ParseClauses(src string, opts Options) ([]logic.Clause, error) {
	unit, err := parse.Unit(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("mangle parse failed: %w", err)
	}
	if opts.Analyze {
		if _, err := analysis.AnalyzeOneUnit(unit, nil); err != nil {
			return nil, fmt.Errorf("mangle analysis failed: %w", err)
		}
	}

	clauses := make([]logic.Clause, 0, len(unit.Clauses))
	for _, c := range unit.Clauses {
		converted, err := ConvertClause(c)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, converted)
	}
	return clauses, nil
}

// ConvertClause converts one Mangle clause. Head arguments must be
// variables, name constants or /true and /false. Body premises are kept so
// the clause counts as a rule; their arguments are converted leniently.
func ConvertClause(c ast.Clause) (logic.Clause, error) {
	head, err := convertHead(c.Head)
	if err != nil {
		return logic.Clause{}, ClauseError{Clause: c.String(), Message: err.Error()}
	}

	var body []logic.Predicate
	for _, premise := range c.Premises {
		body = append(body, convertPremise(premise))
	}
	if c.Transform != nil {
		body = append(body, logic.NewPredicate(":transform"))
	}
	return logic.Clause{Head: head, Body: body}, nil
}

// wildcard is Mangle's anonymous variable.
const wildcard = "_"

// convertHead converts the head atom. Every wildcard becomes a distinct
// variable (_0, _1, ...) so that two wildcards never unify with each other.
func convertHead(a ast.Atom) (logic.Predicate, error) {
	args := make([]logic.Term, 0, len(a.Args))
	fresh := 0
	for i, arg := range a.Args {
		t, err := ConvertTerm(arg)
		if err != nil {
			return logic.Predicate{}, fmt.Errorf("argument %d: %w", i, err)
		}
		if v, ok := t.(logic.Variable); ok && v.Name == wildcard {
			t = logic.Var(fmt.Sprintf("%s%d", wildcard, fresh))
			fresh++
		}
		args = append(args, t)
	}
	return logic.Predicate{Name: logic.PredicateSym(a.Predicate.Symbol), Args: args}, nil
}

func convertPremise(t ast.Term) logic.Predicate {
	switch p := t.(type) {
	case ast.Atom:
		return lenientAtom(p.Predicate.Symbol, p.Args)
	case ast.NegAtom:
		return lenientAtom("!"+p.Atom.Predicate.Symbol, p.Atom.Args)
	case ast.Eq:
		return lenientAtom(":eq", []ast.BaseTerm{p.Left, p.Right})
	case ast.Ineq:
		return lenientAtom(":neq", []ast.BaseTerm{p.Left, p.Right})
	default:
		return logic.NewPredicate(":opaque", logic.Ctor(t.String()))
	}
}

func lenientAtom(name string, args []ast.BaseTerm) logic.Predicate {
	terms := make([]logic.Term, 0, len(args))
	for _, arg := range args {
		t, err := ConvertTerm(arg)
		if err != nil {
			t = logic.Ctor(arg.String())
		}
		terms = append(terms, t)
	}
	return logic.Predicate{Name: logic.PredicateSym(name), Args: terms}
}

// ConvertTerm converts a Mangle base term. /true and /false become Boolean
// literals, other name constants become constructors without their leading
// slash, and variables keep their name.
func ConvertTerm(t ast.BaseTerm) (logic.Term, error) {
	switch v := t.(type) {
	case ast.Variable:
		return logic.Var(v.Symbol), nil
	case ast.Constant:
		if v.Type != ast.NameType {
			return nil, fmt.Errorf("unsupported constant %s: only name constants are allowed", v.String())
		}
		switch v.Symbol {
		case ast.TrueConstant.Symbol:
			return logic.Lit(true), nil
		case ast.FalseConstant.Symbol:
			return logic.Lit(false), nil
		}
		return logic.Ctor(strings.TrimPrefix(v.Symbol, "/")), nil
	default:
		return nil, fmt.Errorf("unsupported term %s: compound terms are not allowed", t.String())
	}
}

// ToBaseTerm is the inverse of ConvertTerm.
func ToBaseTerm(t logic.Term) ast.BaseTerm {
	switch v := t.(type) {
	case logic.Bool:
		if v.Value {
			return ast.TrueConstant
		}
		return ast.FalseConstant
	case logic.Variable:
		return ast.Variable{Symbol: v.Name}
	case logic.Constructor:
		return ast.Constant{Type: ast.NameType, Symbol: "/" + v.Name}
	default:
		panic(fmt.Sprintf("mangle: unhandled term %T", t))
	}
}
