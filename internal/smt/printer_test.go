package smt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// formulaSamples holds one formula per FormulaKind. Adding a kind without a
// sample fails TestPrinter_CoversEveryFormulaKind.
var formulaSamples = map[FormulaKind]Formula{
	KindTrue:    True{},
	KindFalse:   False{},
	KindVar:     Var{Name: "x0"},
	KindConst:   Const{Name: "bot"},
	KindEq:      Equal(Var{Name: "x0"}, Const{Name: "bot"}),
	KindAnd:     Conj(True{}, False{}),
	KindOr:      Disj(True{}, False{}),
	KindImplies: Implies{Lhs: True{}, Rhs: False{}},
	KindApply:   Apply{Name: "pair", Args: []Formula{Const{Name: "bot"}, Var{Name: "y0"}}},
	KindForall:  Forall{Vars: []Sorted{{Name: "x", Sort: "Sign"}}, Body: Apply{Name: "leq", Args: []Formula{Var{Name: "x"}, Var{Name: "x"}}}},
}

var declSamples = map[DeclKind]Declaration{
	KindDatatype:  Datatype{Sort: "Sign", Variants: []string{"top", "bot"}},
	KindRelation2: Relation2{Name: "leq", Sort: "Sign", Params: [2]string{"x0", "y0"}, Body: Disj(True{})},
	KindRelation3: Relation3{Name: "lub", Sort: "Sign", Params: [3]string{"x0", "y0", "z0"}, Body: Disj()},
	KindAxiom:     Reflexivity("Sign", "leq"),
}

func TestPrinter_CoversEveryFormulaKind(t *testing.T) {
	p := NewPrinter()
	for _, k := range FormulaKinds() {
		f, ok := formulaSamples[k]
		require.Truef(t, ok, "no sample for formula kind %s", k)
		assert.Equal(t, k, f.Kind())
		assert.NotPanics(t, func() { p.Formula(f) }, "kind %s", k)
		assert.NotPanics(t, func() { FreeVars(f) }, "kind %s", k)
	}
}

func TestPrinter_CoversEveryDeclKind(t *testing.T) {
	p := NewPrinter()
	for _, k := range DeclKinds() {
		d, ok := declSamples[k]
		require.Truef(t, ok, "no sample for declaration kind %s", k)
		assert.Equal(t, k, d.Kind())
		assert.NotPanics(t, func() { p.Declaration(d) }, "kind %s", k)
	}
}

func TestPrinter_Atoms(t *testing.T) {
	p := NewPrinter()
	tests := []struct {
		f    Formula
		want string
	}{
		{True{}, "true"},
		{False{}, "false"},
		{Var{Name: "x0"}, "x0"},
		{Const{Name: "top"}, "top"},
		{Equal(Var{Name: "x0"}, Const{Name: "top"}), "(= x0 top)"},
		{Conj(Equal(Var{Name: "x0"}, Const{Name: "bot"}), Equal(Var{Name: "y0"}, Const{Name: "top"})),
			"(and (= x0 bot) (= y0 top))"},
		{Conj(), "(and)"},
		{Disj(), "(or)"},
		{Implies{Lhs: Var{Name: "a"}, Rhs: Var{Name: "b"}}, "(=> a b)"},
		{Apply{Name: "f", Args: []Formula{Var{Name: "a"}}}, "(f a)"},
		{Apply{Name: "nil"}, "nil"},
		{Forall{Vars: []Sorted{{Name: "x", Sort: "S"}, {Name: "y", Sort: "S"}}, Body: True{}}, "(forall ((x S) (y S)) true)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Formula(tt.f))
		})
	}
}

func TestPrinter_DisjunctionIsMultiLine(t *testing.T) {
	p := NewPrinter()
	f := Disj(
		Conj(Equal(Var{Name: "x0"}, Const{Name: "bot"})),
		Disj(True{}, False{}),
	)
	want := "(or\n" +
		"  (and (= x0 bot))\n" +
		"  (or\n" +
		"    true\n" +
		"    false))"
	assert.Equal(t, want, p.Formula(f))

	tab := Printer{Indent: "\t"}
	assert.Equal(t, "(or\n\ttrue)", tab.Formula(Disj(True{})))
}

func TestPrinter_Declarations(t *testing.T) {
	p := NewPrinter()

	assert.Equal(t,
		"(declare-datatypes () ((Sign top pos neg zero bot)))",
		p.Declaration(Datatype{Sort: "Sign", Variants: []string{"top", "pos", "neg", "zero", "bot"}}))

	rel := Relation2{
		Name:   "leq",
		Sort:   "Sign",
		Params: [2]string{"x0", "y0"},
		Body: Disj(
			Conj(Equal(Var{Name: "x0"}, Const{Name: "bot"}), Equal(Var{Name: "y0"}, Const{Name: "top"})),
			True{},
		),
	}
	assert.Equal(t,
		"(define-fun leq ((x0 Sign) (y0 Sign)) Bool (or\n"+
			"  (and (= x0 bot) (= y0 top))\n"+
			"  true))",
		p.Declaration(rel))

	join := Relation3{Name: "lub", Sort: "Sign", Params: [3]string{"x0", "y0", "z0"}, Body: Disj()}
	assert.Equal(t, "(define-fun lub ((x0 Sign) (y0 Sign) (z0 Sign)) Bool (or))", p.Declaration(join))
}

func TestPrinter_Deterministic(t *testing.T) {
	p := NewPrinter()
	for k, d := range declSamples {
		assert.Equal(t, p.Declaration(d), p.Declaration(d), "kind %s", k)
	}
}

func TestPrinter_WellFormed(t *testing.T) {
	p := NewPrinter()
	decls := []Declaration{
		declSamples[KindDatatype],
		declSamples[KindRelation2],
		declSamples[KindRelation3],
		declSamples[KindAxiom],
		AntiSymmetry("Sign", "leq"),
		Transitivity("Sign", "leq"),
		Relation2{Name: "leq", Sort: "S", Params: [2]string{"x0", "y0"}, Body: Disj(
			formulaSamples[KindEq], formulaSamples[KindAnd], formulaSamples[KindOr],
			formulaSamples[KindImplies], formulaSamples[KindApply], Conj(),
		)},
	}
	for i, d := range decls {
		t.Run(fmt.Sprintf("decl_%d", i), func(t *testing.T) {
			_, err := parseSingle(p.Declaration(d))
			assert.NoError(t, err)
		})
	}
}

func TestFreeVars(t *testing.T) {
	f := Disj(
		Conj(Equal(Var{Name: "x0"}, Var{Name: "X"})),
		Implies{Lhs: Var{Name: "X"}, Rhs: Apply{Name: "g", Args: []Formula{Var{Name: "y0"}, Const{Name: "c"}}}},
	)
	assert.Equal(t, []string{"x0", "X", "y0"}, FreeVars(f))
	assert.Empty(t, FreeVars(Const{Name: "c"}))

	q := Conj(
		Forall{Vars: []Sorted{{Name: "x", Sort: "S"}}, Body: Equal(Var{Name: "x"}, Var{Name: "y"})},
		Var{Name: "x"},
	)
	assert.Equal(t, []string{"y", "x"}, FreeVars(q), "x is free only outside the quantifier")
}

func TestSexprReaderRejectsUnbalanced(t *testing.T) {
	for _, src := range []string{"(a (b)", "(a))", "a", "(a) (b)"} {
		_, err := parseSingle(src)
		assert.Error(t, err, src)
	}
}
