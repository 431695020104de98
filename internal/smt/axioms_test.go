package smt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxioms_Templates(t *testing.T) {
	p := NewPrinter()
	assert.Equal(t,
		"(define-fun reflexivity () Bool (forall ((x Sign)) (leq x x)))",
		p.Declaration(Reflexivity("Sign", "leq")))
	assert.Equal(t,
		"(define-fun anti-symmetri () Bool (forall ((x Sign) (y Sign)) (=> (and (leq x y) (leq y x)) (= x y))))",
		p.Declaration(AntiSymmetry("Sign", "leq")))
	assert.Equal(t,
		"(define-fun transitivity () Bool (forall ((x Sign) (y Sign) (z Sign)) (=> (and (leq x y) (leq y z)) (leq x z))))",
		p.Declaration(Transitivity("Sign", "leq")))
}

func TestAxioms_Deterministic(t *testing.T) {
	p := NewPrinter()
	pairs := [][2]string{{"Sign", "leq"}, {"Parity", "le"}, {"A", "r"}}
	for _, pr := range pairs {
		assert.Equal(t, Reflexivity(pr[0], pr[1]), Reflexivity(pr[0], pr[1]))
		assert.Equal(t, AntiSymmetry(pr[0], pr[1]), AntiSymmetry(pr[0], pr[1]))
		assert.Equal(t, p.Declaration(Transitivity(pr[0], pr[1])), p.Declaration(Transitivity(pr[0], pr[1])))
	}
}

func TestAxioms_Closed(t *testing.T) {
	for _, ax := range OrderAxioms("Sign", "leq") {
		assert.Empty(t, FreeVars(ax.Body), ax.Name)
	}
}

func TestAxioms_BoundVariableCount(t *testing.T) {
	p := NewPrinter()
	tests := []struct {
		name  string
		axiom func(sort, leq string) Axiom
		bound int
	}{
		{"reflexivity", Reflexivity, 1},
		{"anti-symmetri", AntiSymmetry, 2},
		{"transitivity", Transitivity, 3},
	}
	for _, tt := range tests {
		for _, pair := range [][2]string{{"Sign", "leq"}, {"Interval", "sub"}} {
			t.Run(tt.name+"/"+pair[0], func(t *testing.T) {
				e, err := parseSingle(p.Declaration(tt.axiom(pair[0], pair[1])))
				require.NoError(t, err)

				forall, ok := e.find("forall")
				require.True(t, ok)
				require.Len(t, forall.list, 3)

				binders := forall.list[1]
				require.True(t, binders.isList)
				assert.Len(t, binders.list, tt.bound)
				for _, b := range binders.list {
					require.Len(t, b.list, 2)
					assert.Equal(t, pair[0], b.list[1].atom)
				}
			})
		}
	}
}

func TestOrderAxioms_Order(t *testing.T) {
	got := OrderAxioms("Sign", "leq")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"reflexivity", "anti-symmetri", "transitivity"},
		[]string{got[0].Name, got[1].Name, got[2].Name})
}
