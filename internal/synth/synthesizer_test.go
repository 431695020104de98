package synth

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"latticeproof/internal/logic"
	"latticeproof/internal/smt"
)

var sign = logic.Variant{
	Name: "Sign",
	Alternatives: []logic.Alternative{
		{Name: "Top"}, {Name: "Pos"}, {Name: "Neg"}, {Name: "Zero"}, {Name: "Bot"},
	},
}

func signProgram(t *testing.T, clauses ...logic.Clause) *logic.Program {
	t.Helper()
	p, err := logic.NewProgram([]logic.Lattice{{
		Name:   "Sign",
		Domain: sign,
		Leq:    "leq",
		Join:   "lub",
	}}, clauses)
	require.NoError(t, err)
	return p
}

func fact(name string, args ...logic.Term) logic.Clause {
	return logic.Clause{Head: logic.NewPredicate(name, args...)}
}

func eq(name string, rhs smt.Formula) smt.Formula {
	return smt.Equal(smt.Var{Name: name}, rhs)
}

func TestRelation2_FactsInClauseOrder(t *testing.T) {
	p := signProgram(t,
		fact("leq", logic.Ctor("Bot"), logic.Ctor("Top")),
		fact("lub", logic.Ctor("Bot"), logic.Ctor("Bot"), logic.Ctor("Bot")),
		fact("leq", logic.Ctor("Bot"), logic.Ctor("Pos")),
	)

	got := New(p, nil).Relation2("leq", "Sign")

	want := smt.Relation2{
		Name:   "leq",
		Sort:   "Sign",
		Params: [2]string{ParamX, ParamY},
		Body: smt.Disj(
			smt.Conj(eq("x0", smt.Const{Name: "Bot"}), eq("y0", smt.Const{Name: "Top"})),
			smt.Conj(eq("x0", smt.Const{Name: "Bot"}), eq("y0", smt.Const{Name: "Pos"})),
		),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Relation2 mismatch (-want +got):\n%s", diff)
	}
}

func TestRelation2_RuleContributesTrue(t *testing.T) {
	rule := logic.Clause{
		Head: logic.NewPredicate("leq", logic.Var("X"), logic.Var("Y")),
		Body: []logic.Predicate{
			logic.NewPredicate("leq", logic.Var("X"), logic.Var("Z")),
			logic.NewPredicate("leq", logic.Var("Z"), logic.Var("Y")),
		},
	}
	p := signProgram(t,
		fact("leq", logic.Ctor("Bot"), logic.Ctor("Top")),
		rule,
		logic.Clause{
			Head: logic.NewPredicate("leq", logic.Ctor("Top"), logic.Ctor("Top")),
			Body: []logic.Predicate{logic.NewPredicate("anything")},
		},
	)

	core, logs := observer.New(zapcore.DebugLevel)
	got := New(p, zap.New(core)).Relation2("leq", "Sign")

	require.Len(t, got.Body.Args, 3)
	assert.Equal(t, smt.True{}, got.Body.Args[1])
	assert.Equal(t, smt.True{}, got.Body.Args[2])
	assert.Equal(t, 2, logs.FilterMessage("rule clause left unconstrained").Len())
}

func TestRelation2_NoClauses(t *testing.T) {
	got := New(signProgram(t), nil).Relation2("leq", "Sign")
	assert.Empty(t, got.Body.Args)
}

func TestRelation2_ArityMismatchContributesTrue(t *testing.T) {
	p := signProgram(t, fact("leq", logic.Ctor("Bot")))

	core, logs := observer.New(zapcore.DebugLevel)
	got := New(p, zap.New(core)).Relation2("leq", "Sign")

	assert.Equal(t, smt.Disj(smt.True{}), got.Body)
	assert.Equal(t, 1, logs.FilterMessage("clause head does not match call pattern").Len())
}

func TestRelation2_DropsLeakingEquality(t *testing.T) {
	p := signProgram(t, fact("leq", logic.Var("X"), logic.Ctor("Top")))

	got := New(p, nil).Relation2("leq", "Sign")

	want := smt.Disj(smt.Conj(eq("y0", smt.Const{Name: "Top"})))
	if diff := cmp.Diff(want, got.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestRelation3_HeadFirst(t *testing.T) {
	p := signProgram(t,
		fact("lub", logic.Ctor("Bot"), logic.Var("X"), logic.Var("X")),
		fact("lub", logic.Ctor("Top"), logic.Ctor("Bot"), logic.Ctor("Top")),
	)

	got := New(p, nil).Relation3("lub", "Sign")

	assert.Equal(t, [3]string{ParamX, ParamY, ParamZ}, got.Params)
	want := smt.Disj(
		smt.Conj(
			eq("x0", smt.Const{Name: "Bot"}),
			eq("X", smt.Var{Name: "z0"}),
			eq("y0", smt.Var{Name: "z0"}),
		),
		smt.Conj(
			eq("x0", smt.Const{Name: "Top"}),
			eq("y0", smt.Const{Name: "Bot"}),
			eq("z0", smt.Const{Name: "Top"}),
		),
	)
	if diff := cmp.Diff(want, got.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestDatatype(t *testing.T) {
	dt, err := Datatype("Sign", sign)
	require.NoError(t, err)
	assert.Equal(t, smt.Datatype{Sort: "Sign", Variants: []string{"Top", "Pos", "Neg", "Zero", "Bot"}}, dt)
}

func TestDatatype_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		domain logic.Type
	}{
		{"no domain", nil},
		{"primitive", logic.Primitive{Name: "int"}},
		{"empty variant", logic.Variant{Name: "Empty"}},
		{"non-nullary alternative", logic.Variant{
			Name: "Interval",
			Alternatives: []logic.Alternative{
				{Name: "Empty"},
				{Name: "Range", Params: []logic.Type{logic.Primitive{Name: "int"}, logic.Primitive{Name: "int"}}},
			},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Datatype("L", tt.domain)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedDomain))

			var mde *MalformedDomainError
			require.True(t, errors.As(err, &mde))
			assert.Equal(t, "L", mde.Lattice)
		})
	}
}
