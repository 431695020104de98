// Package synth turns the clauses defining a lattice's relations into
// closed formulas and wraps them in proof-burden declarations.
package synth

import (
	"go.uber.org/zap"

	"latticeproof/internal/logic"
	"latticeproof/internal/smt"
	"latticeproof/internal/unify"
)

// Formal parameter names of every synthesized relation. They are fixed per
// call pattern, not generated: each define-fun binds its own copy.
const (
	ParamX = "x0"
	ParamY = "y0"
	ParamZ = "z0"
)

// direction selects the argument order handed to the unifier.
type direction int

const (
	patternFirst direction = iota // unify(call pattern, clause head)
	headFirst                     // unify(clause head, call pattern)
)

// Synthesizer derives relation formulas from a program's clauses.
type Synthesizer struct {
	program *logic.Program
	logger  *zap.Logger
}

// New returns a Synthesizer over p. A nil logger disables logging.
func New(p *logic.Program, logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{program: p, logger: logger}
}

// Relation2 builds the binary relation declaration for rel over sort.
func (s *Synthesizer) Relation2(rel logic.PredicateSym, sort logic.LatticeSym) smt.Relation2 {
	params := [2]string{ParamX, ParamY}
	return smt.Relation2{
		Name:   logic.SymbolName(rel),
		Sort:   logic.SymbolName(sort),
		Params: params,
		Body:   s.disjunction(rel, params[:], patternFirst),
	}
}

// Relation3 builds the ternary relation declaration for rel over sort.
func (s *Synthesizer) Relation3(rel logic.PredicateSym, sort logic.LatticeSym) smt.Relation3 {
	params := [3]string{ParamX, ParamY, ParamZ}
	return smt.Relation3{
		Name:   logic.SymbolName(rel),
		Sort:   logic.SymbolName(sort),
		Params: params,
		Body:   s.disjunction(rel, params[:], headFirst),
	}
}

// disjunction combines one formula per clause of rel, in clause order.
func (s *Synthesizer) disjunction(rel logic.PredicateSym, params []string, dir direction) smt.Or {
	args := make([]logic.Term, len(params))
	for i, name := range params {
		args[i] = logic.Var(name)
	}
	pattern := logic.Predicate{Name: rel, Args: args}

	clauses := s.program.ClausesFor(rel)
	disjuncts := make([]smt.Formula, 0, len(clauses))
	for _, c := range clauses {
		disjuncts = append(disjuncts, s.clauseFormula(pattern, c, params, dir))
	}
	return smt.Disj(disjuncts...)
}

// clauseFormula is the disjunct contributed by one clause. Rules and heads
// that fail to unify contribute True, which leaves the disjunction's
// constraint on that clause open.
func (s *Synthesizer) clauseFormula(pattern logic.Predicate, c logic.Clause, params []string, dir direction) smt.Formula {
	if !c.IsFact() {
		// TODO: encode rule bodies once Implies is wired into the synthesizer.
		s.logger.Debug("rule clause left unconstrained", zap.Stringer("clause", c))
		return smt.True{}
	}

	var (
		env unify.Subst
		ok  bool
	)
	switch dir {
	case patternFirst:
		env, ok = unify.Predicates(pattern, c.Head)
	case headFirst:
		env, ok = unify.Predicates(c.Head, pattern)
	}
	if !ok {
		s.logger.Debug("clause head does not match call pattern",
			zap.Stringer("pattern", pattern), zap.Stringer("clause", c))
		return smt.True{}
	}
	return Conjunction(env, params)
}

// Conjunction turns a substitution into one equality per binding, in
// binding order. An equality whose resolved side mentions a variable that is
// neither a formal parameter nor bound in env is dropped.
func Conjunction(env unify.Subst, params []string) smt.And {
	formal := make(map[string]bool, len(params))
	for _, p := range params {
		formal[p] = true
	}

	var eqs []smt.Formula
	for _, b := range env.Bindings() {
		resolved := unify.Resolve(b.Term, env)
		if leaks(resolved, formal, env) {
			continue
		}
		eqs = append(eqs, smt.Equal(smt.Var{Name: b.Var.Name}, resolved))
	}
	return smt.Conj(eqs...)
}

func leaks(f smt.Formula, formal map[string]bool, env unify.Subst) bool {
	for _, name := range smt.FreeVars(f) {
		if !formal[name] && !env.Has(name) {
			return true
		}
	}
	return false
}
