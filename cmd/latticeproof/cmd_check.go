package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"latticeproof/internal/logging"
	"latticeproof/internal/logic"
	"latticeproof/internal/mangle"
	"latticeproof/internal/synth"
	"latticeproof/internal/unify"
)

// checkCmd validates manifests without emitting a proof burden.
var checkCmd = &cobra.Command{
	Use:   "check [manifest...]",
	Short: "Validate lattice manifests",
	Long: `Loads each manifest and checks that every lattice domain is a finite
enumeration of nullary constructors. Fact clauses of an order or join
relation whose arity cannot match the relation are reported as warnings,
since they only ever contribute an unconstrained disjunct.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		warnings, err := checkManifest(path)
		for _, msg := range warnings {
			fmt.Fprintf(w, "%s %s: %s\n", warnLabel("WARN:"), path, msg)
		}
		if err != nil {
			fmt.Fprintf(w, "%s %s: %v\n", errorLabel("ERROR:"), path, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "%s %s\n", okLabel("OK:"), path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d manifest(s) failed", failed, len(args))
	}
	return nil
}

func checkManifest(path string) ([]string, error) {
	prog, err := loadProgram(path)
	if err != nil {
		return nil, err
	}
	var warnings []string
	for _, l := range prog.Lattices() {
		if _, err := synth.Datatype(l.Name, l.Domain); err != nil {
			return warnings, err
		}
		warnings = append(warnings, arityWarnings(prog, l.Leq, 2)...)
		warnings = append(warnings, arityWarnings(prog, l.Join, 3)...)
		if err := crossCheck(prog, l.Leq, 2); err != nil {
			return warnings, err
		}
		if err := crossCheck(prog, l.Join, 3); err != nil {
			return warnings, err
		}
	}
	return warnings, nil
}

func arityWarnings(prog *logic.Program, rel logic.PredicateSym, arity int) []string {
	var out []string
	for _, c := range prog.ClausesFor(rel) {
		if c.IsFact() && c.Head.Arity() != arity {
			out = append(out, fmt.Sprintf("%s has arity %d, expected %d", c, c.Head.Arity(), arity))
		}
	}
	return out
}

// crossCheck compares the synthesizer's unifier with Mangle's on every fact
// of rel against the relation's call pattern.
func crossCheck(prog *logic.Program, rel logic.PredicateSym, arity int) error {
	params := []string{synth.ParamX, synth.ParamY, synth.ParamZ}[:arity]
	args := make([]logic.Term, arity)
	for i, p := range params {
		args[i] = logic.Var(p)
	}
	pattern := logic.Predicate{Name: rel, Args: args}

	for _, c := range prog.ClausesFor(rel) {
		if !c.IsFact() {
			continue
		}
		_, ours := unify.Predicates(pattern, c.Head)
		theirs := mangle.Unifiable(pattern, c.Head)
		if ours != theirs {
			logs.For(logging.CategoryCLI).Error("unifier disagreement",
				zap.Stringer("clause", c), zap.Bool("ours", ours), zap.Bool("mangle", theirs))
			return fmt.Errorf("unifier disagreement on %s", c)
		}
	}
	return nil
}
