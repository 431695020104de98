// Package latticeproof is the public entry point to the proof-burden
// generator for tools built outside this module. It re-exports the program
// model, the manifest loader and the orchestrator without adding behaviour.
package latticeproof

import (
	"latticeproof/internal/burden"
	"latticeproof/internal/logic"
	"latticeproof/internal/mangle"
	"latticeproof/internal/manifest"
	"latticeproof/internal/synth"
)

// Program model
type (
	Program      = logic.Program
	Lattice      = logic.Lattice
	Clause       = logic.Clause
	Predicate    = logic.Predicate
	Term         = logic.Term
	Variant      = logic.Variant
	Alternative  = logic.Alternative
	LatticeSym   = logic.LatticeSym
	PredicateSym = logic.PredicateSym
)

var (
	NewProgram   = logic.NewProgram
	NewPredicate = logic.NewPredicate
	Var          = logic.Var
	Ctor         = logic.Ctor
	Lit          = logic.Lit
)

// Loading
type (
	ManifestOptions = manifest.Options
	MangleOptions   = mangle.Options
)

var (
	LoadManifest  = manifest.Load
	ParseManifest = manifest.Parse
	ParseClauses  = mangle.ParseClauses
)

// Generation
type (
	Generator            = burden.Generator
	MalformedDomainError = synth.MalformedDomainError
)

var (
	NewGenerator       = burden.New
	WithIndent         = burden.WithIndent
	WithLogger         = burden.WithLogger
	Generate           = burden.Generate
	Emit               = burden.Emit
	ErrMalformedDomain = synth.ErrMalformedDomain
)
