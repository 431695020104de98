// Package burden assembles the proof burden for every lattice of a program:
// the domain datatype, the order and join relations, and the partial-order
// axioms, rendered in a fixed order.
package burden

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"latticeproof/internal/logic"
	"latticeproof/internal/smt"
	"latticeproof/internal/synth"
)

// Generator renders proof burdens. The zero value is not usable; call New.
type Generator struct {
	printer     smt.Printer
	logger      *zap.Logger
	synthLogger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSynthLogger sets the logger handed to the formula synthesizer. It
// defaults to the Generator's own logger.
func WithSynthLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		g.synthLogger = l
	}
}

// WithIndent sets the indentation unit used for disjuncts.
func WithIndent(indent string) Option {
	return func(g *Generator) {
		g.printer.Indent = indent
	}
}

// New returns a Generator with the default printer.
func New(opts ...Option) *Generator {
	g := &Generator{
		printer: smt.NewPrinter(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the rendered declarations of every lattice, in lattice
// order. Per lattice: datatype, leq relation, join relation, reflexivity,
// anti-symmetry, transitivity. A malformed domain aborts the whole run.
func (g *Generator) Generate(p *logic.Program) ([]string, error) {
	sl := g.synthLogger
	if sl == nil {
		sl = g.logger
	}
	s := synth.New(p, sl)

	var out []string
	for _, l := range p.Lattices() {
		decls, err := g.lattice(s, l)
		if err != nil {
			g.logger.Error("cannot generate proof burden",
				zap.String("lattice", l.Name.String()), zap.Error(err))
			return nil, err
		}
		out = append(out, decls...)
	}
	return out, nil
}

func (g *Generator) lattice(s *synth.Synthesizer, l logic.Lattice) ([]string, error) {
	dt, err := synth.Datatype(l.Name, l.Domain)
	if err != nil {
		return nil, err
	}
	sort := logic.SymbolName(l.Name)
	leq := logic.SymbolName(l.Leq)

	out := []string{
		g.printer.Declaration(dt),
		g.printer.Declaration(s.Relation2(l.Leq, l.Name)),
		g.printer.Declaration(s.Relation3(l.Join, l.Name)),
	}
	for _, ax := range smt.OrderAxioms(sort, leq) {
		out = append(out, g.printer.Declaration(ax))
	}

	g.logger.Debug("lattice proof burden generated",
		zap.String("lattice", sort),
		zap.Int("variants", len(dt.Variants)),
		zap.Int("declarations", len(out)))
	return out, nil
}

// Emit generates the burden for p and writes each declaration to w followed
// by a newline. Nothing is written if generation fails.
func (g *Generator) Emit(w io.Writer, p *logic.Program) error {
	decls, err := g.Generate(p)
	if err != nil {
		return err
	}
	for _, d := range decls {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return fmt.Errorf("write proof burden: %w", err)
		}
	}
	return nil
}

// Generate is a convenience wrapper around New().Generate.
func Generate(p *logic.Program) ([]string, error) {
	return New().Generate(p)
}

// Emit is a convenience wrapper around New().Emit.
func Emit(w io.Writer, p *logic.Program) error {
	return New().Emit(w, p)
}
