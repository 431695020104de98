package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"latticeproof/internal/burden"
	"latticeproof/internal/logging"
	"latticeproof/internal/logic"
)

var outPath string

// generateCmd writes the proof burden of one manifest.
var generateCmd = &cobra.Command{
	Use:   "generate [manifest]",
	Short: "Emit the proof burden for every lattice in a manifest",
	Long: `Loads the manifest and emits, per lattice and in declaration order:
  1. the datatype declaration of the lattice domain
  2. the order relation defined from its clauses
  3. the join relation defined from its clauses
  4. the reflexivity, anti-symmetry and transitivity axioms of the order`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	text, err := render(prog)
	if err != nil {
		return err
	}

	dest := outPath
	if dest == "" {
		dest = cfg.Output.Path
	}
	if dest == "" {
		_, err := cmd.OutOrStdout().Write(text)
		return err
	}
	if err := os.WriteFile(dest, text, 0644); err != nil {
		return fmt.Errorf("failed to write proof burden: %w", err)
	}
	logs.For(logging.CategoryCLI).Info("proof burden written",
		zap.String("path", dest), zap.Int("bytes", len(text)))
	return nil
}

// render runs the orchestrator into memory so that a failed run leaves the
// sink untouched.
func render(prog *logic.Program) ([]byte, error) {
	gen := burden.New(
		burden.WithLogger(logs.For(logging.CategoryBurden)),
		burden.WithSynthLogger(logs.For(logging.CategorySynth)),
		burden.WithIndent(cfg.Output.Indent),
	)
	var buf bytes.Buffer
	if err := gen.Emit(&buf, prog); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
