package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"latticeproof/internal/diff"
	"latticeproof/internal/logging"
)

// errDrift is returned when the regenerated burden differs from the artifact.
var errDrift = errors.New("proof burden drifted from archived artifact")

var diffContext int

// diffCmd compares a regenerated burden with an archived artifact.
var diffCmd = &cobra.Command{
	Use:   "diff [manifest] [artifact]",
	Short: "Compare the proof burden of a manifest with an archived artifact",
	Long: `Regenerates the proof burden of the manifest and compares it line by line
with a previously archived artifact. Exits non-zero when they differ.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}
	current, err := render(prog)
	if err != nil {
		return err
	}
	archived, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read artifact: %w", err)
	}

	w := cmd.OutOrStdout()
	report := diff.NewEngine(diffContext).Compare(args[1], string(archived), string(current))
	if !report.Drifted() {
		fmt.Fprintf(w, "%s %s is up to date\n", okLabel("OK:"), args[1])
		return nil
	}
	logs.For(logging.CategoryCLI).Warn("proof burden drift",
		zap.String("artifact", args[1]), zap.Int("hunks", len(report.Hunks)))
	if err := report.Write(w); err != nil {
		return fmt.Errorf("failed to write diff: %w", err)
	}
	return errDrift
}
