// Command latticeproof emits the proof burden of the lattices declared in a
// program manifest: SMT-LIB declarations and partial-order axioms for an
// external solver to discharge.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"latticeproof/internal/config"
	"latticeproof/internal/diff"
	"latticeproof/internal/logging"
	"latticeproof/internal/logic"
	"latticeproof/internal/mangle"
	"latticeproof/internal/manifest"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg  *config.Config
	logs *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "latticeproof",
	Short: "Generate proof burdens for user-declared lattices",
	Long: `latticeproof reads a program manifest (domain types, lattice declarations
and the Mangle clauses defining each lattice's order and join relations) and
emits SMT-LIB style declarations whose validity shows that every order
relation is a partial order matching its clauses.

The emitted text is meant for an external solver or for archiving as a
proof artifact.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logs, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logs = logs.With(zap.String("run_id", uuid.NewString()))
		logs.For(logging.CategoryCLI).Debug("command started",
			zap.String("command", cmd.Name()), zap.Strings("args", args))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logs != nil {
			_ = logs.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "latticeproof.yaml", "path to the configuration file")

	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the proof burden to this file instead of stdout")

	diffCmd.Flags().IntVarP(&diffContext, "context", "U", diff.DefaultContext, "unchanged lines shown around each change")

	rootCmd.AddCommand(generateCmd, checkCmd, diffCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadProgram reads a manifest using the active configuration.
func loadProgram(path string) (*logic.Program, error) {
	prog, err := manifest.Load(path, manifest.Options{
		Mangle: mangle.Options{Analyze: cfg.Loader.AnalyzeClauses},
		Logger: logs.For(logging.CategoryLoader),
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return prog, nil
}
