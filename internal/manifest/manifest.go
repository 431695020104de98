// Package manifest loads a program description from a YAML manifest: the
// domain types, the lattice declarations and the Mangle clause sources that
// define their relations.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"latticeproof/internal/logic"
	"latticeproof/internal/mangle"
)

// File mirrors the manifest YAML.
type File struct {
	Types       []TypeSpec    `yaml:"types"`
	Lattices    []LatticeSpec `yaml:"lattices"`
	Clauses     string        `yaml:"clauses,omitempty"`
	ClauseFiles []string      `yaml:"clause_files,omitempty"`
}

// TypeSpec declares a named type.
type TypeSpec struct {
	Name         string            `yaml:"name"`
	Kind         string            `yaml:"kind"` // variant, bool, int, str
	Alternatives []AlternativeSpec `yaml:"alternatives,omitempty"`
}

// AlternativeSpec is one constructor of a variant type. Params name other
// declared types or primitives.
type AlternativeSpec struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params,omitempty"`
}

// LatticeSpec declares a lattice over a domain type.
type LatticeSpec struct {
	Name   string `yaml:"name"`
	Domain string `yaml:"domain"`
	Leq    string `yaml:"leq"`
	Join   string `yaml:"join"`
}

// Options controls manifest loading.
type Options struct {
	Mangle mangle.Options
	Logger *zap.Logger
}

// Error is a manifest problem located by a YAML path.
type Error struct {
	Path    string
	Message string
}

func (e Error) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

func newError(path, format string, args ...any) Error {
	return Error{Path: path, Message: fmt.Sprintf(format, args...)}
}

var primitives = map[string]bool{"bool": true, "int": true, "str": true}

// Load reads and parses the manifest at path. Clause files are resolved
// relative to the manifest's directory.
func Load(path string, opts Options) (*logic.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data, filepath.Dir(path), opts)
}

// Parse builds a Program from manifest bytes.
func Parse(data []byte, baseDir string, opts Options) (*logic.Program, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	types, err := buildTypes(f.Types)
	if err != nil {
		return nil, err
	}
	lattices, err := buildLattices(f.Lattices, types)
	if err != nil {
		return nil, err
	}

	var clauses []logic.Clause
	if strings.TrimSpace(f.Clauses) != "" {
		cs, err := mangle.ParseClauses(f.Clauses, opts.Mangle)
		if err != nil {
			return nil, newError("clauses", "%v", err)
		}
		clauses = append(clauses, cs...)
	}
	for i, name := range f.ClauseFiles {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, newError(fmt.Sprintf("clause_files[%d]", i), "%v", err)
		}
		cs, err := mangle.ParseClauses(string(src), opts.Mangle)
		if err != nil {
			return nil, newError(fmt.Sprintf("clause_files[%d]", i), "%s: %v", name, err)
		}
		clauses = append(clauses, cs...)
	}

	logger.Debug("manifest loaded",
		zap.Int("types", len(types)),
		zap.Int("lattices", len(lattices)),
		zap.Int("clauses", len(clauses)))

	return logic.NewProgram(lattices, clauses)
}

func buildTypes(specs []TypeSpec) (map[string]logic.Type, error) {
	// Register names first so alternatives may reference later types.
	kinds := make(map[string]string, len(specs))
	for i, spec := range specs {
		path := fmt.Sprintf("types[%d]", i)
		if strings.TrimSpace(spec.Name) == "" {
			return nil, newError(path+".name", "type name is required")
		}
		if _, dup := kinds[spec.Name]; dup || primitives[spec.Name] {
			return nil, newError(path+".name", "duplicate type %q", spec.Name)
		}
		kinds[spec.Name] = spec.Kind
	}

	types := make(map[string]logic.Type, len(specs))
	for i, spec := range specs {
		path := fmt.Sprintf("types[%d]", i)
		switch spec.Kind {
		case "variant":
			alts := make([]logic.Alternative, 0, len(spec.Alternatives))
			seen := make(map[string]bool, len(spec.Alternatives))
			for j, a := range spec.Alternatives {
				altPath := fmt.Sprintf("%s.alternatives[%d]", path, j)
				if strings.TrimSpace(a.Name) == "" {
					return nil, newError(altPath+".name", "alternative name is required")
				}
				if seen[a.Name] {
					return nil, newError(altPath+".name", "duplicate alternative %q in %s", a.Name, spec.Name)
				}
				seen[a.Name] = true
				params := make([]logic.Type, 0, len(a.Params))
				for k, p := range a.Params {
					t, err := typeRef(p, kinds)
					if err != nil {
						return nil, newError(fmt.Sprintf("%s.params[%d]", altPath, k), "%v", err)
					}
					params = append(params, t)
				}
				alts = append(alts, logic.Alternative{Name: a.Name, Params: params})
			}
			types[spec.Name] = logic.Variant{Name: spec.Name, Alternatives: alts}
		case "bool", "int", "str":
			if len(spec.Alternatives) > 0 {
				return nil, newError(path+".alternatives", "only variant types have alternatives")
			}
			types[spec.Name] = logic.Primitive{Name: spec.Kind}
		default:
			return nil, newError(path+".kind", "kind must be variant, bool, int, or str")
		}
	}
	return types, nil
}

// typeRef resolves a parameter type by name. Variant references are kept
// shallow: the parameter only records the referenced name.
func typeRef(name string, kinds map[string]string) (logic.Type, error) {
	if primitives[name] {
		return logic.Primitive{Name: name}, nil
	}
	kind, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", name)
	}
	if kind == "variant" {
		return logic.Variant{Name: name}, nil
	}
	return logic.Primitive{Name: kind}, nil
}

func buildLattices(specs []LatticeSpec, types map[string]logic.Type) ([]logic.Lattice, error) {
	seen := make(map[string]bool, len(specs))
	lattices := make([]logic.Lattice, 0, len(specs))
	for i, spec := range specs {
		path := fmt.Sprintf("lattices[%d]", i)
		if strings.TrimSpace(spec.Name) == "" {
			return nil, newError(path+".name", "lattice name is required")
		}
		if seen[spec.Name] {
			return nil, newError(path+".name", "duplicate lattice %q", spec.Name)
		}
		seen[spec.Name] = true

		domain, ok := types[spec.Domain]
		if !ok {
			if !primitives[spec.Domain] {
				return nil, newError(path+".domain", "unknown type %q", spec.Domain)
			}
			domain = logic.Primitive{Name: spec.Domain}
		}
		if strings.TrimSpace(spec.Leq) == "" {
			return nil, newError(path+".leq", "order relation is required")
		}
		if strings.TrimSpace(spec.Join) == "" {
			return nil, newError(path+".join", "join relation is required")
		}
		lattices = append(lattices, logic.Lattice{
			Name:   logic.LatticeSym(spec.Name),
			Domain: domain,
			Leq:    logic.PredicateSym(spec.Leq),
			Join:   logic.PredicateSym(spec.Join),
		})
	}
	return lattices, nil
}
