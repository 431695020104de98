// Package diff compares a regenerated proof burden with an archived artifact
// line by line and renders the drift as unified-style hunks.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineType represents the type of diff line
type LineType int

const (
	LineContext LineType = iota // Unchanged context line
	LineAdded                   // Present only in the regenerated burden
	LineRemoved                 // Present only in the archived artifact
)

// Line represents a single line in the diff
type Line struct {
	Content string
	Type    LineType
}

// Hunk represents a group of changes with surrounding context. Starts are
// 1-based line numbers.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Report is the drift between an archived artifact and the regenerated
// burden.
type Report struct {
	ArchivedPath string
	Hunks        []Hunk
	identical    bool
}

// Drifted reports whether the two texts differ at all.
func (r *Report) Drifted() bool { return !r.identical }

// DefaultContext is the number of unchanged lines kept around each change.
const DefaultContext = 3

// Engine computes line diffs.
type Engine struct {
	dmp     *diffmatchpatch.DiffMatchPatch
	context int
}

// NewEngine creates an engine keeping context unchanged lines around each
// change. A negative context is treated as zero.
func NewEngine(context int) *Engine {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // burdens are small; prefer a minimal diff
	if context < 0 {
		context = 0
	}
	return &Engine{dmp: dmp, context: context}
}

// Compare diffs archived (read from archivedPath) against current.
func (e *Engine) Compare(archivedPath, archived, current string) *Report {
	r := &Report{ArchivedPath: archivedPath, identical: archived == current}
	if r.identical {
		return r
	}

	// Line-level reduction avoids newline boundary artifacts.
	a, b, lineArray := e.dmp.DiffLinesToChars(archived, current)
	diffs := e.dmp.DiffMain(a, b, false)
	diffs = e.dmp.DiffCleanupSemantic(diffs)
	diffs = e.dmp.DiffCharsToLines(diffs, lineArray)

	r.Hunks = group(operations(diffs), e.context)
	return r
}

// Compare is a convenience function using DefaultContext.
func Compare(archivedPath, archived, current string) *Report {
	return NewEngine(DefaultContext).Compare(archivedPath, archived, current)
}

// operation is one line together with the number of old and new lines
// consumed before it.
type operation struct {
	typ     LineType
	oldPos  int
	newPos  int
	content string
}

func operations(diffs []diffmatchpatch.Diff) []operation {
	var ops []operation
	oldPos, newPos := 0, 0
	for _, d := range diffs {
		lines := strings.Split(d.Text, "\n")
		if lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		for _, line := range lines {
			op := operation{oldPos: oldPos, newPos: newPos, content: line}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				op.typ = LineContext
				oldPos++
				newPos++
			case diffmatchpatch.DiffDelete:
				op.typ = LineRemoved
				oldPos++
			case diffmatchpatch.DiffInsert:
				op.typ = LineAdded
				newPos++
			}
			ops = append(ops, op)
		}
	}
	return ops
}

// group merges changes separated by at most 2*context unchanged lines into
// one hunk.
func group(ops []operation, context int) []Hunk {
	var hunks []Hunk
	for i := 0; i < len(ops); {
		if ops[i].typ == LineContext {
			i++
			continue
		}
		start := max(i-context, 0)
		last := i
		for j := i + 1; j < len(ops); j++ {
			if ops[j].typ != LineContext {
				last = j
			} else if j-last > 2*context {
				break
			}
		}
		stop := min(last+context+1, len(ops))
		hunks = append(hunks, newHunk(ops[start:stop]))
		i = stop
	}
	return hunks
}

func newHunk(ops []operation) Hunk {
	h := Hunk{
		OldStart: ops[0].oldPos + 1,
		NewStart: ops[0].newPos + 1,
		Lines:    make([]Line, 0, len(ops)),
	}
	for _, op := range ops {
		h.Lines = append(h.Lines, Line{Content: op.content, Type: op.typ})
		if op.typ != LineAdded {
			h.OldCount++
		}
		if op.typ != LineRemoved {
			h.NewCount++
		}
	}
	// An empty side points at the line before the hunk.
	if h.OldCount == 0 {
		h.OldStart--
	}
	if h.NewCount == 0 {
		h.NewStart--
	}
	return h
}

var (
	headerColor  = color.New(color.Bold)
	hunkColor    = color.New(color.FgCyan)
	removedColor = color.New(color.FgRed)
	addedColor   = color.New(color.FgGreen)
)

// Write renders the report in unified diff form. Nothing is written for an
// identical pair.
func (r *Report) Write(w io.Writer) error {
	if !r.Drifted() {
		return nil
	}
	if _, err := headerColor.Fprintf(w, "--- %s\n+++ regenerated\n", r.ArchivedPath); err != nil {
		return err
	}
	for _, h := range r.Hunks {
		if _, err := hunkColor.Fprintf(w, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount); err != nil {
			return err
		}
		for _, l := range h.Lines {
			var err error
			switch l.Type {
			case LineRemoved:
				_, err = removedColor.Fprintln(w, "-"+l.Content)
			case LineAdded:
				_, err = addedColor.Fprintln(w, "+"+l.Content)
			default:
				_, err = fmt.Fprintln(w, " "+l.Content)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
