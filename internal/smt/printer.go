package smt

import (
	"fmt"
	"strings"
)

// DefaultIndent is the indentation unit used for disjuncts.
const DefaultIndent = "  "

// Printer renders formulas and declarations as S-expressions. Output depends
// only on the tree and the indentation unit.
type Printer struct {
	Indent string
}

// NewPrinter returns a Printer using DefaultIndent.
func NewPrinter() Printer {
	return Printer{Indent: DefaultIndent}
}

// Formula renders f at nesting depth zero.
func (p Printer) Formula(f Formula) string {
	var sb strings.Builder
	p.writeFormula(&sb, f, 0)
	return sb.String()
}

// Declaration renders a single top-level declaration.
func (p Printer) Declaration(d Declaration) string {
	var sb strings.Builder
	switch t := d.(type) {
	case Datatype:
		sb.WriteString("(declare-datatypes () ((")
		sb.WriteString(t.Sort)
		for _, v := range t.Variants {
			sb.WriteByte(' ')
			sb.WriteString(v)
		}
		sb.WriteString(")))")
	case Relation2:
		p.writeDefineFun(&sb, t.Name, t.Sort, t.Params[:], t.Body)
	case Relation3:
		p.writeDefineFun(&sb, t.Name, t.Sort, t.Params[:], t.Body)
	case Axiom:
		sb.WriteString("(define-fun ")
		sb.WriteString(t.Name)
		sb.WriteString(" () Bool ")
		p.writeFormula(&sb, t.Body, 0)
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("smt: unhandled declaration %T", d))
	}
	return sb.String()
}

func (p Printer) writeDefineFun(sb *strings.Builder, name, sort string, params []string, body Formula) {
	sb.WriteString("(define-fun ")
	sb.WriteString(name)
	sb.WriteString(" (")
	for i, v := range params {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "(%s %s)", v, sort)
	}
	sb.WriteString(") Bool ")
	p.writeFormula(sb, body, 0)
	sb.WriteByte(')')
}

func (p Printer) writeFormula(sb *strings.Builder, f Formula, depth int) {
	switch t := f.(type) {
	case True:
		sb.WriteString("true")
	case False:
		sb.WriteString("false")
	case Var:
		sb.WriteString(t.Name)
	case Const:
		sb.WriteString(t.Name)
	case Eq:
		sb.WriteString("(= ")
		p.writeFormula(sb, t.Lhs, depth)
		sb.WriteByte(' ')
		p.writeFormula(sb, t.Rhs, depth)
		sb.WriteByte(')')
	case And:
		sb.WriteString("(and")
		for _, a := range t.Args {
			sb.WriteByte(' ')
			p.writeFormula(sb, a, depth)
		}
		sb.WriteByte(')')
	case Or:
		// One disjunct per line, one level deeper than the parent.
		sb.WriteString("(or")
		for _, a := range t.Args {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(p.Indent, depth+1))
			p.writeFormula(sb, a, depth+1)
		}
		sb.WriteByte(')')
	case Implies:
		sb.WriteString("(=> ")
		p.writeFormula(sb, t.Lhs, depth)
		sb.WriteByte(' ')
		p.writeFormula(sb, t.Rhs, depth)
		sb.WriteByte(')')
	case Apply:
		if len(t.Args) == 0 {
			sb.WriteString(t.Name)
			return
		}
		sb.WriteByte('(')
		sb.WriteString(t.Name)
		for _, a := range t.Args {
			sb.WriteByte(' ')
			p.writeFormula(sb, a, depth)
		}
		sb.WriteByte(')')
	case Forall:
		sb.WriteString("(forall (")
		for i, v := range t.Vars {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(sb, "(%s %s)", v.Name, v.Sort)
		}
		sb.WriteString(") ")
		p.writeFormula(sb, t.Body, depth)
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("smt: unhandled formula %T", f))
	}
}
