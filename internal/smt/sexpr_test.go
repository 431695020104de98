package smt

import (
	"fmt"
	"strings"
	"unicode"
)

// sexpr is a parsed S-expression: an atom or a list.
type sexpr struct {
	atom   string
	list   []sexpr
	isList bool
}

// parseSingle parses src as exactly one S-expression list.
func parseSingle(src string) (sexpr, error) {
	toks := tokenize(src)
	e, rest, err := parseExpr(toks)
	if err != nil {
		return sexpr{}, err
	}
	if len(rest) != 0 {
		return sexpr{}, fmt.Errorf("trailing tokens after expression: %v", rest)
	}
	if !e.isList {
		return sexpr{}, fmt.Errorf("expected a list, got atom %q", e.atom)
	}
	return e, nil
}

func tokenize(src string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range src {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

func parseExpr(toks []string) (sexpr, []string, error) {
	if len(toks) == 0 {
		return sexpr{}, nil, fmt.Errorf("unexpected end of input")
	}
	switch toks[0] {
	case ")":
		return sexpr{}, nil, fmt.Errorf("unbalanced ')'")
	case "(":
		rest := toks[1:]
		list := sexpr{isList: true}
		for {
			if len(rest) == 0 {
				return sexpr{}, nil, fmt.Errorf("unbalanced '('")
			}
			if rest[0] == ")" {
				return list, rest[1:], nil
			}
			var child sexpr
			var err error
			child, rest, err = parseExpr(rest)
			if err != nil {
				return sexpr{}, nil, err
			}
			list.list = append(list.list, child)
		}
	default:
		return sexpr{atom: toks[0]}, toks[1:], nil
	}
}

// find returns the first list whose head atom is head, searching depth-first.
func (e sexpr) find(head string) (sexpr, bool) {
	if !e.isList {
		return sexpr{}, false
	}
	if len(e.list) > 0 && !e.list[0].isList && e.list[0].atom == head {
		return e, true
	}
	for _, c := range e.list {
		if got, ok := c.find(head); ok {
			return got, true
		}
	}
	return sexpr{}, false
}
