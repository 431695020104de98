package smt

// Order axioms for a relation over a sort. Each is a pure function of its two
// arguments and does not look at any clause.

// Reflexivity is: forall x. leq(x, x).
func Reflexivity(sort, leq string) Axiom {
	x := Var{Name: "x"}
	return Axiom{
		Name: "reflexivity",
		Body: Forall{
			Vars: []Sorted{{"x", sort}},
			Body: Apply{Name: leq, Args: []Formula{x, x}},
		},
	}
}

// AntiSymmetry is: forall x, y. leq(x, y) and leq(y, x) implies x = y.
func AntiSymmetry(sort, leq string) Axiom {
	x, y := Var{Name: "x"}, Var{Name: "y"}
	return Axiom{
		Name: "anti-symmetri",
		Body: Forall{
			Vars: []Sorted{{"x", sort}, {"y", sort}},
			Body: Implies{
				Lhs: Conj(apply(leq, x, y), apply(leq, y, x)),
				Rhs: Equal(x, y),
			},
		},
	}
}

// Transitivity is: forall x, y, z. leq(x, y) and leq(y, z) implies leq(x, z).
func Transitivity(sort, leq string) Axiom {
	x, y, z := Var{Name: "x"}, Var{Name: "y"}, Var{Name: "z"}
	return Axiom{
		Name: "transitivity",
		Body: Forall{
			Vars: []Sorted{{"x", sort}, {"y", sort}, {"z", sort}},
			Body: Implies{
				Lhs: Conj(apply(leq, x, y), apply(leq, y, z)),
				Rhs: apply(leq, x, z),
			},
		},
	}
}

// OrderAxioms returns the three partial-order axioms in emission order.
func OrderAxioms(sort, leq string) []Axiom {
	return []Axiom{
		Reflexivity(sort, leq),
		AntiSymmetry(sort, leq),
		Transitivity(sort, leq),
	}
}

func apply(name string, args ...Formula) Apply {
	return Apply{Name: name, Args: args}
}
