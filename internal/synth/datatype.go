package synth

import (
	"fmt"

	"latticeproof/internal/logic"
	"latticeproof/internal/smt"
)

// Datatype builds the enumeration sort for a lattice domain. The domain must
// be a Variant whose alternatives are all nullary; anything else yields a
// *MalformedDomainError.
func Datatype(name logic.LatticeSym, domain logic.Type) (smt.Datatype, error) {
	sort := logic.SymbolName(name)
	if domain == nil {
		return smt.Datatype{}, &MalformedDomainError{Lattice: sort, Domain: "<none>", Reason: "no domain type"}
	}

	switch t := domain.(type) {
	case logic.Variant:
		if len(t.Alternatives) == 0 {
			return smt.Datatype{}, &MalformedDomainError{Lattice: sort, Domain: t.Name, Reason: "variant has no alternatives"}
		}
		variants := make([]string, 0, len(t.Alternatives))
		for _, alt := range t.Alternatives {
			if !alt.Nullary() {
				return smt.Datatype{}, &MalformedDomainError{
					Lattice: sort,
					Domain:  t.Name,
					Reason:  fmt.Sprintf("alternative %s takes %d argument(s)", alt.Name, len(alt.Params)),
				}
			}
			variants = append(variants, alt.Name)
		}
		return smt.Datatype{Sort: sort, Variants: variants}, nil
	case logic.Primitive:
		return smt.Datatype{}, &MalformedDomainError{Lattice: sort, Domain: t.Name, Reason: "not a variant type"}
	default:
		panic(fmt.Sprintf("synth: unhandled type %T", domain))
	}
}
