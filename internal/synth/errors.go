package synth

import (
	"errors"
	"fmt"
)

// ErrMalformedDomain is matched by every MalformedDomainError via errors.Is.
var ErrMalformedDomain = errors.New("malformed lattice domain")

// MalformedDomainError reports a lattice whose domain is not a finite
// enumeration of nullary constructors.
type MalformedDomainError struct {
	Lattice string
	Domain  string
	Reason  string
}

func (e *MalformedDomainError) Error() string {
	return fmt.Sprintf("lattice %s: domain %s: %s", e.Lattice, e.Domain, e.Reason)
}

func (e *MalformedDomainError) Is(target error) bool {
	return target == ErrMalformedDomain
}
