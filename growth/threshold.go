// Package growth derives pangenome growth curves from coverage data: the
// expected present weight as a function of sample count, either averaged
// over all sample orderings (hypergeometric model over a histogram) or
// exact for one fixed ordering.
package growth

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Spec pairs an absolute coverage threshold l with a quorum fraction q.
// At sample size k an item counts as present when at least
// max(l, ceil(q*k)) of the k considered groups cover it.
type Spec struct {
	Coverage int
	Quorum   float64
}

// ErrInvalidThreshold reports a threshold rejected before any computation.
type ErrInvalidThreshold struct {
	Spec   Spec
	Reason string
}

func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("invalid threshold (coverage=%d, quorum=%g): %s", e.Spec.Coverage, e.Spec.Quorum, e.Reason)
}

// Validate rejects negative coverage and quorum outside [0,1].
func (s Spec) Validate() error {
	if s.Coverage < 0 {
		return &ErrInvalidThreshold{Spec: s, Reason: "coverage must be non-negative"}
	}
	if s.Quorum < 0 || s.Quorum > 1 || math.IsNaN(s.Quorum) {
		return &ErrInvalidThreshold{Spec: s, Reason: "quorum must be in [0,1]"}
	}
	return nil
}

// Min returns the effective minimum number of covering groups at sample
// size k: max(l, ceil(q*k)).
func (s Spec) Min(k int) int {
	m := int(math.Ceil(s.Quorum * float64(k)))
	if s.Coverage > m {
		m = s.Coverage
	}
	return m
}

func (s Spec) String() string {
	return fmt.Sprintf("coverage>=%d,quorum>=%g", s.Coverage, s.Quorum)
}

// ParseSpecs builds threshold specs from comma-separated coverage and
// quorum lists, paired positionally. A single value broadcasts against a
// longer partner list; two lists longer than one must have equal length.
// Empty strings mean the defaults coverage=1, quorum=0.
func ParseSpecs(coverage, quorum string) ([]Spec, error) {
	if coverage == "" {
		coverage = "1"
	}
	if quorum == "" {
		quorum = "0"
	}
	covs := strings.Split(coverage, ",")
	quos := strings.Split(quorum, ",")
	if len(covs) > 1 && len(quos) > 1 && len(covs) != len(quos) {
		return nil, fmt.Errorf("coverage list has %d entries, quorum list %d; lists longer than one must match", len(covs), len(quos))
	}

	n := len(covs)
	if len(quos) > n {
		n = len(quos)
	}
	specs := make([]Spec, n)
	for i := range specs {
		cs := strings.TrimSpace(covs[min(i, len(covs)-1)])
		qs := strings.TrimSpace(quos[min(i, len(quos)-1)])
		l, err := strconv.Atoi(cs)
		if err != nil {
			return nil, fmt.Errorf("invalid coverage threshold %q", cs)
		}
		q, err := strconv.ParseFloat(qs, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quorum threshold %q", qs)
		}
		specs[i] = Spec{Coverage: l, Quorum: q}
		if err := specs[i].Validate(); err != nil {
			return nil, err
		}
	}
	return specs, nil
}

// Curve is one growth curve: Values[k-1] is the (expected or exact)
// present weight at sample size k.
type Curve struct {
	Spec   Spec
	Values []float64
}
