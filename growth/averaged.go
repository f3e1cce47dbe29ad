package growth

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/codialab/panacus/hist"
)

type options struct {
	parallelism int
}

// Option configures growth computation.
type Option func(*options)

// WithParallelism bounds the number of concurrent (spec, sample-size)
// evaluations. Values <= 0 mean one worker per CPU.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

func applyOptions(optFns []Option) options {
	o := options{parallelism: runtime.GOMAXPROCS(0)}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.parallelism <= 0 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}
	return o
}

// Curves computes one averaged growth curve per threshold spec from a
// coverage histogram. The value at sample size k is the expected weight
// present in a uniformly random k-subset of the n groups,
//
//	sum_c w_c * P(X >= m(k)),  X ~ Hypergeometric(n, c, k),
//
// evaluated per histogram bucket. Buckets and sample sizes are independent,
// so (spec, k) pairs fan out across workers with no shared mutable state.
//
// With q = 0 and fixed l the curve is non-decreasing in k. With q > 0 the
// required quorum m(k) itself grows with k, so the curve may legitimately
// dip; that is a property of the statistic, not an artifact.
func Curves(ctx context.Context, h *hist.Hist, specs []Spec, optFns ...Option) ([]Curve, error) {
	o := applyOptions(optFns)
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	n := h.Groups()
	curves := make([]Curve, len(specs))
	for i, s := range specs {
		curves[i] = Curve{Spec: s, Values: make([]float64, n)}
	}
	if n == 0 {
		return curves, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)
	for i := range specs {
		for k := 1; k <= n; k++ {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				curves[i].Values[k-1] = expectedWeight(h, n, k, specs[i].Min(k))
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return curves, nil
}

// expectedWeight returns sum_c w_c * P(X >= m | n, c, k).
//
// The tail is evaluated as 1 - sum_{i=i0}^{m-1} T_i with
// i0 = max(0, k+c-n), the smallest structurally possible overlap. Every
// term is carried by a multiplicative recurrence in the log domain; raw
// binomial coefficients are never materialized, so the computation stays in
// floating-point range for group counts in the thousands.
func expectedWeight(h *hist.Hist, n, k, m int) float64 {
	if m <= 0 {
		// Present unconditionally, uncovered items included.
		return float64(h.Total())
	}
	if m > k {
		// A k-subset can never contain more than k covering groups.
		return 0
	}

	// lnCnk = ln C(n,k), built from ratio terms.
	lnCnk := 0.0
	for t := 1; t <= k; t++ {
		lnCnk += math.Log(float64(n-k+t)) - math.Log(float64(t))
	}

	var (
		acc       float64
		lnStart   float64 // ln T_{i0} for the current c
		haveStart bool
	)
	for c := m; c <= n; c++ {
		i0 := k + c - n
		if i0 < 0 {
			i0 = 0
		}
		// Advance ln T_{i0} across increasing c.
		switch {
		case !haveStart && i0 == 0:
			// First bucket in the i0=0 regime: T_0 = C(n-c,k)/C(n,k).
			lnStart = 0
			for j := 0; j < k; j++ {
				lnStart += math.Log(float64(n-c-j)) - math.Log(float64(n-j))
			}
			haveStart = true
		case !haveStart:
			// First bucket already past the i0=0 regime:
			// T_{i0} = C(c,i0)/C(n,k), since C(n-c, k-i0) = C(n-c, n-c) = 1.
			lnStart = -lnCnk
			for t := 1; t <= i0; t++ {
				lnStart += math.Log(float64(c-i0+t)) - math.Log(float64(t))
			}
			haveStart = true
		case i0 == 0:
			// T_0(c) / T_0(c-1) = (n-c+1-k)/(n-c+1).
			lnStart += math.Log(float64(n-c+1-k)) - math.Log(float64(n-c+1))
		default:
			if i0 == 1 {
				// Regime switch: i0 was 0 for c-1.
				lnStart = math.Log(float64(c)) - lnCnk
			} else {
				// C(c,i0) / C(c-1,i0-1) = c/i0.
				lnStart += math.Log(float64(c)) - math.Log(float64(i0))
			}
		}

		w := h.Buckets[c]
		if w == 0 {
			continue
		}

		var p float64
		if m <= i0 {
			// At least i0 covering groups are always drawn.
			p = 1
		} else {
			sum := 0.0
			lnT := lnStart
			for i := i0; i < m; i++ {
				sum += math.Exp(lnT)
				lnT += math.Log(float64(c-i)) + math.Log(float64(k-i)) -
					math.Log(float64(i+1)) - math.Log(float64(n-c-k+i+1))
			}
			p = 1 - sum
			if math.IsNaN(p) || p < -1e-9 || p > 1+1e-9 {
				panic(fmt.Sprintf("hypergeometric tail out of range: P=%g for n=%d c=%d k=%d m=%d", p, n, c, k, m))
			}
			if p < 0 {
				p = 0
			} else if p > 1 {
				p = 1
			}
		}
		acc += float64(w) * p
	}
	return acc
}
