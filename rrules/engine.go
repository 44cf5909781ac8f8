package rrules

import "github.com/dshunter/dshunter/instance"

// Rule pairs a reduction function with its name and worst-case complexity
// exponents, mirroring DSHunter::ReductionRule. ComplexityDense/Sparse are
// c such that the rule costs O(|G|^c) on a dense / sparse graph
// respectively; Reduce uses ComplexityDense as the cutoff for its optional
// budget argument.
type Rule struct {
	Name            string
	Apply           func(g *instance.Instance) bool
	ComplexityDense int
	ComplexitySparse int

	applicationCount int
	successCount     int
}

// Applications returns how many times Reduce has tried this rule.
func (r *Rule) Applications() int { return r.applicationCount }

// Successes returns how many of those tries actually changed the instance.
func (r *Rule) Successes() int { return r.successCount }

// run applies the rule once, bumping its counters.
func (r *Rule) run(g *instance.Instance) bool {
	r.applicationCount++
	applied := r.Apply(g)
	if applied {
		r.successCount++
	}
	return applied
}

// Reduce applies rules, restarting from the first rule every time one
// fires, until a full pass finds nothing left to do. Rules whose
// ComplexityDense exceeds maxComplexity are skipped entirely, letting
// callers run a cheap pre-pass (e.g. complexity 1) before paying for the
// expensive Alber main rules. maxComplexity == 0 skips every rule (every
// rule has ComplexityDense >= 1); pass a large ceiling for "no limit."
func Reduce(g *instance.Instance, rules []*Rule, maxComplexity int) {
	for {
		progressed := false
		for _, rule := range rules {
			if rule.ComplexityDense > maxComplexity {
				continue
			}
			if rule.run(g) {
				progressed = true
				break
			}
		}
		if !progressed {
			return
		}
	}
}
