package rrules

// DefaultRules returns the canonical reduction pipeline, in the order the
// reference solver applies them. Reduce restarts from the front of this
// list every time a rule fires, so placement matters: cheap, broadly
// applicable rules (force-edge propagation, disregard marking) come first
// to shrink the instance before the more expensive Alber rules run.
//
// HittingSetRule, DisregardedNeighbourhoodRule, DominatedNeighbourhoodTakingRule,
// ContractRule and LocalBruteforceRule are deliberately not part of this
// list, matching the reference's own defaults — they are available
// individually for callers that want them.
func DefaultRules() []*Rule {
	return []*Rule{
		ForceEdgeRule,
		DisregardRule,
		DominatedNeighbourhoodMarkingRule,
		RemoveDisregardedRule,
		SingleDominatorRule,
		SameDominatorsRule,
		AlberSimpleRule1,
		AlberSimpleRule2,
		AlberSimpleRule3,
		AlberSimpleRule4,
		AlberMainRule1,
		AlberMainRule2,
	}
}
