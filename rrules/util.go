package rrules

import "github.com/dshunter/dshunter/internal/sortedset"

// containsAll reports whether a ⊇ b (every element of b is present in a),
// matching the reference implementation's contains(a, b).
func containsAll(a, b []int) bool { return sortedset.ContainsAll(a, b) }

func unite(a, b []int) []int { return sortedset.Union(a, b) }

func intersect(a, b []int) []int { return sortedset.Intersect(a, b) }

// remove returns a \ b, matching the reference implementation's remove(a, b).
func remove(a, b []int) []int { return sortedset.Difference(a, b) }
