// Package sortedset provides ordered-merge primitives over ascending []int
// slices: insert, remove, union, intersect, and difference, all O(|A|+|B|).
//
// Every neighbour set cached by instance.Instance (adjacency, dominators,
// dominatees, ...) is kept sorted ascending so that reduction rules can
// compute prison/guard/exit partitions and common-neighbour tests in linear
// time instead of falling back to map lookups.
package sortedset

import "sort"

// Contains reports whether x is present in the ascending slice a.
func Contains(a []int, x int) bool {
	i := sort.SearchInts(a, x)
	return i < len(a) && a[i] == x
}

// ContainsAll reports whether every element of b is present in a.
// Both slices must be sorted ascending. Complexity O(|a|+|b|).
func ContainsAll(a, b []int) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			return false
		default:
			i++
			j++
		}
	}
	return j == len(b)
}

// Insert inserts x into the ascending slice a, preserving order. A no-op if
// x is already present.
func Insert(a []int, x int) []int {
	i := sort.SearchInts(a, x)
	if i < len(a) && a[i] == x {
		return a
	}
	a = append(a, 0)
	copy(a[i+1:], a[i:])
	a[i] = x
	return a
}

// Remove deletes x from the ascending slice a, if present.
func Remove(a []int, x int) []int {
	i := sort.SearchInts(a, x)
	if i < len(a) && a[i] == x {
		a = append(a[:i], a[i+1:]...)
	}
	return a
}

// Union returns the sorted union of a and b. Neither input is modified.
func Union(a, b []int) []int {
	res := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			res = append(res, a[i])
			i++
		case a[i] > b[j]:
			res = append(res, b[j])
			j++
		default:
			res = append(res, a[i])
			i++
			j++
		}
	}
	res = append(res, a[i:]...)
	res = append(res, b[j:]...)
	return res
}

// Intersect returns the sorted intersection of a and b.
func Intersect(a, b []int) []int {
	res := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			res = append(res, a[i])
			i++
			j++
		}
	}
	return res
}

// Difference returns a \ b, sorted ascending.
func Difference(a, b []int) []int {
	res := make([]int, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) || a[i] < b[j] {
			res = append(res, a[i])
			i++
		} else if a[i] > b[j] {
			j++
		} else {
			i++
			j++
		}
	}
	return res
}
