package treewidth

// Color is one trit of a TernaryFun: whether a bag vertex is currently
// excluded from the dominating set (WHITE), excluded but already dominated
// by something outside the current subtree (GRAY), or included (BLACK).
type Color int

const (
	White Color = iota
	Gray
	Black
)

// MaxExponent bounds the largest bag size this package's ternary encoding
// supports; pow3[MaxExponent] must still fit comfortably in a uint64 index.
const MaxExponent = 18

// pow3[i] = 3^i, precomputed up to MaxExponent.
var pow3 = [MaxExponent + 1]uint64{
	1, 3, 9, 27, 81, 243, 729, 2187, 6561, 19683,
	59049, 177147, 531441, 1594323, 4782969, 14348907, 43046721, 129140163, 387420489,
}

// TernaryFun packs a bag's per-vertex Color assignment into a single base-3
// integer, one trit per bag position.
type TernaryFun uint64

// cut removes the trit at position x from f, shifting every trit above it
// down by one position.
func cut(f TernaryFun, x int) TernaryFun {
	pref := f % TernaryFun(pow3[x])
	suf := (f / TernaryFun(pow3[x+1])) * TernaryFun(pow3[x])
	return pref + suf
}

// insert shifts every trit at or above position x up by one and sets the
// newly opened position x to c.
func insert(f TernaryFun, x int, c Color) TernaryFun {
	pref := f % TernaryFun(pow3[x])
	suf := (f - pref) * 3
	return pref + suf + TernaryFun(c)*TernaryFun(pow3[x])
}

// set overwrites the trit at position x with c.
func set(f TernaryFun, x int, c Color) TernaryFun {
	return f + TernaryFun(int(c)-int(at(f, x)))*TernaryFun(pow3[x])
}

// at returns the trit at position x.
func at(f TernaryFun, x int) Color {
	return Color((f / TernaryFun(pow3[x])) % 3)
}
