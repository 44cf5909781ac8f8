// Package rrules implements the annotated reduction rules that shrink a
// dominating-set instance.Instance while preserving its optimum: each rule
// either removes vertices/edges it has proven safe to remove, or commits a
// vertex to (or excludes it from) the dominating set.
//
// Every rule is a func(*instance.Instance) bool — it reports whether it
// changed anything — wrapped in a Rule value that additionally carries a
// name and the two complexity classes (dense/sparse graph) from the source
// reduction this rule implements (Alber, Moon & Moser, Abu-Khzam et al.;
// see each rule's doc comment for its citation). Reduce tries the rules in
// list order, skipping those whose dense complexity exceeds its budget, and
// restarts from the first rule after every rule that fires, until none of
// them fire.
package rrules
