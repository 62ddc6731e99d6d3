// Package iterate implements the iteration protocol of §4.4: constructing
// a fresh value.Iterator over a dup of a range/str/tuple/list/map source,
// and advancing it one step at a time via Next.
package iterate
