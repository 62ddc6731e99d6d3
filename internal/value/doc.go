// Package value implements the tagged runtime value representation for the
// ember language: the closed sum of value kinds, the three canonical
// singletons, and the per-variant operations (dump, hash, eql, deinit,
// child traversal) that the rest of the runtime — the container protocol,
// the iteration protocol, the host bridge, and the garbage collector — are
// built on top of.
//
// Value kinds:
//
//	none, bool, int, num, str, range, tuple, list, map, err, func, native,
//	tagged, iterator (pseudo — never constructible from ember source).
//
// Every kind but the three singletons (NONE, TRUE, FALSE) is a heap cell: a
// pointer-typed value produced by internal/heap and reachable only through
// references held by containers, the environment, or the evaluator's
// operand stack. Singletons are package-level values outside any pool and
// are never freed.
//
// The Value interface is sealed (tag() is unexported) so no package outside
// value can introduce a fifteenth kind — mirroring the "closed sum type"
// design note for the value representation.
package value
