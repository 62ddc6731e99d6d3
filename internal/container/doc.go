// Package container implements the indexed get/set, membership, and
// length operations §4.3 of the specification defines over tuple, list,
// str, and map values. Every exported function takes already-resolved
// value.Value arguments; callers (pkg/eval) are responsible for routing
// bytecode-level index expressions here.
package container
