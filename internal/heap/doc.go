// Package heap implements the allocator contract the runtime core consumes
// (§4.2): a Pool that hands out fresh value cells, dupes existing ones per
// the variant-specific shallow-copy policy in internal/value, and
// reclaims cells no longer reachable from a supplied root set.
//
// Go's own runtime already garbage-collects the memory backing every cell,
// so Pool.Collect is a logical mark-sweep over the cells this package
// tracks, not a manual allocator: it exists to exercise and test the
// reachability/Deinit contract the specification describes (§4.1 Deinit,
// §4.2, §6 "a traversal yielding direct child references"), and to give
// the "-v" CLI flag something to report. A real embedding need not call
// Collect at all — letting tracked-but-unreachable cells simply age out of
// Go's heap is equally correct, just unobserved here.
//
// Per §5, a Pool belongs to exactly one VM and is touched from exactly one
// goroutine; nothing in this package takes a lock, which is itself the
// documentation of that invariant.
package heap
