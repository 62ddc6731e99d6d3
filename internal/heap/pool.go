package heap

import "github.com/conneroisu/emberlang/internal/value"

// Pool tracks every heap cell allocated for one VM so Collect can sweep
// ones no longer reachable from a caller-supplied root set. Singletons
// (value.NONE/TRUE/FALSE) are never tracked — they live outside any pool
// and are never freed (§3.3).
type Pool struct {
	cells     map[value.Value]struct{}
	allocs    uint64
	collected uint64
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{cells: make(map[value.Value]struct{})}
}

func isSingleton(v value.Value) bool {
	return v == value.NONE || v == value.TRUE || v == value.FALSE
}

// track registers a freshly constructed cell as reachable from a scratch
// root, per the alloc() contract ("fresh uninitialized cell, reachable
// from a scratch root"). Go's composite literals construct each variant's
// fields atomically, so — unlike a manual allocator — there is no window
// where a tracked cell has an arbitrary tag; the two-phase alloc-then-
// assign-variant the specification describes collapses into a single
// constructor call here.
func (p *Pool) track(v value.Value) value.Value {
	if isSingleton(v) {
		return v
	}
	p.cells[v] = struct{}{}
	p.allocs++

	return v
}

// Dupe performs the variant-specific shallow copy (internal/value.Dupe)
// and tracks the result, mirroring alloc()'s reachable-from-scratch-root
// contract for the copy.
func (p *Pool) Dupe(v value.Value) value.Value {
	d := value.Dupe(v)
	if d == v {
		// singleton: Dupe returned the same pointer, nothing to track.
		return d
	}

	return p.track(d)
}

// NewInt, NewNum, ... are the typed allocation entry points: each is
// alloc() specialized to one variant, since Go has no generic "blank cell"
// a caller could later decide the tag of.
func (p *Pool) NewInt(v int64) *value.Int { return p.track(&value.Int{V: v}).(*value.Int) }

func (p *Pool) NewNum(v float64) *value.Num { return p.track(&value.Num{V: v}).(*value.Num) }

func (p *Pool) NewOwnedStr(s string) *value.Str {
	return p.track(value.NewOwnedStr(s)).(*value.Str)
}

func (p *Pool) NewBorrowedStr(s string) *value.Str {
	return p.track(value.NewBorrowedStr(s)).(*value.Str)
}

func (p *Pool) NewRange(start, end, step int64) (*value.Range, error) {
	r, err := value.NewRange(start, end, step)
	if err != nil {
		return nil, err
	}

	return p.track(r).(*value.Range), nil
}

func (p *Pool) NewTuple(elems ...value.Value) *value.Tuple {
	return p.track(value.NewTuple(elems...)).(*value.Tuple)
}

func (p *Pool) NewList(elems ...value.Value) *value.List {
	return p.track(value.NewList(elems...)).(*value.List)
}

func (p *Pool) NewMap() *value.Map { return p.track(value.NewMap()).(*value.Map) }

func (p *Pool) NewErr(payload value.Value) *value.Err {
	return p.track(&value.Err{Payload: payload}).(*value.Err)
}

func (p *Pool) NewTagged(name string, v value.Value) *value.Tagged {
	return p.track(&value.Tagged{Name: name, Val: v}).(*value.Tagged)
}

func (p *Pool) NewFunc(f *value.Func) *value.Func { return p.track(f).(*value.Func) }

func (p *Pool) NewNative(name string, argCount int, fn value.NativeFn) *value.Native {
	return p.track(value.NewNative(name, argCount, fn)).(*value.Native)
}

func (p *Pool) NewIterator(it *value.Iterator) *value.Iterator {
	return p.track(it).(*value.Iterator)
}

// Stats summarizes pool activity for diagnostics.
type Stats struct {
	Live       int
	Allocated  uint64
	Collected  uint64
}

// Stats reports the pool's current size and lifetime counters.
func (p *Pool) Stats() Stats {
	return Stats{Live: len(p.cells), Allocated: p.allocs, Collected: p.collected}
}

// Collect marks every cell transitively reachable from roots and sweeps
// (Deinit's) every tracked cell that was not reached, reporting how many
// were swept. Cycles through lists/maps/tuples are tolerated by the
// mark phase's visited set (§3.3).
func (p *Pool) Collect(roots []value.Value) int {
	reached := make(map[value.Value]struct{}, len(p.cells))
	stack := append([]value.Value(nil), roots...)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v == nil || isSingleton(v) {
			continue
		}
		if _, ok := reached[v]; ok {
			continue
		}
		reached[v] = struct{}{}
		stack = append(stack, value.Children(v)...)
	}

	swept := 0
	for v := range p.cells {
		if _, ok := reached[v]; ok {
			continue
		}
		value.Deinit(v)
		delete(p.cells, v)
		swept++
	}
	p.collected += uint64(swept)

	return swept
}
