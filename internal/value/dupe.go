package value

// Dupe is the shallow-copy policy the heap's allocator contract exposes
// (§4.2 glossary "Dupe"): singletons return themselves; primitives produce
// a fresh cell carrying the same payload; containers get a fresh outer
// shell with their children shared, not cloned. internal/heap.Pool.Dupe
// wraps this to also register the new cell for GC tracking.
func Dupe(v Value) Value {
	switch x := v.(type) {
	case *noneValue, *boolValue:
		return v
	case *Int:
		return &Int{V: x.V}
	case *Num:
		return &Num{V: x.V}
	case *Str:
		// Always produces an owned copy — see SPEC_FULL §9 open question 5.
		return NewOwnedStr(x.V)
	case *Range:
		return &Range{Start: x.Start, End: x.End, Step: x.Step}
	case *Tuple:
		return &Tuple{Elems: append([]Value(nil), x.Elems...)}
	case *List:
		return &List{Elems: append([]Value(nil), x.Elems...)}
	case *Map:
		dup := NewMap()
		dup.entries = append([]mapEntry(nil), x.entries...)
		for h, idxs := range x.buckets {
			dup.buckets[h] = append([]int(nil), idxs...)
		}

		return dup
	case *Err:
		return &Err{Payload: x.Payload}
	case *Tagged:
		return &Tagged{Name: x.Name, Val: x.Val}
	case *Func:
		return &Func{
			Offset: x.Offset, ArgCount: x.ArgCount, Module: x.Module,
			Captures: append([]Value(nil), x.Captures...),
			Param:    x.Param, Body: x.Body, Env: x.Env,
		}
	case *Native:
		return &Native{Name: x.Name, ArgCount: x.ArgCount, Fn: x.Fn}
	case *Iterator:
		return &Iterator{Source: x.Source, Kind: x.Kind, U: x.U, I: x.I}
	default:
		panic("value: dupe of unknown value kind")
	}
}
