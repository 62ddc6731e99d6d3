package value

// Children returns the direct references v holds to other values, for the
// GC's reachability traversal (§4.2/§6: "a traversal yielding direct child
// references"). It never recurses past one level; the caller is expected
// to walk the graph itself.
func Children(v Value) []Value {
	switch x := v.(type) {
	case *Tuple:
		return x.Elems
	case *List:
		return x.Elems
	case *Map:
		entries := x.Entries()
		out := make([]Value, 0, len(entries)*2)
		for _, e := range entries {
			out = append(out, e.Key, e.Val)
		}

		return out
	case *Func:
		return x.Captures
	case *Tagged:
		return []Value{x.Val}
	case *Err:
		return []Value{x.Payload}
	case *Iterator:
		return []Value{x.Source}
	default:
		return nil
	}
}

// Deinit releases the non-recursive resources a cell owns — the backing
// arrays of a tuple/list, a map's internal buffers, a func's captures array
// — without following references to children (§4.1). The GC is responsible
// for transitive reclamation via Children; Deinit only drops this cell's
// own buffers so nothing still holds them alive.
func Deinit(v Value) {
	switch x := v.(type) {
	case *Tuple:
		x.Elems = nil
	case *List:
		x.Elems = nil
	case *Map:
		x.entries = nil
		x.buckets = nil
	case *Func:
		x.Captures = nil
	default:
		// Primitives and the remaining single-reference variants own no
		// separate buffer beyond the cell itself.
	}
}
