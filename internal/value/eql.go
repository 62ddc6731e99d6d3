package value

// Eql implements structural equality (§4.1). Cross-type equality only
// exists between int and num (numeric equality after exact-to-float
// conversion). Map equality falls back to cell identity (§9 open question
// 3, documented limitation); every other container is elementwise
// recursive. err and tagged descend into their payload. func and native
// are equal only to themselves (pointer identity) and never to each other
// (§3.2 invariant 6).
//
// Panics if a or b is an iterator — reaching one here is a programming
// error (§7.2), not a runtime error.
func Eql(a, b Value) bool {
	if _, ok := a.(*Iterator); ok {
		panic("value: eql of an iterator is a programming error")
	}
	if _, ok := b.(*Iterator); ok {
		panic("value: eql of an iterator is a programming error")
	}

	switch x := a.(type) {
	case *noneValue:
		_, ok := b.(*noneValue)

		return ok
	case *boolValue:
		y, ok := b.(*boolValue)

		return ok && x.v == y.v
	case *Int:
		switch y := b.(type) {
		case *Int:
			return x.V == y.V
		case *Num:
			return float64(x.V) == y.V
		default:
			return false
		}
	case *Num:
		switch y := b.(type) {
		case *Num:
			return x.V == y.V
		case *Int:
			return x.V == float64(y.V)
		default:
			return false
		}
	case *Str:
		y, ok := b.(*Str)

		return ok && x.V == y.V
	case *Range:
		y, ok := b.(*Range)

		return ok && x.Start == y.Start && x.End == y.End && x.Step == y.Step
	case *Tuple:
		y, ok := b.(*Tuple)
		if !ok || len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !Eql(x.Elems[i], y.Elems[i]) {
				return false
			}
		}

		return true
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !Eql(x.Elems[i], y.Elems[i]) {
				return false
			}
		}

		return true
	case *Map:
		// Documented limitation: map equality is cell identity, not
		// structural (§9 open question 3).
		y, ok := b.(*Map)

		return ok && x == y
	case *Err:
		y, ok := b.(*Err)

		return ok && Eql(x.Payload, y.Payload)
	case *Tagged:
		y, ok := b.(*Tagged)

		return ok && x.Name == y.Name && Eql(x.Val, y.Val)
	case *Func:
		y, ok := b.(*Func)

		return ok && x == y
	case *Native:
		y, ok := b.(*Native)

		return ok && x == y
	default:
		return false
	}
}
