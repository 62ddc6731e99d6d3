package value

import (
	"math"
	"reflect"
)

// fnvOffset and fnvPrime are the 32-bit FNV-1a constants, used both for
// string content hashing and as the mixing step for every other kind.
const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
)

func mixByte(h uint32, b byte) uint32 {
	h ^= uint32(b)
	h *= fnvPrime

	return h
}

func mixBytes(h uint32, bs []byte) uint32 {
	for _, b := range bs {
		h = mixByte(h, b)
	}

	return h
}

func mixUint64(h uint32, v uint64) uint32 {
	for i := 0; i < 8; i++ {
		h = mixByte(h, byte(v>>(8*uint(i))))
	}

	return h
}

// numberDomain is the shared tag-neutral marker mixed into both Int and Num
// hashes so that eql-equal numbers (§3.2 invariant 3: int<->num equality
// after exact-to-float conversion) always hash equally (§3.2 invariant 3 /
// §8: eql(a,b) => hash(a) == hash(b)).
const numberDomain uint32 = 0x6e756d00 // "num\0"

func numericHash(f float64) uint32 {
	return mixUint64(numberDomain, math.Float64bits(f))
}

// identityHash mixes the tag with the pointer identity of a heap cell.
// Used for containers with unbounded content (list, map, tuple) instead of
// recursing structurally, which would be unsafe across cycles (§4.1: "keeps
// hashing cheap and avoids recursion through cyclic graphs").
func identityHash(t Tag, length int, ptr interface{}) uint32 {
	h := mixByte(fnvOffset, byte(t))
	h = mixUint64(h, uint64(length))

	return mixUint64(h, uint64(reflect.ValueOf(ptr).Pointer()))
}

// Hash computes the 32-bit runtime hash of v. Panics if v is (or
// transitively contains, for err/tagged) an iterator — reaching an
// iterator from hash is a programming error (§7.2), not a runtime error.
func Hash(v Value) uint32 {
	switch x := v.(type) {
	case *noneValue:
		return mixByte(fnvOffset, byte(TagNone))
	case *boolValue:
		b := byte(0)
		if x.v {
			b = 1
		}

		return mixByte(mixByte(fnvOffset, byte(TagBool)), b)
	case *Int:
		return numericHash(float64(x.V))
	case *Num:
		return numericHash(x.V)
	case *Str:
		return mixBytes(mixByte(fnvOffset, byte(TagStr)), []byte(x.V))
	case *Range:
		h := mixByte(fnvOffset, byte(TagRange))
		h = mixUint64(h, uint64(x.Start))
		h = mixUint64(h, uint64(x.End))

		return mixUint64(h, uint64(x.Step))
	case *Tuple:
		return identityHash(TagTuple, len(x.Elems), x)
	case *List:
		return identityHash(TagList, len(x.Elems), x)
	case *Map:
		return identityHash(TagMap, x.Len(), x)
	case *Err:
		h := mixByte(fnvOffset, byte(TagErr))

		return mixUint64(h, uint64(Hash(x.Payload)))
	case *Tagged:
		h := mixBytes(mixByte(fnvOffset, byte(TagTagged)), []byte(x.Name))

		return mixUint64(h, uint64(Hash(x.Val)))
	case *Func:
		return identityHash(TagFunc, 0, x)
	case *Native:
		return identityHash(TagNative, 0, x)
	case *Iterator:
		panic("value: hash of an iterator is a programming error")
	default:
		panic("value: hash of unknown value kind")
	}
}
