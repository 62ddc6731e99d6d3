package value

import "fmt"

// Tag identifies which of the fourteen runtime value kinds a Value holds.
type Tag byte

const (
	TagNone Tag = iota
	TagBool
	TagInt
	TagNum
	TagStr
	TagRange
	TagTuple
	TagList
	TagMap
	TagErr
	TagFunc
	TagNative
	TagTagged
	// TagIterator is a pseudo tag: iterator values must never appear as map
	// keys, as bindings reachable from ember source, or as payloads of
	// other values, and must be rejected if they ever reach a bytecode
	// constant pool.
	TagIterator
)

var tagNames = [...]string{
	TagNone: "none", TagBool: "bool", TagInt: "int", TagNum: "num",
	TagStr: "str", TagRange: "range", TagTuple: "tuple", TagList: "list",
	TagMap: "map", TagErr: "err", TagFunc: "func", TagNative: "native",
	TagTagged: "tagged", TagIterator: "iterator",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) && tagNames[t] != "" {
		return tagNames[t]
	}

	return fmt.Sprintf("Tag(%d)", byte(t))
}

// IsPseudo reports whether t is a tag that may exist at runtime but can
// never appear in a constant pool or be produced by a literal in source.
func IsPseudo(t Tag) bool { return t == TagIterator }

// Value is the sealed tagged sum of every runtime value kind. tag is
// unexported so only this package may add new variants.
type Value interface {
	tag() Tag
}

// TagOf returns the runtime tag of v.
func TagOf(v Value) Tag { return v.tag() }

// Is implements the §3.2 invariant 6 func/native duality: is(v, TagFunc)
// holds for both interpreted and native callables.
func Is(v Value, t Tag) bool {
	vt := v.tag()
	if t == TagFunc {
		return vt == TagFunc || vt == TagNative
	}

	return vt == t
}

// ---------------------------------------------------------------------
// Singletons
// ---------------------------------------------------------------------

type noneValue struct{}

func (*noneValue) tag() Tag { return TagNone }

type boolValue struct{ v bool }

func (*boolValue) tag() Tag { return TagBool }

// NONE, TRUE and FALSE are the three canonical singletons (§3.2 invariant
// 1). They live outside any heap pool and are never freed; any operation
// that would produce one of these three values must return this exact
// pointer so identity comparisons succeed.
var (
	NONE  Value = &noneValue{}
	TRUE  Value = &boolValue{true}
	FALSE Value = &boolValue{false}
)

// Bool returns the canonical TRUE or FALSE singleton for b.
func Bool(b bool) Value {
	if b {
		return TRUE
	}

	return FALSE
}

// BoolOf extracts the Go bool carried by a TagBool value. ok is false if v
// is not TagBool.
func BoolOf(v Value) (b, ok bool) {
	bv, ok := v.(*boolValue)
	if !ok {
		return false, false
	}

	return bv.v, true
}

// ---------------------------------------------------------------------
// Primitive heap cells
// ---------------------------------------------------------------------

// Int is a 64-bit signed integer cell.
type Int struct{ V int64 }

func (*Int) tag() Tag { return TagInt }

// Num is a 64-bit IEEE-754 float cell.
type Num struct{ V float64 }

func (*Num) tag() Tag { return TagNum }

// Str is an immutable byte-sequence cell. Owned records whether this cell
// exclusively owns its backing bytes (a literal or a constructed string) or
// borrows them from another Str it was sliced/iterated from (§3.3, §9 open
// question 5). Owned only governs dupe/lifetime bookkeeping; it never
// changes what bytes V reports.
type Str struct {
	V     string
	Owned bool
}

func (*Str) tag() Tag { return TagStr }

// NewOwnedStr creates a Str that owns a fresh copy of s.
func NewOwnedStr(s string) *Str { return &Str{V: s, Owned: true} }

// NewBorrowedStr creates a Str that aliases another cell's backing bytes —
// used for substrings produced by slicing or string iteration.
func NewBorrowedStr(s string) *Str { return &Str{V: s, Owned: false} }

// Range is the half-open arithmetic sequence [Start, End) stepping by Step.
// Step must be non-zero; construction is expected to reject Step == 0
// (§3.2 invariant 5).
type Range struct {
	Start int64
	End   int64
	Step  int64
}

func (*Range) tag() Tag { return TagRange }

// NewRange validates step and constructs a Range cell.
func NewRange(start, end, step int64) (*Range, error) {
	if step == 0 {
		return nil, fmt.Errorf("range step must not be zero")
	}

	return &Range{Start: start, End: end, Step: step}, nil
}

// Tuple is a fixed-length ordered sequence. Its length never changes after
// construction; element slots may be reassigned by index (§3.2 invariant
// 4).
type Tuple struct {
	Elems []Value
}

func (*Tuple) tag() Tag { return TagTuple }

// NewTuple constructs a tuple holding copies of elems' slice header (not
// the elements themselves — containers hold references, per §3.3).
func NewTuple(elems ...Value) *Tuple {
	return &Tuple{Elems: append([]Value(nil), elems...)}
}

// List is a growable ordered sequence.
type List struct {
	Elems []Value
}

func (*List) tag() Tag { return TagList }

// NewList constructs a list from elems.
func NewList(elems ...Value) *List {
	return &List{Elems: append([]Value(nil), elems...)}
}

// Err wraps a single payload value representing a caught or throwable
// error.
type Err struct {
	Payload Value
}

func (*Err) tag() Tag { return TagErr }

// Tagged is a sum-constructor-like value: a name wrapping an inner value,
// most often NONE.
type Tagged struct {
	Name string
	Val  Value
}

func (*Tagged) tag() Tag { return TagTagged }

// ---------------------------------------------------------------------
// Callables
// ---------------------------------------------------------------------

// Module is the opaque per-module collaborator a func's offset is relative
// to. The real bytecode compiler (out of scope here) would own a constant
// table and instruction stream per module; this stand-in carries just
// enough identity for dump() and debugging.
type Module struct {
	Name string
}

// Func is an interpreted function: an entry point into a module plus its
// captured upvalues. The tree-walking evaluator in pkg/eval uses Param/Body
// /Env in place of a real Offset into compiled bytecode, but the cell still
// carries Offset/Module/ArgCount/Captures so it matches the §3.1 payload
// shape.
type Func struct {
	Offset   uint32
	ArgCount uint8
	Module   *Module
	Captures []Value

	// Param and Body/Env are the tree-walking evaluator's stand-in for a
	// real bytecode body; see pkg/eval.
	Param string
	Body  interface{}
	Env   Environment
}

func (*Func) tag() Tag { return TagFunc }

// NativeFn is a host-implemented callable body. The call site, not
// NativeFn itself, checks args against the cell's ArgCount.
type NativeFn func(args []Value) (Value, error)

// Native is a host-provided callable wrapped for calling like an ordinary
// function.
type Native struct {
	Name     string
	ArgCount uint8
	Fn       NativeFn
}

func (*Native) tag() Tag { return TagNative }

// NewNative builds a native function cell. ArgCount always reflects the
// bridge-computed count of non-implicit arguments — the "reset to 0"
// behavior noted as a defect in the design notes is not replicated here.
func NewNative(name string, argCount int, fn NativeFn) *Native {
	return &Native{Name: name, ArgCount: uint8(argCount), Fn: fn}
}

// ---------------------------------------------------------------------
// Iterator (pseudo variant)
// ---------------------------------------------------------------------

// CursorKind discriminates how an Iterator's cursor fields are
// interpreted, per the design note favoring a discriminated cursor over a
// punned usize/i64 union.
type CursorKind byte

const (
	CursorSeq   CursorKind = iota // tuple/list: U indexes Elems
	CursorBytes                   // str: U is a byte offset
	CursorInt                     // range: I is the next value to yield
	CursorMap                     // map: U indexes entries
)

// Iterator holds a reference to a duped source value and a cursor over it.
// It is the one pseudo tag: constructible only through internal/iterate,
// never through ember source, a tagged payload, or a map key.
type Iterator struct {
	Source Value
	Kind   CursorKind
	U      uint64
	I      int64
	// reuse is the tuple cell reused by successive next() calls over a
	// map, per §4.4's "callers must not retain the tuple across next
	// calls."
	reuse *Tuple
}

func (*Iterator) tag() Tag { return TagIterator }

// Reuse returns the iterator's scratch tuple for map iteration, allocating
// one on first use.
func (it *Iterator) Reuse() *Tuple {
	if it.reuse == nil {
		it.reuse = NewTuple(NONE, NONE)
	}

	return it.reuse
}
