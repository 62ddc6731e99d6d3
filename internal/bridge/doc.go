// Package bridge implements the host/runtime conversion described in §4.5:
// converting Go values into runtime value.Value cells, converting runtime
// cells back into Go values of a caller-specified type, and wrapping Go
// functions as value.Native callables with compile-time-style argument
// introspection (via reflection, since Go lacks the original's
// compile-time codegen).
package bridge
