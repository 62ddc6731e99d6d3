// Package cast implements the `as` operation of §4.6: converting a value
// to a requested tag, erroring on conversions the specification reserves
// or leaves undefined.
package cast
