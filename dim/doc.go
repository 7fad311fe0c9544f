// Package dim defines the dimension parameters used by the fixed-size
// linear-algebra types in package linalg.
//
// Go generics have no integer type parameters, so a dimension is carried by a
// type: an empty struct whose N method returns the size. Two matrices can
// only be combined when their dimension types line up, which moves every
// shape check into the compiler:
//
//	var a linalg.Matrix[dim.D2, dim.D3]
//	var b linalg.Matrix[dim.D3, dim.D4]
//	c := linalg.Mul(a, b) // linalg.Matrix[dim.D2, dim.D4]
//
// D1 through D8 cover every size up to Max. Callers may declare their own
// Size types; Of rejects anything outside 1..Max.
package dim
