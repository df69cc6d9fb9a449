// Package fold contains the ordered iteration primitives the roster
// operations are built on.
//
// Highlights:
// - Fold: left-to-right accumulation with return-threaded accumulator
// - Each: ordered side-effect visit
// - MapSlice: element-wise transform into a fresh slice
package fold
