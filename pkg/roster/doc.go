// Package roster defines the insertion-ordered band roster collection and
// the Result[T] value used to thread success or failure through operations
// on it.
//
// Highlights:
// - Roster: ordered band -> member-list mapping with lazy enumeration
// - Entry: named band/members record used for all pair-wise iteration
// - Success/Fail: construct Result[T]; FailFrom carries failures across types
// - Sentinel errors for empty rosters, member lists and band names
package roster
