// Package ops implements the three roster operations: Enumerate (ordered
// side-effect visit), Sorted (fold to a new roster with sorted member
// lists) and Earliest (fold to the lexicographically smallest member).
//
// Sorted and Earliest never mutate their input; both re-sort copies, so
// member-list order in the source does not affect their results.
package ops
