package ops

import (
	"fmt"
	"slices"

	"github.com/ib-77/rosterfold/pkg/roster"
	"github.com/ib-77/rosterfold/pkg/roster/fold"
)

// Enumerate visits every entry once, in insertion order, applying the
// supplied side effect. The roster is not changed and nothing is returned.
func Enumerate(r *roster.Roster, visit func(e roster.Entry)) {
	for e := range r.All() {
		visit(e)
	}
}

// Sorted returns a new roster with the same bands in the same order, where
// every member list is an ascending sorted copy of the source list. The
// source roster is never mutated.
func Sorted(r *roster.Roster) *roster.Roster {
	return fold.Fold(r.Entries(), roster.New(),
		func(acc *roster.Roster, e roster.Entry) *roster.Roster {
			// bands come from an already validated roster
			_ = acc.Set(e.Band, sortedMembers(e.Members))
			return acc
		})
}

// Earliest resolves the lexicographically smallest member name across all
// member lists. An empty roster fails with ErrEmptyRoster; an entry with no
// members fails with ErrEmptyMemberList wrapped with the band name.
func Earliest(r *roster.Roster) roster.Result[string] {
	if r.Len() == 0 {
		return roster.Fail[string](roster.ErrEmptyRoster)
	}

	type memo struct {
		seeded bool
		value  string
	}

	out := fold.Fold(r.Entries(), roster.Success(memo{}),
		func(acc roster.Result[memo], e roster.Entry) roster.Result[memo] {
			if acc.IsFailure() {
				return acc
			}
			if len(e.Members) == 0 {
				return roster.Fail[memo](fmt.Errorf("%s: %w", e.Band, roster.ErrEmptyMemberList))
			}

			m := acc.Result()
			if !m.seeded {
				m = memo{seeded: true, value: e.Members[0]}
			}

			// non-strict: an equal candidate overwrites the memo
			if candidate := sortedMembers(e.Members)[0]; candidate <= m.value {
				m.value = candidate
			}
			return roster.Success(m)
		})

	if out.IsFailure() {
		return roster.FailFrom[memo, string](out)
	}
	return roster.Success(out.Result().value)
}

func sortedMembers(members []string) []string {
	sorted := slices.Clone(members)
	slices.Sort(sorted)
	return sorted
}
