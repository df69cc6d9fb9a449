package roster

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Entry is a single band with its members. Pairs are a named record so
// callers never index into a positional two-element structure.
type Entry struct {
	Band    string
	Members []string
}

// Roster is an insertion-ordered mapping from band name to member list.
// Keys are unique; insertion order is preserved for enumeration.
type Roster struct {
	m     map[string][]string
	order []string
}

func New() *Roster {
	return &Roster{
		m: make(map[string][]string),
	}
}

// FromEntries builds a roster from entries in the given order. Invalid
// entries do not stop the walk; every violation is reported in one joined
// error.
func FromEntries(entries ...Entry) (*Roster, error) {
	r := New()
	var errs []error
	for _, e := range entries {
		if err := r.Set(e.Band, e.Members); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// Set adds or replaces the member list for a band. Replacing keeps the
// band's original position in the iteration order.
func (r *Roster) Set(band string, members []string) error {
	if band == "" {
		return fmt.Errorf("set %q: %w", band, ErrEmptyBandName)
	}
	if _, exists := r.m[band]; !exists {
		r.order = append(r.order, band)
	}
	r.m[band] = slices.Clone(members)
	return nil
}

func (r *Roster) Get(band string) ([]string, bool) {
	members, ok := r.m[band]
	return members, ok
}

func (r *Roster) Len() int {
	return len(r.order)
}

// Bands returns the band names in insertion order.
func (r *Roster) Bands() []string {
	return slices.Clone(r.order)
}

// Entries returns every entry in insertion order.
func (r *Roster) Entries() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, band := range r.order {
		entries = append(entries, Entry{Band: band, Members: r.m[band]})
	}
	return entries
}

// All returns a lazy sequence over the entries in insertion order.
func (r *Roster) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, band := range r.order {
			if !yield(Entry{Band: band, Members: r.m[band]}) {
				return
			}
		}
	}
}

func (r *Roster) Clone() *Roster {
	c := &Roster{
		m:     make(map[string][]string, len(r.m)),
		order: slices.Clone(r.order),
	}
	for band, members := range r.m {
		c.m[band] = slices.Clone(members)
	}
	return c
}
