package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rosterfold/pkg/roster"
	"github.com/ib-77/rosterfold/pkg/roster/chain"
	"github.com/ib-77/rosterfold/pkg/roster/ops"
)

// TestCanonicalRosterPipeline drives the whole library end to end: build the
// roster, enumerate it, sort every member list and resolve the earliest
// member through a fluent chain.
func TestCanonicalRosterPipeline(t *testing.T) {
	ctx := context.Background()

	entries := []roster.Entry{
		{Band: "joy_division", Members: []string{"ian", "bernard", "peter", "stephen"}},
		{Band: "the_smiths", Members: []string{"johnny", "andy", "morrissey", "mike"}},
		{Band: "the_cramps", Members: []string{"lux", "ivy", "nick"}},
		{Band: "blondie", Members: []string{"debbie", "chris", "clem", "jimmy", "nigel"}},
		{Band: "talking_heads", Members: []string{"david", "tina", "chris", "jerry"}},
	}

	r, err := roster.FromEntries(entries...)
	require.NoError(t, err)

	// enumeration covers every pair, in input order
	var lines []string
	ops.Enumerate(r, func(e roster.Entry) {
		lines = append(lines, fmt.Sprintf("%v", e))
	})
	assert.Len(t, lines, len(entries))
	assert.Equal(t, fmt.Sprintf("%v", entries[0]), lines[0])

	// fluent pipeline: roster -> sorted roster -> earliest member
	earliest := chain.Finally(
		chain.Then(
			chain.Map(chain.FromValue(ctx, r),
				func(_ context.Context, in *roster.Roster) *roster.Roster {
					return ops.Sorted(in)
				}),
			func(_ context.Context, sorted *roster.Roster) roster.Result[string] {
				return ops.Earliest(sorted)
			}),
		func(_ context.Context, name string) string { return name },
		func(_ context.Context, err error) string { return "err" },
	)
	assert.Equal(t, "andy", earliest)

	// the source roster is untouched by the pipeline
	members, ok := r.Get("the_smiths")
	require.True(t, ok)
	assert.Equal(t, []string{"johnny", "andy", "morrissey", "mike"}, members)
}

func TestPipelineFailsLoudOnEmptyRoster(t *testing.T) {
	ctx := context.Background()

	out := chain.Finally(
		chain.Then(chain.FromValue(ctx, roster.New()),
			func(_ context.Context, r *roster.Roster) roster.Result[string] {
				return ops.Earliest(r)
			}),
		func(_ context.Context, name string) string { return name },
		func(_ context.Context, err error) string { return err.Error() },
	)

	assert.Equal(t, roster.ErrEmptyRoster.Error(), out)
}
