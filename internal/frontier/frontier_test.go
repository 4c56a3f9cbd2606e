package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/internal/frontier"
)

func TestQueue_OrderByCostThenInsertion(t *testing.T) {
	q := frontier.New(4)
	q.Push(&frontier.Entry{Cost: 2, ID: "late-two"})
	q.Push(&frontier.Entry{Cost: 1, ID: "first-one"})
	q.Push(&frontier.Entry{Cost: 2, ID: "later-two"})
	q.Push(&frontier.Entry{Cost: 1, ID: "second-one"})

	var got []string
	for q.Len() > 0 {
		got = append(got, q.Pop().ID)
	}
	assert.Equal(t, []string{"first-one", "second-one", "late-two", "later-two"}, got)
}

func TestExtend_DoesNotAlias(t *testing.T) {
	base := make(core.Path, 1, 8)
	base[0] = "A"

	left := frontier.Extend(base, "B")
	right := frontier.Extend(base, "C")

	require.Len(t, left, 2)
	assert.Equal(t, core.Path{"A", "B"}, left)
	assert.Equal(t, core.Path{"A", "C"}, right)
	assert.Equal(t, core.Path{"A"}, base)
}
