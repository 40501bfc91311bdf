package notion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves fixed pages of ints and counts how often it is asked.
type fakeSource struct {
	pages  []listResponse[int]
	calls  int
	hinted []int
}

func (f *fakeSource) fetch(_ context.Context, cursor string, pageSize int) (listResponse[int], error) {
	f.calls++
	f.hinted = append(f.hinted, pageSize)
	if f.calls > len(f.pages) {
		return listResponse[int]{}, nil
	}
	return f.pages[f.calls-1], nil
}

func TestCollectAllZeroLimitMakesNoFetch(t *testing.T) {
	source := &fakeSource{pages: []listResponse[int]{{Results: []int{1, 2}, HasMore: true, NextCursor: "a"}}}

	results, err := collectAll(context.Background(), 0, source.fetch)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, source.calls)
}

func TestCollectAllStopsAtLimit(t *testing.T) {
	source := &fakeSource{pages: []listResponse[int]{
		{Results: []int{1, 2, 3}, HasMore: true, NextCursor: "a"},
		{Results: []int{4, 5, 6}, HasMore: true, NextCursor: "b"},
		{Results: []int{7, 8, 9}, HasMore: true, NextCursor: "c"},
	}}

	results, err := collectAll(context.Background(), 5, source.fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, results)
	assert.Equal(t, 2, source.calls)
}

func TestCollectAllStopsWhenNoMorePages(t *testing.T) {
	source := &fakeSource{pages: []listResponse[int]{
		{Results: []int{1, 2}, HasMore: true, NextCursor: "a"},
		{Results: []int{3}, HasMore: false},
	}}

	results, err := collectAll(context.Background(), 100, source.fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, results)
	assert.Equal(t, 2, source.calls)
}

func TestCollectAllStopsOnMissingCursor(t *testing.T) {
	// has_more without a cursor is a malformed upstream answer; the loop
	// must stop instead of refetching the first page forever.
	source := &fakeSource{pages: []listResponse[int]{
		{Results: []int{1, 2}, HasMore: true, NextCursor: ""},
	}}

	results, err := collectAll(context.Background(), 100, source.fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, results)
	assert.Equal(t, 1, source.calls)
}

func TestCollectAllPageSizeHint(t *testing.T) {
	source := &fakeSource{pages: []listResponse[int]{
		{Results: make([]int, 100), HasMore: true, NextCursor: "a"},
		{Results: make([]int, 100), HasMore: true, NextCursor: "b"},
	}}

	results, err := collectAll(context.Background(), 130, source.fetch)

	require.NoError(t, err)
	assert.Len(t, results, 130)
	// First fetch asks for the API maximum, the second only for the rest.
	assert.Equal(t, []int{100, 30}, source.hinted)
}

func TestCollectAllDiscardsPartialResultsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fetch := func(_ context.Context, cursor string, pageSize int) (listResponse[int], error) {
		calls++
		if calls == 1 {
			return listResponse[int]{Results: []int{1, 2}, HasMore: true, NextCursor: "a"}, nil
		}
		return listResponse[int]{}, boom
	}

	results, err := collectAll(context.Background(), 100, fetch)

	require.ErrorIs(t, err, boom)
	assert.Nil(t, results)
}

func TestCollectAllPreservesOrder(t *testing.T) {
	source := &fakeSource{pages: []listResponse[int]{
		{Results: []int{3, 1}, HasMore: true, NextCursor: "a"},
		{Results: []int{2}, HasMore: false},
	}}

	results, err := collectAll(context.Background(), 100, source.fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, results)
}
