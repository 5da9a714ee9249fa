package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		size int
		want int
	}{
		{"empty set still has one page", 0, 9, 1},
		{"exact multiple", 18, 9, 2},
		{"partial last page", 10, 9, 2},
		{"single item", 1, 9, 1},
		{"one under a full page", 8, 9, 1},
		{"large set", 100, 9, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.n, tt.size))
		})
	}
}

func TestSetRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	s := New(9)

	// 10 items -> 2 pages
	next, ok := s.Set(3, 10)
	assert.False(t, ok)
	assert.Equal(t, 1, next.Page, "rejected request must leave state unchanged")

	next, ok = s.Set(0, 10)
	assert.False(t, ok)
	assert.Equal(t, 1, next.Page)

	next, ok = s.Set(2, 10)
	require.True(t, ok)
	assert.Equal(t, 2, next.Page)
}

func TestNextPrev(t *testing.T) {
	t.Parallel()

	s := New(9)

	s, ok := s.Next(10)
	require.True(t, ok)
	assert.Equal(t, 2, s.Page)

	_, ok = s.Next(10)
	assert.False(t, ok)

	s, ok = s.Prev(10)
	require.True(t, ok)
	assert.Equal(t, 1, s.Page)

	_, ok = s.Prev(10)
	assert.False(t, ok)
}

func TestSlice(t *testing.T) {
	t.Parallel()

	items := make([]int, 10)
	for i := range items {
		items[i] = i
	}

	s := New(9)
	page1 := Slice(items, s)
	require.Len(t, page1, 9)
	assert.Equal(t, 0, page1[0])
	assert.Equal(t, 8, page1[8])

	s, ok := s.Next(len(items))
	require.True(t, ok)
	page2 := Slice(items, s)
	require.Len(t, page2, 1)
	assert.Equal(t, 9, page2[0])
}

func TestSliceShortSet(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c"}
	got := Slice(items, New(9))
	assert.Equal(t, items, got)
}

func TestSliceEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Slice([]string{}, New(9)))
}
