// Package pagination slices an already-complete result set into fixed-size
// pages. It is a pure view over the data; nothing here triggers additional
// fetching.
package pagination

// TotalPages returns the page count for n items at the given page size. An
// empty set still has one (empty) page.
func TotalPages(n, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// State is the current page over a result set. Page is 1-based.
type State struct {
	Page int
	Size int
}

// New returns a State on page 1.
func New(size int) State {
	return State{Page: 1, Size: size}
}

// Set moves to page p over n items. Out-of-range requests are rejected,
// returning the state unchanged and false, so a caller never commits an
// invalid page.
func (s State) Set(p, n int) (State, bool) {
	if p < 1 || p > TotalPages(n, s.Size) {
		return s, false
	}
	s.Page = p
	return s, true
}

// Next advances one page if possible.
func (s State) Next(n int) (State, bool) {
	return s.Set(s.Page+1, n)
}

// Prev goes back one page if possible.
func (s State) Prev(n int) (State, bool) {
	return s.Set(s.Page-1, n)
}

// Slice returns the items visible on the current page, clamped to the bounds
// of the set.
func Slice[T any](items []T, s State) []T {
	if s.Size <= 0 {
		return items
	}
	start := (s.Page - 1) * s.Size
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		return nil
	}
	end := start + s.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
