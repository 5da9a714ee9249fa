package browse

import "github.com/showscope/showscope/pkg/catalog"

// searchDoneMsg is sent when a search settles. The token ties it to the
// submission that started it; a message whose token is not the latest is
// stale and must be discarded.
type searchDoneMsg struct {
	token  int
	result *catalog.SearchResult
	err    error
}

// detailDoneMsg is sent when a detail fetch settles. Tokens work the same
// way as for searches, so a detail that arrives after the overlay was closed
// (or reopened for another show) never commits.
type detailDoneMsg struct {
	token int
	show  *catalog.Show
	err   error
}

// themeSavedMsg reports the outcome of persisting the theme preference.
// Persistence is best-effort; a failure never disturbs the view.
type themeSavedMsg struct {
	err error
}
