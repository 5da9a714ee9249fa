package catalog

// Display fallbacks. Every field of a normalized Show carries one of these
// when the upstream omits the field or returns a non-string value, so
// renderers never need their own presence checks.
const (
	FallbackTitle   = "Unknown title"
	FallbackYear    = "Unknown year"
	FallbackPlot    = "No plot available"
	FallbackGenre   = "Unknown genre"
	FallbackRating  = "Not rated"
	FallbackRuntime = "Unknown runtime"
	FallbackActors  = "Unknown cast"

	// PosterPlaceholderURL replaces a missing poster or the upstream "N/A"
	// sentinel.
	PosterPlaceholderURL = "https://via.placeholder.com/300x450?text=No+Image"
)

// Rating is one external rating pair (e.g. "Rotten Tomatoes" / "92%").
type Rating struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// Show is the display-safe record produced by Normalize. Every scalar field
// is a defined string and Ratings is always non-nil. An empty ID means the
// upstream hit had no identifier; such shows can't be opened for details.
type Show struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Year    string   `json:"year"`
	Poster  string   `json:"poster"`
	Plot    string   `json:"plot"`
	Genre   string   `json:"genre"`
	Rating  string   `json:"rating"`
	Runtime string   `json:"runtime"`
	Actors  string   `json:"actors"`
	Ratings []Rating `json:"ratings"`
}

// SearchResult is one search's complete, ordered result set. Excluded counts
// hits dropped because their detail fetch failed; the search itself still
// succeeds.
type SearchResult struct {
	Shows    []Show
	Excluded int
}
