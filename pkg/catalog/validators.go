package catalog

// SearchShowsQuery represents the query parameters for a catalog search.
type SearchShowsQuery struct {
	Query string `query:"query" json:"query" mod:"trim" validate:"required,min=1,max=100"`
}

// ShowDetailsQuery represents the query parameters for a detail lookup.
type ShowDetailsQuery struct {
	ID string `query:"id" json:"id" mod:"trim" validate:"required,min=1,max=20"`
}
