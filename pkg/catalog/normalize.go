package catalog

import (
	"github.com/showscope/showscope/pkg/omdb"
)

// Normalize turns a raw upstream record into a display-safe Show. It is a
// total function: any input, including nil, yields a Show whose every scalar
// field is a defined string and whose Ratings slice is non-nil. A field is
// taken from the input only when it is a string; anything else gets the
// documented fallback.
func Normalize(raw omdb.Raw) Show {
	return Show{
		ID:      stringField(raw, "imdbID", ""),
		Title:   stringField(raw, "Title", FallbackTitle),
		Year:    stringField(raw, "Year", FallbackYear),
		Poster:  posterField(raw),
		Plot:    stringField(raw, "Plot", FallbackPlot),
		Genre:   stringField(raw, "Genre", FallbackGenre),
		Rating:  stringField(raw, "imdbRating", FallbackRating),
		Runtime: stringField(raw, "Runtime", FallbackRuntime),
		Actors:  stringField(raw, "Actors", FallbackActors),
		Ratings: ratingsField(raw),
	}
}

func stringField(raw omdb.Raw, key, fallback string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return fallback
}

// posterField treats the upstream "N/A" sentinel the same as a missing
// value; OMDb uses it instead of omitting the field.
func posterField(raw omdb.Raw) string {
	s, ok := raw["Poster"].(string)
	if !ok || s == "N/A" {
		return PosterPlaceholderURL
	}
	return s
}

// ratingsField normalizes each rating pair independently. A malformed
// element becomes an empty pair rather than being dropped, so positions are
// preserved.
func ratingsField(raw omdb.Raw) []Rating {
	list, ok := raw["Ratings"].([]any)
	if !ok {
		return []Rating{}
	}

	ratings := make([]Rating, 0, len(list))
	for _, el := range list {
		pair, _ := el.(map[string]any)
		source, _ := pair["Source"].(string)
		value, _ := pair["Value"].(string)
		ratings = append(ratings, Rating{Source: source, Value: value})
	}
	return ratings
}
