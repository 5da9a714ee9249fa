package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/showscope/showscope/pkg/omdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream simulates the OMDb API: one search endpoint plus per-id
// detail responses, with selectable per-id failure modes.
type fakeUpstream struct {
	searchBody  string
	failIDs     map[string]int // id -> status code to fail with
	garbageIDs  map[string]bool
	requests    atomic.Int64
	detailCalls atomic.Int64
}

func (f *fakeUpstream) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		q := r.URL.Query()

		if q.Get("s") != "" {
			_, _ = w.Write([]byte(f.searchBody))
			return
		}

		id := q.Get("i")
		f.detailCalls.Add(1)

		if status, ok := f.failIDs[id]; ok {
			w.WriteHeader(status)
			return
		}
		if f.garbageIDs[id] {
			_, _ = w.Write([]byte(`{{{`))
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"imdbID": id,
			"Title":  "Title " + id,
			"Year":   "2020",
			"Plot":   "Plot for " + id,
		})
	}
}

func searchBodyWithIDs(ids []string) string {
	hits := make([]map[string]any, 0, len(ids))
	for i, id := range ids {
		hit := map[string]any{
			"Title": fmt.Sprintf("Hit %d", i+1),
			"Year":  "2020",
		}
		if id != "" {
			hit["imdbID"] = id
		}
		hits = append(hits, hit)
	}
	body, _ := json.Marshal(map[string]any{"Search": hits, "Response": "True"})
	return string(body)
}

func newTestService(t *testing.T, f *fakeUpstream) *Service {
	t.Helper()

	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	client := omdb.New("test-key", srv.URL, time.Second, nil)
	return NewService(client, 4)
}

func TestSearchPartialFailure(t *testing.T) {
	t.Parallel()

	// 12 hits, 2 of which fail their detail fetch.
	ids := make([]string, 12)
	for i := range ids {
		ids[i] = fmt.Sprintf("tt%07d", i+1)
	}
	f := &fakeUpstream{
		searchBody: searchBodyWithIDs(ids),
		failIDs:    map[string]int{"tt0000003": http.StatusInternalServerError},
		garbageIDs: map[string]bool{"tt0000007": true},
	}
	svc := newTestService(t, f)

	result, err := svc.Search(context.Background(), "batman")
	require.NoError(t, err)

	assert.Len(t, result.Shows, 10)
	assert.Equal(t, 2, result.Excluded)
	assert.Equal(t, int64(12), f.detailCalls.Load())

	// Upstream order is preserved across the concurrent fan-out, minus the
	// excluded hits.
	want := []string{
		"tt0000001", "tt0000002", "tt0000004", "tt0000005", "tt0000006",
		"tt0000008", "tt0000009", "tt0000010", "tt0000011", "tt0000012",
	}
	for i, show := range result.Shows {
		assert.Equal(t, want[i], show.ID)
		assert.Equal(t, "Title "+want[i], show.Title)
	}
}

func TestSearchHitWithoutIdentifier(t *testing.T) {
	t.Parallel()

	f := &fakeUpstream{
		searchBody: searchBodyWithIDs([]string{"tt0000001", "", "tt0000003"}),
	}
	svc := newTestService(t, f)

	result, err := svc.Search(context.Background(), "batman")
	require.NoError(t, err)

	// The id-less hit is kept with its list fields, at its original
	// position, and triggers no detail fetch.
	require.Len(t, result.Shows, 3)
	assert.Zero(t, result.Excluded)
	assert.Equal(t, int64(2), f.detailCalls.Load())

	assert.Empty(t, result.Shows[1].ID)
	assert.Equal(t, "Hit 2", result.Shows[1].Title)
	assert.Equal(t, FallbackPlot, result.Shows[1].Plot)
}

func TestSearchEmptyResultList(t *testing.T) {
	t.Parallel()

	f := &fakeUpstream{searchBody: `{"Search": [], "Response": "True"}`}
	svc := newTestService(t, f)

	result, err := svc.Search(context.Background(), "batman")
	require.NoError(t, err)
	assert.NotNil(t, result.Shows)
	assert.Empty(t, result.Shows)
	assert.Zero(t, result.Excluded)
}

func TestSearchUpstreamNotFound(t *testing.T) {
	t.Parallel()

	f := &fakeUpstream{searchBody: `{"Response": "False", "Error": "Movie not found!"}`}
	svc := newTestService(t, f)

	_, err := svc.Search(context.Background(), "zzzzzz")
	assert.ErrorIs(t, err, omdb.ErrNotFound)
}

func TestSearchEmptyQueryNeverHitsNetwork(t *testing.T) {
	t.Parallel()

	f := &fakeUpstream{searchBody: searchBodyWithIDs([]string{"tt0000001"})}
	svc := newTestService(t, f)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := svc.Search(context.Background(), query)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
	assert.Zero(t, f.requests.Load(), "validation failures must not reach the network")
}

func TestSearchTimeoutPassesThrough(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	client := omdb.New("test-key", srv.URL, 50*time.Millisecond, nil)
	svc := NewService(client, 4)

	_, err := svc.Search(context.Background(), "batman")
	assert.ErrorIs(t, err, omdb.ErrTimeout)
}

func TestDetails(t *testing.T) {
	t.Parallel()

	f := &fakeUpstream{}
	svc := newTestService(t, f)

	show, err := svc.Details(context.Background(), "tt0000001")
	require.NoError(t, err)
	assert.Equal(t, "tt0000001", show.ID)
	assert.Equal(t, "Title tt0000001", show.Title)
}

func TestDetailsEmptyID(t *testing.T) {
	t.Parallel()

	f := &fakeUpstream{}
	svc := newTestService(t, f)

	_, err := svc.Details(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyID)
	assert.Zero(t, f.requests.Load())
}

func TestDetailsUnknownID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Response": "False", "Error": "Incorrect IMDb ID."}`))
	}))
	t.Cleanup(srv.Close)

	client := omdb.New("test-key", srv.URL, time.Second, nil)
	svc := NewService(client, 4)

	_, err := svc.Details(context.Background(), "nope")
	assert.ErrorIs(t, err, omdb.ErrNotFound)
}
