package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/showscope/showscope/pkg/omdb"
	"github.com/sourcegraph/conc/pool"
)

// DefaultDetailConcurrency caps the detail fan-out width so one search can't
// flood the upstream.
const DefaultDetailConcurrency = 8

var (
	// ErrEmptyQuery is returned for an empty or whitespace-only query before
	// any upstream call is made.
	ErrEmptyQuery = errors.New("catalog: empty query")

	// ErrEmptyID is returned for an empty detail identifier.
	ErrEmptyID = errors.New("catalog: empty id")
)

// Service aggregates an upstream list search with per-hit detail fetches and
// normalizes everything into display-safe Shows.
type Service struct {
	client      *omdb.Client
	concurrency int
}

func NewService(client *omdb.Client, concurrency int) *Service {
	if concurrency <= 0 {
		concurrency = DefaultDetailConcurrency
	}
	return &Service{client: client, concurrency: concurrency}
}

// Search runs the list search and then fetches details for every hit
// concurrently, joining before it returns. A failed detail fetch excludes
// that hit only; partial success is the normal case, not an error. Hits with
// no identifier are kept, normalized from their list fields alone. The
// returned shows preserve upstream order.
func (svc *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	log := logger.FromContext(ctx)

	items, err := svc.client.SearchSeries(ctx, query)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			log.Info("upstream reported no matches", logger.Data{"query": query})
		}
		return nil, err
	}

	if len(items) == 0 {
		log.Info("upstream returned an empty result list", logger.Data{"query": query})
		return &SearchResult{Shows: []Show{}}, nil
	}

	// One slot per hit keeps upstream order; a slot left nil after the join
	// is an excluded hit.
	slots := make([]*Show, len(items))

	var mu sync.Mutex
	excluded := 0

	p := pool.New().WithMaxGoroutines(svc.concurrency)
	for i, item := range items {
		id := stringField(item, "imdbID", "")
		if id == "" {
			// No identifier means no detail lookup; keep the hit with its
			// list fields only.
			show := Normalize(item)
			slots[i] = &show
			continue
		}

		p.Go(func() {
			raw, err := svc.client.Details(ctx, id, omdb.PlotShort)
			if err != nil {
				log.Warn("excluding result after failed detail fetch", logger.Data{
					"imdb_id": id,
					"error":   err.Error(),
				})
				mu.Lock()
				excluded++
				mu.Unlock()
				return
			}
			show := Normalize(raw)
			slots[i] = &show
		})
	}
	p.Wait()

	if excluded > 0 {
		log.Warn("search completed with partial failures", logger.Data{
			"query":    query,
			"excluded": excluded,
			"total":    len(items),
		})
	}

	shows := make([]Show, 0, len(items))
	for _, s := range slots {
		if s != nil {
			shows = append(shows, *s)
		}
	}

	return &SearchResult{Shows: shows, Excluded: excluded}, nil
}

// Details fetches and normalizes the full record for one show.
func (svc *Service) Details(ctx context.Context, id string) (*Show, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}

	raw, err := svc.client.Details(ctx, id, omdb.PlotFull)
	if err != nil {
		return nil, err
	}

	show := Normalize(raw)
	return &show, nil
}
