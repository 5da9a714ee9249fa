package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/showscope/showscope/pkg/browse"
	"github.com/showscope/showscope/pkg/catalog"
	"github.com/showscope/showscope/pkg/config"
	"github.com/showscope/showscope/pkg/omdb"
)

func main() {
	serverURL := flag.String("server", "", "base URL of a running showscope API to search through")
	query := flag.String("query", "", "pre-fill the search box with this query")
	flag.Parse()

	searcher, err := newSearcher(*serverURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	model := browse.New(searcher, browse.LoadTheme()).WithQuery(*query)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newSearcher talks to a running proxy when -server is given, and falls back
// to direct catalog access through OMDB_API_KEY otherwise.
func newSearcher(serverURL string) (browse.Searcher, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	if serverURL != "" {
		return catalog.NewProxyClient(serverURL, cfg.RequestTimeout, nil), nil
	}

	if cfg.OMDbAPIKey == "" {
		return nil, fmt.Errorf("set OMDB_API_KEY or pass -server")
	}
	client := omdb.New(cfg.OMDbAPIKey, cfg.OMDbBaseURL, cfg.RequestTimeout, nil)
	return catalog.NewService(client, cfg.DetailConcurrency), nil
}
