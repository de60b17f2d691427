package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/newsdesk-hq/hn-headlines/internal/config"
	"github.com/newsdesk-hq/hn-headlines/internal/headlines"
	"github.com/newsdesk-hq/hn-headlines/internal/logger"
	"github.com/newsdesk-hq/hn-headlines/pkg/frontpage"
	"github.com/newsdesk-hq/hn-headlines/pkg/httpclient"
)

// App wires the fetcher, extractor, and renderer into a single scrape pass.
type App struct {
	cfg     *config.Config
	log     logger.Logger
	fetcher *frontpage.Fetcher
	out     io.Writer
}

// New builds the app runtime. A nil client gets the default HTTP client
// tuned with the configured fetch timeout; a nil out defaults to stdout.
func New(cfg *config.Config, log logger.Logger, client httpclient.Client, out io.Writer) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if client == nil {
		client = httpclient.NewRestyClient(cfg.FetchTimeout)
	}
	if out == nil {
		out = os.Stdout
	}

	src := frontpage.Source{
		URL:       cfg.SourceURL,
		UserAgent: cfg.UserAgent,
	}

	return &App{
		cfg:     cfg,
		log:     log,
		fetcher: frontpage.NewFetcher(client, src),
		out:     out,
	}, nil
}

// Run performs one fetch, extraction, and render pass. The rendered list
// goes to the configured writer; any failure is returned to the caller.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.fetcher == nil {
		return fmt.Errorf("app is not initialized")
	}

	a.log.DebugObj("scrape started", "source_url", a.cfg.SourceURL)

	body, err := a.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	titles, fellBack := headlines.Extract(body)
	if fellBack {
		headlines.FallbackNotice(a.out)
	}

	headlines.Render(a.out, titles)

	a.log.DebugObj("scrape completed", "scrape_result", map[string]any{
		"titles_count":  len(titles),
		"used_fallback": fellBack,
	})
	return nil
}
