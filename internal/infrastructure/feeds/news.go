package feeds

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"TechDashboard/internal/config"
	"TechDashboard/internal/domain"
	"TechDashboard/internal/ports"
)

const newsSource = "news"

// NewsFetcher reads the technology RSS feed.
type NewsFetcher struct {
	client    *http.Client
	parser    *gofeed.Parser
	feedURL   string
	maxItems  int
	userAgent string
	logger    *slog.Logger
}

var _ ports.NewsSource = (*NewsFetcher)(nil)

// NewNewsFetcher wires an HTTP client; a nil client gets the configured timeout.
func NewNewsFetcher(client *http.Client, cfg config.FeedsConfig, logger *slog.Logger) *NewsFetcher {
	if client == nil {
		client = NewHTTPClient(cfg.Timeout)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NewsFetcher{
		client:    client,
		parser:    gofeed.NewParser(),
		feedURL:   cfg.NewsFeedURL,
		maxItems:  cfg.MaxItems,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// FetchNews returns up to maxItems headlines in feed order. Any failure is
// logged and reported through the result with no items.
func (n *NewsFetcher) FetchNews(ctx context.Context) domain.FetchResult[domain.NewsItem] {
	items, err := n.fetch(ctx)
	if err != nil {
		n.logger.Warn("news feed unavailable", "url", n.feedURL, "error", err)
		return domain.FailedWith[domain.NewsItem](err)
	}

	n.logger.Debug("news feed fetched", "url", n.feedURL, "count", len(items))
	return domain.Succeeded(items)
}

func (n *NewsFetcher) fetch(ctx context.Context) ([]domain.NewsItem, error) {
	body, err := download(ctx, n.client, newsSource, n.feedURL, n.userAgent, "application/rss+xml, application/xml;q=0.9, */*;q=0.8")
	if err != nil {
		return nil, err
	}

	feed, err := n.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &domain.FetchError{Source: newsSource, Kind: domain.FetchParse, Err: err}
	}

	return n.normalize(feed.Items), nil
}

func (n *NewsFetcher) normalize(raw []*gofeed.Item) []domain.NewsItem {
	if n.maxItems > 0 && len(raw) > n.maxItems {
		raw = raw[:n.maxItems]
	}

	items := make([]domain.NewsItem, 0, len(raw))
	for _, entry := range raw {
		if entry == nil {
			continue
		}
		link := strings.TrimSpace(entry.Link)
		if link == "" {
			n.logger.Debug("skip news item without link", "title", entry.Title)
			continue
		}
		items = append(items, domain.NewsItem{
			Title:   strings.TrimSpace(entry.Title),
			Summary: plainText(entry.Description),
			URL:     link,
		})
	}
	return items
}
