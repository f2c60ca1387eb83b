package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"TechDashboard/internal/domain"
	"TechDashboard/internal/ports"
)

// ErrInvalidToggle marks a like-toggle request with an empty URL or an unknown action.
var ErrInvalidToggle = errors.New("invalid like toggle")

// DashboardDeps wires all driven adapters into the dashboard use case.
type DashboardDeps struct {
	News   ports.NewsSource
	Jobs   ports.JobSource
	Likes  ports.LikeStore
	Logger *slog.Logger
}

// Dashboard assembles the index page and applies like toggles.
type Dashboard struct {
	news   ports.NewsSource
	jobs   ports.JobSource
	likes  ports.LikeStore
	logger *slog.Logger
}

// NewDashboard constructs the use case. Likes is required.
func NewDashboard(deps DashboardDeps) *Dashboard {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Dashboard{
		news:   deps.News,
		jobs:   deps.Jobs,
		likes:  deps.Likes,
		logger: logger,
	}
}

// BuildPage fetches both feeds concurrently and attaches current like counts.
// A failed feed contributes no items; the page is still built.
func (d *Dashboard) BuildPage(ctx context.Context) domain.Page {
	var (
		news domain.FetchResult[domain.NewsItem]
		jobs domain.FetchResult[domain.JobItem]
	)

	g, gctx := errgroup.WithContext(ctx)
	if d.news != nil {
		g.Go(func() error {
			news = d.news.FetchNews(gctx)
			return nil
		})
	}
	if d.jobs != nil {
		g.Go(func() error {
			jobs = d.jobs.FetchJobs(gctx)
			return nil
		})
	}
	_ = g.Wait()

	if news.Failed() || jobs.Failed() {
		d.logger.Info("page built with missing feeds", "news_failed", news.Failed(), "jobs_failed", jobs.Failed())
	}

	page := domain.Page{
		News: make([]domain.NewsItem, 0, len(news.Items)),
		Jobs: make([]domain.JobItem, 0, len(jobs.Items)),
	}
	for _, item := range news.Items {
		item.Likes = d.likes.Get(item.URL)
		page.News = append(page.News, item)
	}
	for _, job := range jobs.Items {
		job.Likes = d.likes.Get(job.URL)
		page.Jobs = append(page.Jobs, job)
	}

	return page
}

// Toggle validates the request and applies it to the like store.
func (d *Dashboard) Toggle(url, rawAction string) (int, error) {
	if url == "" {
		return 0, fmt.Errorf("%w: empty url", ErrInvalidToggle)
	}

	action, err := domain.ParseAction(rawAction)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToggle, err)
	}

	likes := d.likes.Apply(url, action)
	d.logger.Debug("like toggled", "url", url, "action", action, "likes", likes)
	return likes, nil
}
