package ports

import (
	"context"
	"io"

	"TechDashboard/internal/domain"
)

// NewsSource pulls the latest technology headlines. Implementations fail soft:
// the result never carries items together with an error.
type NewsSource interface {
	FetchNews(ctx context.Context) domain.FetchResult[domain.NewsItem]
}

// JobSource pulls remote-job listings with the same soft-failure contract.
type JobSource interface {
	FetchJobs(ctx context.Context) domain.FetchResult[domain.JobItem]
}

// LikeStore tracks like counts keyed by item URL. It performs no validation.
type LikeStore interface {
	Get(url string) int
	Apply(url string, action domain.Action) int
}

// Renderer writes an assembled page to the client.
type Renderer interface {
	Render(w io.Writer, page domain.Page) error
}
