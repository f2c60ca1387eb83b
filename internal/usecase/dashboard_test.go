package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"TechDashboard/internal/domain"
	"TechDashboard/internal/infrastructure/storage"
	"TechDashboard/internal/logging"
)

type stubNews struct {
	result domain.FetchResult[domain.NewsItem]
}

func (s stubNews) FetchNews(context.Context) domain.FetchResult[domain.NewsItem] {
	return s.result
}

type stubJobs struct {
	result domain.FetchResult[domain.JobItem]
}

func (s stubJobs) FetchJobs(context.Context) domain.FetchResult[domain.JobItem] {
	return s.result
}

func TestBuildPageAttachesLikes(t *testing.T) {
	t.Parallel()

	likes := storage.NewLikeStore()
	likes.Apply("news-1", domain.ActionLike)
	likes.Apply("news-1", domain.ActionLike)
	likes.Apply("job-2", domain.ActionLike)

	dash := NewDashboard(DashboardDeps{
		News: stubNews{result: domain.Succeeded([]domain.NewsItem{
			{Title: "A", URL: "news-1"},
			{Title: "B", URL: "news-2"},
		})},
		Jobs: stubJobs{result: domain.Succeeded([]domain.JobItem{
			{Title: "Dev", Company: "Acme", Location: "Remote", URL: "job-2"},
		})},
		Likes:  likes,
		Logger: logging.Discard(),
	})

	page := dash.BuildPage(context.Background())

	if len(page.News) != 2 || len(page.Jobs) != 1 {
		t.Fatalf("unexpected page sizes: news=%d jobs=%d", len(page.News), len(page.Jobs))
	}
	if page.News[0].Likes != 2 || page.News[1].Likes != 0 {
		t.Fatalf("unexpected news likes: %+v", page.News)
	}
	if page.Jobs[0].Likes != 1 {
		t.Fatalf("unexpected job likes: %+v", page.Jobs[0])
	}
	if likes.Len() != 2 {
		t.Fatalf("building a page must not create entries, len=%d", likes.Len())
	}
}

func TestBuildPageWithFailedFeed(t *testing.T) {
	t.Parallel()

	failed := domain.FailedWith[domain.NewsItem](&domain.FetchError{Source: "news", Kind: domain.FetchTransport, Err: io.EOF})
	jobs := domain.Succeeded([]domain.JobItem{{Title: "Dev", URL: "job"}})

	dash := NewDashboard(DashboardDeps{
		News:   stubNews{result: failed},
		Jobs:   stubJobs{result: jobs},
		Likes:  storage.NewLikeStore(),
		Logger: logging.Discard(),
	})

	page := dash.BuildPage(context.Background())
	if len(page.News) != 0 {
		t.Fatalf("failed feed should be absent, got %d items", len(page.News))
	}
	if len(page.Jobs) != 1 {
		t.Fatalf("healthy feed should still render, got %d items", len(page.Jobs))
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	dash := NewDashboard(DashboardDeps{Likes: storage.NewLikeStore(), Logger: logging.Discard()})

	got, err := dash.Toggle("u", "like")
	if err != nil || got != 1 {
		t.Fatalf("like: got %d, %v", got, err)
	}
	got, err = dash.Toggle("u", "unlike")
	if err != nil || got != 0 {
		t.Fatalf("unlike: got %d, %v", got, err)
	}
	got, err = dash.Toggle("u", "unlike")
	if err != nil || got != 0 {
		t.Fatalf("unlike at zero: got %d, %v", got, err)
	}
}

func TestToggleRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	dash := NewDashboard(DashboardDeps{Likes: storage.NewLikeStore(), Logger: logging.Discard()})

	cases := []struct{ url, action string }{
		{"", "like"},
		{"u", "invalid"},
		{"u", ""},
		{"", "invalid"},
	}
	for _, tc := range cases {
		if _, err := dash.Toggle(tc.url, tc.action); !errors.Is(err, ErrInvalidToggle) {
			t.Fatalf("Toggle(%q, %q): expected ErrInvalidToggle, got %v", tc.url, tc.action, err)
		}
	}
}
