package feeds

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"TechDashboard/internal/config"
	"TechDashboard/internal/domain"
	"TechDashboard/internal/ports"
)

const (
	jobsSource      = "jobs"
	unknownCompany  = "Unknown Company"
	defaultLocation = "Remote"
)

type jobsResponse struct {
	Jobs []jobRecord `json:"jobs"`
}

type jobRecord struct {
	JobTitle    string `json:"jobTitle"`
	URL         string `json:"url"`
	CompanyName string `json:"companyName"`
	JobGeo      string `json:"jobGeo"`
}

// JobsFetcher reads the remote-jobs listing API.
type JobsFetcher struct {
	client    *http.Client
	apiURL    string
	pageSize  int
	maxItems  int
	userAgent string
	logger    *slog.Logger
}

var _ ports.JobSource = (*JobsFetcher)(nil)

// NewJobsFetcher wires an HTTP client; a nil client gets the configured timeout.
func NewJobsFetcher(client *http.Client, cfg config.FeedsConfig, logger *slog.Logger) *JobsFetcher {
	if client == nil {
		client = NewHTTPClient(cfg.Timeout)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JobsFetcher{
		client:    client,
		apiURL:    cfg.JobsAPIURL,
		pageSize:  cfg.JobsPageSize,
		maxItems:  cfg.MaxItems,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// FetchJobs requests one page of listings and keeps up to maxItems of them.
// Records without a title or URL are dropped.
func (j *JobsFetcher) FetchJobs(ctx context.Context) domain.FetchResult[domain.JobItem] {
	items, err := j.fetch(ctx)
	if err != nil {
		j.logger.Warn("jobs feed unavailable", "url", j.apiURL, "error", err)
		return domain.FailedWith[domain.JobItem](err)
	}

	j.logger.Debug("jobs feed fetched", "url", j.apiURL, "count", len(items))
	return domain.Succeeded(items)
}

func (j *JobsFetcher) fetch(ctx context.Context) ([]domain.JobItem, error) {
	target, err := withCount(j.apiURL, j.pageSize)
	if err != nil {
		return nil, &domain.FetchError{Source: jobsSource, Kind: domain.FetchTransport, Err: err}
	}

	body, err := download(ctx, j.client, jobsSource, target, j.userAgent, "application/json")
	if err != nil {
		return nil, err
	}

	var payload jobsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &domain.FetchError{Source: jobsSource, Kind: domain.FetchParse, Err: err}
	}

	return j.normalize(payload.Jobs), nil
}

func (j *JobsFetcher) normalize(raw []jobRecord) []domain.JobItem {
	// The limit applies before filtering, so skipped records are not backfilled.
	if j.maxItems > 0 && len(raw) > j.maxItems {
		raw = raw[:j.maxItems]
	}

	items := make([]domain.JobItem, 0, len(raw))
	for _, rec := range raw {
		title := strings.TrimSpace(rec.JobTitle)
		link := strings.TrimSpace(rec.URL)
		if title == "" || link == "" {
			j.logger.Debug("skip incomplete job record", "title", title, "url", link)
			continue
		}

		company := strings.TrimSpace(rec.CompanyName)
		if company == "" {
			company = unknownCompany
		}
		location := strings.TrimSpace(rec.JobGeo)
		if location == "" {
			location = defaultLocation
		}

		items = append(items, domain.JobItem{
			Title:    title,
			Company:  company,
			Location: location,
			URL:      link,
		})
	}
	return items
}
