package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driving"
)

// BuildFeedRequest resolves p into a validated feed request. An empty
// since defaults to now minus domain.DefaultSinceWindow.
func BuildFeedRequest(hosts driving.HostRegistry, p domain.FeedParams, now time.Time) (domain.FeedRequest, error) {
	if p.Repo == "" || p.HostType == "" {
		return domain.FeedRequest{}, &domain.MissingParameterError{
			Names: []string{domain.ParamRepo, domain.ParamHostType},
		}
	}
	if hosts == nil {
		return domain.FeedRequest{}, fmt.Errorf("host registry: %w", domain.ErrMissingService)
	}

	since := domain.NormalizeTime(now.Add(-domain.DefaultSinceWindow))
	if p.Since != "" {
		parsed, err := domain.ParseTimestamp(p.Since)
		if err != nil {
			return domain.FeedRequest{}, fmt.Errorf("%s: %w", domain.ParamSince, err)
		}
		since = parsed
	}

	host, err := hosts.Resolve(p.HostType, p.Overrides)
	if err != nil {
		return domain.FeedRequest{}, err
	}

	req := domain.FeedRequest{
		Repo:     p.Repo,
		HostType: p.HostType,
		Host:     host,
		Since:    since,
		Title:    p.Title,
		Pretty:   p.Pretty,
		Page:     p.Page,
		Limit:    p.Limit,
		Endpoint: p.Endpoint,
	}
	if err := req.Validate(); err != nil {
		return domain.FeedRequest{}, err
	}
	return req, nil
}
