package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driving"
	"github.com/custodia-labs/issuefeed/internal/core/services"
)

// parseRequest reads the feed request of r.
func parseRequest(r *http.Request, hosts driving.HostRegistry, now time.Time) (domain.FeedRequest, error) {
	q := r.URL.Query()

	page, err := intParam(q, domain.ParamPage, domain.DefaultPage)
	if err != nil {
		return domain.FeedRequest{}, err
	}
	limit, err := intParam(q, domain.ParamLimit, domain.DefaultLimit)
	if err != nil {
		return domain.FeedRequest{}, err
	}

	return services.BuildFeedRequest(hosts, domain.FeedParams{
		Repo:     q.Get(domain.ParamRepo),
		HostType: q.Get(domain.ParamHostType),
		Since:    q.Get(domain.ParamSince),
		Title:    q.Get(domain.ParamTitle),
		Pretty:   prettyParam(q),
		Page:     page,
		Limit:    limit,
		Overrides: domain.HostOverrides{
			APIHost:      q.Get(domain.ParamAPIHost),
			GitHost:      q.Get(domain.ParamGitHost),
			IssuesPath:   q.Get(domain.ParamAPIIssues),
			CommentsPath: q.Get(domain.ParamAPIComments),
		},
		Endpoint: endpoint(r),
	}, now)
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return n, nil
}

// prettyParam is true when pretty is present and not 0 or false.
func prettyParam(q url.Values) bool {
	if !q.Has(domain.ParamPretty) {
		return false
	}
	switch strings.ToLower(q.Get(domain.ParamPretty)) {
	case "0", "false":
		return false
	}
	return true
}

// endpoint returns the feed URL without query. Hosts with an explicit
// port are assumed to be plain HTTP development servers.
func endpoint(r *http.Request) string {
	scheme := "https://"
	if strings.Contains(r.Host, ":") {
		scheme = "http://"
	}
	return scheme + r.Host + r.URL.Path
}
