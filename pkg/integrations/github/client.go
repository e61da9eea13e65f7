package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/gitwrapped/pkg/buildinfo"
	"github.com/matzehuels/gitwrapped/pkg/cache"
	apperr "github.com/matzehuels/gitwrapped/pkg/errors"
	"github.com/matzehuels/gitwrapped/pkg/integrations"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"

	// DefaultReposPerPage matches a single page of recently updated repositories.
	DefaultReposPerPage = 50

	eventsPerPage   = 100
	trendingPerPage = 30
)

// Client provides access to the public GitHub REST API.
// It handles HTTP requests with automatic retries and optional authentication.
type Client struct {
	*integrations.Client
	baseURL string
	keyer   cache.Keyer
}

// NewClient creates a GitHub API client.
// Pass an empty token to use unauthenticated requests (lower rate limits),
// an empty baseURL for [DefaultBaseURL], and a nil cache to disable
// caching of the trending list.
func NewClient(token, baseURL string, c cache.Cache) *Client {
	headers := map[string]string{
		"Accept":     "application/vnd.github.v3+json",
		"User-Agent": buildinfo.UserAgent(),
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(c, cache.TTLTrending, headers),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		keyer:   cache.KeyerForToken(token),
	}
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchUser retrieves the public profile for login.
// Any non-success status is reported as USER_NOT_FOUND; transport
// failures are reported as NETWORK_ERROR.
func (c *Client) FetchUser(ctx context.Context, login string) (*User, error) {
	var u User
	url := fmt.Sprintf("%s/users/%s", c.baseURL, login)
	if err := c.Get(ctx, url, &u); err != nil {
		switch {
		case integrations.IsStatus(err):
			return nil, apperr.Wrap(apperr.ErrCodeUserNotFound, err, "user %s not found", login)
		case errors.Is(err, context.DeadlineExceeded):
			return nil, apperr.Wrap(apperr.ErrCodeTimeout, err, "fetch user %s", login)
		case errors.Is(err, context.Canceled):
			return nil, err
		default:
			return nil, apperr.Wrap(apperr.ErrCodeNetwork, err, "fetch user %s", login)
		}
	}
	return &u, nil
}

// FetchRepos retrieves one page of login's repositories, most recently
// updated first. A non-positive perPage uses [DefaultReposPerPage].
func (c *Client) FetchRepos(ctx context.Context, login string, perPage int) ([]Repo, error) {
	if perPage <= 0 {
		perPage = DefaultReposPerPage
	}
	var repos []Repo
	url := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=updated", c.baseURL, login, perPage)
	if err := c.Get(ctx, url, &repos); err != nil {
		return nil, fmt.Errorf("fetch repos for %s: %w", login, err)
	}
	return repos, nil
}

// FetchEvents retrieves one page of login's public events.
func (c *Client) FetchEvents(ctx context.Context, login string) ([]Event, error) {
	var events []Event
	url := fmt.Sprintf("%s/users/%s/events/public?per_page=%d", c.baseURL, login, eventsPerPage)
	if err := c.Get(ctx, url, &events); err != nil {
		return nil, fmt.Errorf("fetch events for %s: %w", login, err)
	}
	return events, nil
}

// CountPullRequests returns the total number of pull requests authored by
// login, as reported by the issue search API.
func (c *Client) CountPullRequests(ctx context.Context, login string) (int, error) {
	var data searchIssuesResponse
	query := integrations.URLEncode("is:pr author:" + login)
	url := fmt.Sprintf("%s/search/issues?q=%s&per_page=1", c.baseURL, query)
	if err := c.Get(ctx, url, &data); err != nil {
		return 0, fmt.Errorf("count pull requests for %s: %w", login, err)
	}
	return data.TotalCount, nil
}

// FetchTrending returns the most starred repositories created after since.
// Results are cached for [cache.TTLTrending] unless refresh is set.
func (c *Client) FetchTrending(ctx context.Context, since time.Time, refresh bool) ([]Repo, error) {
	day := since.UTC().Format("2006-01-02")
	key := c.keyer.TrendingKey(day)

	var repos []Repo
	err := c.Cached(ctx, key, refresh, &repos, func() error {
		var data searchReposResponse
		query := integrations.URLEncode("created:>" + day)
		url := fmt.Sprintf("%s/search/repositories?q=%s&sort=stars&order=desc&per_page=%d",
			c.baseURL, query, trendingPerPage)
		if err := c.Get(ctx, url, &data); err != nil {
			return err
		}
		repos = data.Items
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch trending since %s: %w", day, err)
	}
	return repos, nil
}
