// Package remote provides lookup transports for the remote autocomplete mode.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appErrors "autocomplete/internal/errors"
	"autocomplete/internal/suggest"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.github.com"
	DefaultTimeout = 5 * time.Second
)

type userSearchResponse struct {
	TotalCount int `json:"total_count"`
	Items      []struct {
		Login string `json:"login"`
	} `json:"items"`
}

// GitHubUsers looks up GitHub accounts through the user search API.
type GitHubUsers struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a GitHubUsers lookup.
type Option func(*GitHubUsers)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *GitHubUsers) {
		g.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(g *GitHubUsers) {
		if timeout > 0 {
			g.httpClient.Timeout = timeout
		}
	}
}

// WithBaseURL points the lookup at a different API root.
func WithBaseURL(base string) Option {
	return func(g *GitHubUsers) {
		if trimmed := strings.TrimRight(strings.TrimSpace(base), "/"); trimmed != "" {
			g.baseURL = trimmed
		}
	}
}

// NewGitHubUsers creates a user search lookup.
func NewGitHubUsers(opts ...Option) *GitHubUsers {
	g := &GitHubUsers{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Lookup returns the lookup as a suggest.LookupFunc.
func (g *GitHubUsers) Lookup() suggest.LookupFunc {
	return g.Search
}

// Search queries the user search endpoint. A well-formed response without
// items yields no records and no error.
func (g *GitHubUsers) Search(ctx context.Context, query string, limit int) ([]suggest.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL(query, limit), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "autocomplete-lookup")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeResolutionFailed, "search users", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		return nil, appErrors.New(appErrors.CodeRateLimited, "rate limited by GitHub API", nil)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, appErrors.New(appErrors.CodeResolutionFailed, fmt.Sprintf("search users: status %d", resp.StatusCode), nil)
	}

	var body userSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, appErrors.New(appErrors.CodeMalformedResponse, "decode user search response", err)
	}

	records := make([]suggest.Record, 0, len(body.Items))
	for _, item := range body.Items {
		if item.Login == "" {
			continue
		}
		records = append(records, suggest.Record{Text: item.Login, Value: item.Login})
	}
	return records, nil
}

func (g *GitHubUsers) searchURL(query string, limit int) string {
	q := url.Values{}
	q.Set("q", strings.ToLower(query))
	if limit > 0 {
		q.Set("per_page", strconv.Itoa(limit))
	}
	return g.baseURL + "/search/users?" + q.Encode()
}
