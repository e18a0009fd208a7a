package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appErrors "autocomplete/internal/errors"
)

func TestNewGitHubUsers(t *testing.T) {
	g := NewGitHubUsers()
	if g.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", g.baseURL, DefaultBaseURL)
	}
	if g.httpClient == nil || g.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected default client with %v timeout", DefaultTimeout)
	}
}

func TestNewGitHubUsersWithOptions(t *testing.T) {
	customClient := &http.Client{}
	g := NewGitHubUsers(
		WithHTTPClient(customClient),
		WithTimeout(2*time.Second),
		WithBaseURL("http://example.test/"),
	)
	if g.httpClient != customClient {
		t.Error("custom HTTP client not applied")
	}
	if customClient.Timeout != 2*time.Second {
		t.Errorf("timeout = %v, want 2s", customClient.Timeout)
	}
	if g.baseURL != "http://example.test" {
		t.Errorf("baseURL = %q, want trailing slash trimmed", g.baseURL)
	}
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/users" {
			t.Errorf("unexpected path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("q"); got != "an & bob" {
			t.Errorf("q = %q, want decoded lowercase query", got)
		}
		if got := r.URL.Query().Get("per_page"); got != "3" {
			t.Errorf("per_page = %q, want 3", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_count":2,"items":[{"login":"anna"},{"login":""},{"login":"anton"}]}`))
	}))
	defer server.Close()

	g := NewGitHubUsers(WithBaseURL(server.URL))
	records, err := g.Search(context.Background(), "An & Bob", 3)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Text != "anna" || records[0].Value != "anna" || records[1].Text != "anton" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestSearchWithoutItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total_count":0}`))
	}))
	defer server.Close()

	records, err := NewGitHubUsers(WithBaseURL(server.URL)).Search(context.Background(), "nobody", 5)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %+v", records)
	}
}

func TestSearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		code    appErrors.Code
	}{
		{
			name:    "RateLimited",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusForbidden) },
			code:    appErrors.CodeRateLimited,
		},
		{
			name:    "ServerError",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			code:    appErrors.CodeResolutionFailed,
		},
		{
			name:    "MalformedBody",
			handler: func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{not json`)) },
			code:    appErrors.CodeMalformedResponse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := NewGitHubUsers(WithBaseURL(server.URL)).Search(context.Background(), "a", 5)
			if !appErrors.IsCode(err, tt.code) {
				t.Fatalf("expected code %s, got %v (%s)", tt.code, err, appErrors.CodeOf(err))
			}
		})
	}
}

func TestSearchNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewGitHubUsers(WithBaseURL(url)).Search(context.Background(), "a", 5)
	if !appErrors.IsCode(err, appErrors.CodeResolutionFailed) {
		t.Fatalf("expected resolution_failed, got %v", err)
	}
}
