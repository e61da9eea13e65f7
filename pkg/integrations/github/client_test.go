package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/gitwrapped/pkg/cache"
	apperr "github.com/matzehuels/gitwrapped/pkg/errors"
)

func testClient(t *testing.T, serverURL, token string) *Client {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })

	client := NewClient(token, serverURL, c)
	client.SetRetry(3, time.Millisecond)
	return client
}

func TestClient_FetchUser(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if r.URL.Path != "/users/octocat" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"login":"octocat","name":"The Octocat","bio":null,"public_repos":8,"followers":20,"created_at":"2011-01-25T18:44:36Z"}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, "secret")

	user, err := c.FetchUser(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("FetchUser() error: %v", err)
	}
	if user.Login != "octocat" || user.Name != "The Octocat" {
		t.Errorf("user = %+v", user)
	}
	if user.Bio != "" {
		t.Errorf("null bio should decode empty, got %q", user.Bio)
	}
	if user.PublicRepos != 8 || user.Followers != 20 {
		t.Errorf("counts = %d/%d", user.PublicRepos, user.Followers)
	}
	if user.CreatedAt.Year() != 2011 {
		t.Errorf("CreatedAt = %v", user.CreatedAt)
	}
	if auth != "Bearer secret" {
		t.Errorf("Authorization = %q", auth)
	}
}

func TestClient_FetchUserNotFound(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"404", http.StatusNotFound},
		{"403", http.StatusForbidden},
		{"500 after retries", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			c := testClient(t, server.URL, "")
			_, err := c.FetchUser(context.Background(), "ghost-user")
			if !apperr.Is(err, apperr.ErrCodeUserNotFound) {
				t.Errorf("FetchUser() error = %v, want USER_NOT_FOUND", err)
			}
		})
	}
}

func TestClient_FetchUserNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := testClient(t, url, "")
	_, err := c.FetchUser(context.Background(), "octocat")
	if err == nil {
		t.Fatal("FetchUser() should fail against a closed server")
	}
	if apperr.Is(err, apperr.ErrCodeUserNotFound) {
		t.Errorf("transport failure should not be USER_NOT_FOUND: %v", err)
	}
	if !apperr.Is(err, apperr.ErrCodeNetwork) {
		t.Errorf("FetchUser() error = %v, want NETWORK_ERROR", err)
	}
}

func TestClient_FetchRepos(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode([]map[string]any{
			{"name": "a", "stargazers_count": 10, "forks_count": 2, "language": "Go"},
			{"name": "b", "stargazers_count": 0, "language": nil},
		})
	}))
	defer server.Close()

	c := testClient(t, server.URL, "")
	repos, err := c.FetchRepos(context.Background(), "octocat", 0)
	if err != nil {
		t.Fatalf("FetchRepos() error: %v", err)
	}
	if query != "per_page=50&sort=updated" {
		t.Errorf("query = %q", query)
	}
	if len(repos) != 2 {
		t.Fatalf("len(repos) = %d, want 2", len(repos))
	}
	if repos[0].Stars != 10 || repos[0].Forks != 2 || repos[0].Language != "Go" {
		t.Errorf("repos[0] = %+v", repos[0])
	}
	if repos[1].Language != "" {
		t.Errorf("null language should decode empty, got %q", repos[1].Language)
	}
}

func TestClient_FetchEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/events/public" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("per_page"); got != "100" {
			t.Errorf("per_page = %q", got)
		}
		w.Write([]byte(`[{"id":"1","type":"PushEvent"},{"id":"2","type":"IssuesEvent"}]`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, "")
	events, err := c.FetchEvents(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("FetchEvents() error: %v", err)
	}
	if len(events) != 2 || events[0].Type != EventPush {
		t.Errorf("events = %+v", events)
	}
}

func TestClient_CountPullRequests(t *testing.T) {
	var q string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query().Get("q")
		w.Write([]byte(`{"total_count":321,"items":[{}]}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, "")
	n, err := c.CountPullRequests(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("CountPullRequests() error: %v", err)
	}
	if n != 321 {
		t.Errorf("count = %d, want 321", n)
	}
	if q != "is:pr author:octocat" {
		t.Errorf("q = %q", q)
	}
}

func TestClient_FetchTrendingCached(t *testing.T) {
	var calls atomic.Int32
	var q string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		q = r.URL.Query().Get("q")
		w.Write([]byte(`{"total_count":2,"items":[{"name":"hot","stargazers_count":900},{"name":"warm","stargazers_count":100}]}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, "")
	since := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for range 2 {
		repos, err := c.FetchTrending(context.Background(), since, false)
		if err != nil {
			t.Fatalf("FetchTrending() error: %v", err)
		}
		if len(repos) != 2 || repos[0].Name != "hot" {
			t.Errorf("repos = %+v", repos)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (second call cached)", calls.Load())
	}
	if q != "created:>2025-03-01" {
		t.Errorf("q = %q", q)
	}

	if _, err := c.FetchTrending(context.Background(), since, true); err != nil {
		t.Fatalf("FetchTrending(refresh) error: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("refresh should bypass cache, calls = %d", calls.Load())
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", "", nil)
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
	c = NewClient("", "http://localhost:9999/", nil)
	if c.BaseURL() != "http://localhost:9999" {
		t.Errorf("trailing slash not trimmed: %q", c.BaseURL())
	}
}
