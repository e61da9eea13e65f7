package github

import "time"

// User is the subset of GET /users/{name} used by gitwrapped.
// Nullable fields decode to their zero value.
type User struct {
	Login           string    `json:"login"`
	Name            string    `json:"name"`
	AvatarURL       string    `json:"avatar_url"`
	Bio             string    `json:"bio"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	TwitterUsername string    `json:"twitter_username"`
	HTMLURL         string    `json:"html_url"`
	PublicRepos     int       `json:"public_repos"`
	Followers       int       `json:"followers"`
	Following       int       `json:"following"`
	CreatedAt       time.Time `json:"created_at"`
}

// Repo represents a GitHub repository as returned by the repos and
// search endpoints.
type Repo struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	HTMLURL     string    `json:"html_url"`
	Fork        bool      `json:"fork"`
	UpdatedAt   time.Time `json:"updated_at"`
	Owner       struct {
		Login string `json:"login"`
	} `json:"owner"`
}

// Event is one entry of GET /users/{name}/events/public.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // PushEvent, PullRequestEvent, IssuesEvent, ...
	CreatedAt time.Time `json:"created_at"`
	Repo      struct {
		Name string `json:"name"`
	} `json:"repo"`
}

// Event types counted by gitwrapped.
const (
	EventPush        = "PushEvent"
	EventPullRequest = "PullRequestEvent"
	EventIssues      = "IssuesEvent"
)

// searchIssuesResponse only carries the total; items are never read.
type searchIssuesResponse struct {
	TotalCount int `json:"total_count"`
}

type searchReposResponse struct {
	TotalCount int    `json:"total_count"`
	Items      []Repo `json:"items"`
}
