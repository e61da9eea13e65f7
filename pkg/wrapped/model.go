package wrapped

import "time"

// Profile is the public profile of a GitHub account.
// Every field except Login may be empty.
type Profile struct {
	Login           string    `json:"login"`
	Name            string    `json:"name,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Company         string    `json:"company,omitempty"`
	Location        string    `json:"location,omitempty"`
	TwitterUsername string    `json:"twitter_username,omitempty"`
	HTMLURL         string    `json:"html_url,omitempty"`
	PublicRepos     int       `json:"public_repos"`
	Followers       int       `json:"followers"`
	Following       int       `json:"following"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

// DisplayName returns Name, falling back to Login.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// RepositorySummary is one repository reduced to what the deck shows.
type RepositorySummary struct {
	Name        string `json:"name"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language,omitempty"` // empty when GitHub reports none
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// LanguageTally counts repositories whose primary language is Name.
type LanguageTally struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ActivitySummary counts one page of public events by kind.
type ActivitySummary struct {
	Total        int `json:"total"`
	Pushes       int `json:"pushes"`
	PullRequests int `json:"pull_requests"`
	Issues       int `json:"issues"`
	Other        int `json:"other"`
}

// StatsSummary holds the headline numbers. Contributions, Commits,
// LongestStreak and ActiveDays are fabricated by a [StatsEstimator];
// PullRequests is real unless PullRequestsEstimated is set.
type StatsSummary struct {
	Repos                 int  `json:"repos"`
	Stars                 int  `json:"stars"`
	Forks                 int  `json:"forks"`
	Contributions         int  `json:"contributions"`
	Commits               int  `json:"commits"`
	PullRequests          int  `json:"pull_requests"`
	PullRequestsEstimated bool `json:"pull_requests_estimated"`
	Issues                int  `json:"issues"`
	LongestStreak         int  `json:"longest_streak"`
	ActiveDays            int  `json:"active_days"`
	Score                 int  `json:"score"`
}

// ViewModel is everything a renderer needs to draw a wrapped deck.
// It is built once by [Aggregate] and never mutated afterwards; a new
// lookup replaces it wholesale.
type ViewModel struct {
	Profile     Profile             `json:"profile"`
	TopRepos    []RepositorySummary `json:"top_repos"`
	Languages   []LanguageTally     `json:"languages"`
	Stats       StatsSummary        `json:"stats"`
	Heatmap     Heatmap             `json:"heatmap"`
	Activity    ActivitySummary     `json:"activity"`
	Persona     string              `json:"persona"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// Input is the raw material gathered by [Fetch].
type Input struct {
	Profile           Profile
	Repos             []RepositorySummary
	Activity          ActivitySummary
	PullRequests      int
	PullRequestsKnown bool
	FetchedAt         time.Time
}
