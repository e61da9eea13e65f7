package wrapped

import (
	"strings"
	"time"

	"github.com/matzehuels/gitwrapped/pkg/integrations/github"
)

// TrendingWindow is how far back the trending list looks for new repositories.
const TrendingWindow = 7 * 24 * time.Hour

// TrendingSince returns the creation cutoff for the trending list at now.
func TrendingSince(now time.Time) time.Time {
	return now.Add(-TrendingWindow)
}

// TrendingRepo is one entry of the trending list.
type TrendingRepo struct {
	FullName    string `json:"full_name"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	URL         string `json:"url"`
}

// TrendingFromGitHub converts search results, keeping their order.
func TrendingFromGitHub(repos []github.Repo) []TrendingRepo {
	out := make([]TrendingRepo, 0, len(repos))
	for _, r := range repos {
		name := r.FullName
		if name == "" {
			name = r.Name
		}
		out = append(out, TrendingRepo{
			FullName:    name,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
			URL:         r.HTMLURL,
		})
	}
	return out
}

// FilterTrending keeps repositories whose name, description or language
// contains query, case-insensitively. An empty query keeps everything.
func FilterTrending(repos []TrendingRepo, query string) []TrendingRepo {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return repos
	}
	var out []TrendingRepo
	for _, r := range repos {
		if strings.Contains(strings.ToLower(r.FullName), q) ||
			strings.Contains(strings.ToLower(r.Description), q) ||
			strings.Contains(strings.ToLower(r.Language), q) {
			out = append(out, r)
		}
	}
	return out
}
