package wrapped

import (
	"fmt"
	"math"
	"slices"
)

// Defaults for [Policy].
const (
	DefaultTopLanguages   = 5
	DefaultRepoWindow     = 10
	DefaultTopRepos       = 6
	DefaultStarDivisor    = 15.0
	DefaultContribDivisor = 8.0
	MaxScore              = 100

	commitShare   = 0.7
	prShare       = 0.15
	daysPerActive = 3
)

// ScorePolicy weighs stars and contributions into the 0-100 score.
type ScorePolicy struct {
	StarDivisor    float64 `json:"star_divisor"`
	ContribDivisor float64 `json:"contrib_divisor"`
}

// Score returns floor(stars/StarDivisor + contributions/ContribDivisor)
// clamped to [0, 100].
func (p ScorePolicy) Score(stars, contributions int) int {
	raw := float64(stars)/p.StarDivisor + float64(contributions)/p.ContribDivisor
	return min(MaxScore, max(0, int(math.Floor(raw))))
}

// Policy holds the aggregation limits.
type Policy struct {
	TopLanguages int         `json:"top_languages"`
	RepoWindow   int         `json:"repo_window"`
	TopRepos     int         `json:"top_repos"`
	Score        ScorePolicy `json:"score"`
}

// DefaultPolicy returns the standard limits and weights.
func DefaultPolicy() Policy {
	return Policy{
		TopLanguages: DefaultTopLanguages,
		RepoWindow:   DefaultRepoWindow,
		TopRepos:     DefaultTopRepos,
		Score: ScorePolicy{
			StarDivisor:    DefaultStarDivisor,
			ContribDivisor: DefaultContribDivisor,
		},
	}
}

// Validate rejects non-positive limits and divisors.
func (p Policy) Validate() error {
	switch {
	case p.TopLanguages <= 0:
		return fmt.Errorf("top languages must be positive, got %d", p.TopLanguages)
	case p.RepoWindow <= 0:
		return fmt.Errorf("repo window must be positive, got %d", p.RepoWindow)
	case p.TopRepos <= 0:
		return fmt.Errorf("top repos must be positive, got %d", p.TopRepos)
	case p.Score.StarDivisor <= 0 || math.IsNaN(p.Score.StarDivisor):
		return fmt.Errorf("star divisor must be positive, got %v", p.Score.StarDivisor)
	case p.Score.ContribDivisor <= 0 || math.IsNaN(p.Score.ContribDivisor):
		return fmt.Errorf("contribution divisor must be positive, got %v", p.Score.ContribDivisor)
	}
	return nil
}

// Aggregate combines fetched data and fabricated figures into a ViewModel.
// It is pure: the same arguments always produce an equal result, and in
// is never modified.
func Aggregate(in Input, est Estimate, policy Policy) *ViewModel {
	stars, forks := 0, 0
	for _, r := range in.Repos {
		stars += max(r.Stars, 0)
		forks += max(r.Forks, 0)
	}

	contributions := est.Contributions
	stats := StatsSummary{
		Repos:         len(in.Repos),
		Stars:         stars,
		Forks:         forks,
		Contributions: contributions,
		Commits:       int(math.Round(float64(contributions) * commitShare)),
		Issues:        in.Activity.Issues,
		LongestStreak: est.LongestStreak,
		ActiveDays:    contributions / daysPerActive,
		Score:         policy.Score.Score(stars, contributions),
	}
	if in.PullRequestsKnown {
		stats.PullRequests = in.PullRequests
	} else {
		stats.PullRequests = int(math.Round(float64(contributions) * prShare))
		stats.PullRequestsEstimated = true
	}

	return &ViewModel{
		Profile:     in.Profile,
		TopRepos:    TopRepos(in.Repos, policy.RepoWindow, policy.TopRepos),
		Languages:   TallyLanguages(in.Repos, policy.TopLanguages),
		Stats:       stats,
		Heatmap:     est.Heatmap,
		Activity:    in.Activity,
		Persona:     est.Persona,
		GeneratedAt: in.FetchedAt,
	}
}

// TallyLanguages counts repositories per non-empty language and returns the
// top n, most frequent first. Ties keep first-encounter order.
func TallyLanguages(repos []RepositorySummary, n int) []LanguageTally {
	var tallies []LanguageTally
	index := make(map[string]int)
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		if i, ok := index[r.Language]; ok {
			tallies[i].Count++
			continue
		}
		index[r.Language] = len(tallies)
		tallies = append(tallies, LanguageTally{Name: r.Language, Count: 1})
	}
	slices.SortStableFunc(tallies, func(a, b LanguageTally) int {
		return b.Count - a.Count
	})
	if len(tallies) > n {
		tallies = tallies[:n]
	}
	return tallies
}

// TopRepos takes the first window repositories, keeps those with at least
// one star, and returns the n most starred. Ties keep input order.
func TopRepos(repos []RepositorySummary, window, n int) []RepositorySummary {
	if len(repos) > window {
		repos = repos[:window]
	}
	var out []RepositorySummary
	for _, r := range repos {
		if r.Stars > 0 {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b RepositorySummary) int {
		return b.Stars - a.Stars
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
