package wrapped

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/matzehuels/gitwrapped/pkg/integrations/github"
	"github.com/matzehuels/gitwrapped/pkg/observability"
)

// Source is the upstream a snapshot is fetched from.
// *github.Client satisfies it.
type Source interface {
	FetchUser(ctx context.Context, login string) (*github.User, error)
	FetchRepos(ctx context.Context, login string, perPage int) ([]github.Repo, error)
	FetchEvents(ctx context.Context, login string) ([]github.Event, error)
	CountPullRequests(ctx context.Context, login string) (int, error)
}

// FetchOptions tunes [Fetch].
type FetchOptions struct {
	ReposPerPage int
	Logger       *log.Logger
	Now          func() time.Time
}

// Fetch issues the profile, repository, event and pull-request requests
// concurrently. A failed profile lookup fails the whole fetch; the other
// three degrade to empty results and are logged at debug level.
func Fetch(ctx context.Context, src Source, login string, opts FetchOptions) (*Input, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	hooks := observability.Pipeline()

	var (
		user    *github.User
		userErr error
		repos   []github.Repo
		events  []github.Event
		prCount int
		prKnown bool
	)

	degrade := func(endpoint string, err error) {
		logger.Debug("secondary request failed", "user", login, "endpoint", endpoint, "error", err)
		hooks.OnSecondaryFailure(ctx, login, endpoint, err)
	}

	p := pool.New().WithMaxGoroutines(4)
	p.Go(func() {
		user, userErr = src.FetchUser(ctx, login)
	})
	p.Go(func() {
		r, err := src.FetchRepos(ctx, login, opts.ReposPerPage)
		if err != nil {
			degrade("repos", err)
			return
		}
		repos = r
	})
	p.Go(func() {
		e, err := src.FetchEvents(ctx, login)
		if err != nil {
			degrade("events", err)
			return
		}
		events = e
	})
	p.Go(func() {
		n, err := src.CountPullRequests(ctx, login)
		if err != nil {
			degrade("search", err)
			return
		}
		prCount, prKnown = n, true
	})
	p.Wait()

	if userErr != nil {
		return nil, userErr
	}

	in := &Input{
		Profile:           profileFromUser(user, login),
		Repos:             make([]RepositorySummary, 0, len(repos)),
		Activity:          SummarizeEvents(events),
		PullRequests:      prCount,
		PullRequestsKnown: prKnown,
		FetchedAt:         now().UTC(),
	}
	for _, r := range repos {
		in.Repos = append(in.Repos, repoSummary(r, in.Profile.Login))
	}
	return in, nil
}

// SummarizeEvents counts events by type.
func SummarizeEvents(events []github.Event) ActivitySummary {
	var a ActivitySummary
	for _, e := range events {
		a.Total++
		switch e.Type {
		case github.EventPush:
			a.Pushes++
		case github.EventPullRequest:
			a.PullRequests++
		case github.EventIssues:
			a.Issues++
		default:
			a.Other++
		}
	}
	return a
}

func profileFromUser(u *github.User, login string) Profile {
	if u == nil {
		return Profile{Login: login}
	}
	p := Profile{
		Login:           u.Login,
		Name:            u.Name,
		AvatarURL:       u.AvatarURL,
		Bio:             u.Bio,
		Company:         u.Company,
		Location:        u.Location,
		TwitterUsername: u.TwitterUsername,
		HTMLURL:         u.HTMLURL,
		PublicRepos:     u.PublicRepos,
		Followers:       u.Followers,
		Following:       u.Following,
		CreatedAt:       u.CreatedAt,
	}
	if p.Login == "" {
		p.Login = login
	}
	return p
}

func repoSummary(r github.Repo, owner string) RepositorySummary {
	url := r.HTMLURL
	if url == "" {
		url = RepoURL(owner, r.Name)
	}
	return RepositorySummary{
		Name:        r.Name,
		Stars:       max(r.Stars, 0),
		Forks:       max(r.Forks, 0),
		Language:    r.Language,
		URL:         url,
		Description: r.Description,
	}
}
