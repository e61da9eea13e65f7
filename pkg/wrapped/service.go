package wrapped

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/gitwrapped/pkg/cache"
	"github.com/matzehuels/gitwrapped/pkg/integrations/github"
	"github.com/matzehuels/gitwrapped/pkg/observability"
)

// DefaultFetchTimeout bounds one shared upstream fetch.
const DefaultFetchTimeout = time.Minute

// Service runs the normalize -> cache -> fetch -> estimate -> aggregate
// pipeline. Both the CLI and the HTTP server use it.
//
// The Service holds no per-request state; concurrent calls are safe and
// calls for the same login share one upstream fetch. The shared fetch is
// detached from any single caller's cancellation and bounded by
// FetchTimeout instead; a cancelled caller returns early on its own.
type Service struct {
	Source       Source
	Estimator    StatsEstimator
	Policy       Policy
	Cache        cache.Cache
	Keyer        cache.Keyer
	TTL          time.Duration
	ReposPerPage int
	FetchTimeout time.Duration
	Logger       *log.Logger

	now   func() time.Time
	group singleflight.Group
}

// NewService creates a service with default policy and TTL.
// A nil cache disables caching, a nil keyer uses the default key scheme,
// and a nil estimator fabricates figures from the global random source.
func NewService(src Source, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Service {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		Source:       src,
		Estimator:    NewRandomEstimator(),
		Policy:       DefaultPolicy(),
		Cache:        c,
		Keyer:        keyer,
		TTL:          cache.TTLWrapped,
		ReposPerPage: github.DefaultReposPerPage,
		FetchTimeout: DefaultFetchTimeout,
		Logger:       logger,
		now:          time.Now,
	}
}

type result struct {
	vm     *ViewModel
	cached bool
}

// Generate returns the wrapped snapshot for username, reporting whether it
// came from the cache. Input is normalized and validated first; invalid
// input never reaches the network. With refresh set the cache is not read,
// but the fresh result is still written back.
func (s *Service) Generate(ctx context.Context, username string, refresh bool) (*ViewModel, bool, error) {
	login, err := github.ParseUsername(username)
	if err != nil {
		return nil, false, err
	}
	if err := s.Policy.Validate(); err != nil {
		return nil, false, fmt.Errorf("invalid policy: %w", err)
	}

	key := s.Keyer.WrappedKey(login)
	sfKey := key
	if refresh {
		sfKey = "refresh:" + key
	}
	ch := s.group.DoChan(sfKey, func() (any, error) {
		shared, cancel := s.sharedContext(ctx)
		defer cancel()
		return s.generate(shared, login, key, refresh)
	})
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		r := res.Val.(result)
		return r.vm, r.cached, nil
	}
}

// sharedContext keeps ctx's values but not its cancellation.
func (s *Service) sharedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	shared := context.WithoutCancel(ctx)
	if s.FetchTimeout > 0 {
		return context.WithTimeout(shared, s.FetchTimeout)
	}
	return context.WithCancel(shared)
}

func (s *Service) generate(ctx context.Context, login, key string, refresh bool) (result, error) {
	if !refresh {
		if vm, ok := s.lookup(ctx, key); ok {
			s.Logger.Debug("wrapped cache hit", "user", login, "generated", vm.GeneratedAt)
			return result{vm: vm, cached: true}, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, login)
	start := s.now()

	in, err := Fetch(ctx, s.Source, login, FetchOptions{
		ReposPerPage: s.ReposPerPage,
		Logger:       s.Logger,
		Now:          s.now,
	})
	if err != nil {
		hooks.OnGenerateComplete(ctx, login, 0, s.now().Sub(start), err)
		return result{}, err
	}

	est := s.estimator().Estimate(EstimateInput{
		RepoCount:  len(in.Repos),
		EventCount: in.Activity.Total,
	})
	vm := Aggregate(*in, est, s.Policy)
	elapsed := s.now().Sub(start)
	hooks.OnGenerateComplete(ctx, login, len(in.Repos), elapsed, nil)

	s.Logger.Debug("generated wrapped",
		"user", vm.Profile.Login,
		"repos", vm.Stats.Repos,
		"stars", vm.Stats.Stars,
		"score", vm.Stats.Score,
		"duration", elapsed)

	s.store(ctx, key, vm)
	return result{vm: vm}, nil
}

// lookup returns a cached snapshot younger than TTL.
func (s *Service) lookup(ctx context.Context, key string) (*ViewModel, bool) {
	hooks := observability.Cache()
	data, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		s.Logger.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		hooks.OnCacheMiss(ctx, "wrapped")
		return nil, false
	}
	var vm ViewModel
	if err := json.Unmarshal(data, &vm); err != nil {
		s.Logger.Debug("discarding unreadable cache entry", "key", key, "error", err)
		_ = s.Cache.Delete(ctx, key)
		hooks.OnCacheMiss(ctx, "wrapped")
		return nil, false
	}
	if s.TTL > 0 && s.now().Sub(vm.GeneratedAt) >= s.TTL {
		hooks.OnCacheMiss(ctx, "wrapped")
		return nil, false
	}
	hooks.OnCacheHit(ctx, "wrapped")
	return &vm, true
}

// store writes vm best-effort; failures are logged, never returned.
func (s *Service) store(ctx context.Context, key string, vm *ViewModel) {
	data, err := json.Marshal(vm)
	if err != nil {
		s.Logger.Warn("encode snapshot failed", "error", err)
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.TTL); err != nil {
		s.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "wrapped", len(data))
}

func (s *Service) estimator() StatsEstimator {
	if s.Estimator == nil {
		return NewRandomEstimator()
	}
	return s.Estimator
}

// Invalidate drops the cached snapshot for username.
func (s *Service) Invalidate(ctx context.Context, username string) error {
	login, err := github.ParseUsername(username)
	if err != nil {
		return err
	}
	return s.Cache.Delete(ctx, s.Keyer.WrappedKey(login))
}
