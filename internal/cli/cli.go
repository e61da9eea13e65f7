// Package cli implements the gitwrapped command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitwrapped/internal/config"
	"github.com/matzehuels/gitwrapped/pkg/buildinfo"
	"github.com/matzehuels/gitwrapped/pkg/cache"
	"github.com/matzehuels/gitwrapped/pkg/integrations/github"
	"github.com/matzehuels/gitwrapped/pkg/observability"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "gitwrapped"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	refresh    bool
	seed       uint64
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "gitwrapped turns a GitHub profile into a year-in-review deck",
		Long: `gitwrapped looks up a public GitHub profile, summarizes its repositories,
languages and activity, and presents the result as a slide deck in the
terminal, a shareable SVG card or JSON.

Contribution counts, the heatmap, streaks and the persona are playful
estimates, not real contribution data.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gitwrapped/config.toml)")
	pf.BoolVar(&c.noCache, "no-cache", false, "disable caching")
	pf.BoolVar(&c.refresh, "refresh", false, "ignore cached snapshots and fetch again")
	pf.Uint64Var(&c.seed, "seed", 0, "seed the estimator for reproducible figures")

	root.AddCommand(c.deckCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.cardCommand())
	root.AddCommand(c.trendingCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Service Factory
// =============================================================================

// app bundles everything a command needs to produce snapshots.
type app struct {
	cfg    config.Config
	cache  cache.Cache
	github *github.Client
	svc    *wrapped.Service
}

// Close releases the cache backend.
func (a *app) Close() error {
	return a.cache.Close()
}

// newApp loads configuration and wires config -> cache -> GitHub client ->
// service. Seeding happens only when --seed was given explicitly.
func (c *CLI) newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if c.noCache {
		cfg.Cache.Backend = cache.BackendNone
	}

	store, err := c.openCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	observability.SetCacheHooks(logHooks{c.Logger})
	observability.SetHTTPHooks(logHooks{c.Logger})
	observability.SetPipelineHooks(logHooks{c.Logger})

	gh := github.NewClient(cfg.GitHub.Token, cfg.GitHub.BaseURL, store)
	svc := wrapped.NewService(gh, store, cache.KeyerForToken(cfg.GitHub.Token), c.Logger)
	svc.Policy = cfg.Policy()
	svc.ReposPerPage = cfg.GitHub.ReposPerPage
	svc.TTL = cfg.Cache.TTL.Duration
	if cmd.Flags().Changed("seed") {
		svc.Estimator = wrapped.NewSeededEstimator(c.seed)
		c.Logger.Debug("seeded estimator", "seed", c.seed)
	}

	return &app{cfg: cfg, cache: store, github: gh, svc: svc}, nil
}

// openCache opens the configured backend. An unreachable redis or mongo
// backend degrades to no caching with a warning, since snapshots can
// always be fetched again.
func (c *CLI) openCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	dir, err := cacheDir()
	if err != nil && cfg.Cache.Backend == cache.BackendFile && cfg.Cache.Dir == "" {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	store, err := cache.Open(ctx, cfg.CacheOptions(dir))
	if err != nil {
		if cfg.Cache.Backend == cache.BackendRedis || cfg.Cache.Backend == cache.BackendMongo {
			c.Logger.Warn("cache unavailable, continuing without it", "backend", cfg.Cache.Backend, "err", err)
			return cache.NewNullCache(), nil
		}
		return nil, fmt.Errorf("open cache: %w", err)
	}
	c.Logger.Debug("cache ready", "backend", cfg.Cache.Backend)
	return store, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/gitwrapped/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// stateDir returns the state directory (~/.local/state/gitwrapped/), where
// the deck writes its log file.
func stateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", appName), nil
}
