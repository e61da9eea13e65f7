// Package config loads gitwrapped settings.
//
// Values are layered, later layers winning:
//
//  1. built-in defaults ([Default])
//  2. the TOML file ($XDG_CONFIG_HOME/gitwrapped/config.toml or --config)
//  3. environment variables (main loads .env from the working directory first)
//  4. command-line flags, applied by the CLI
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gitwrapped/pkg/cache"
	apperr "github.com/matzehuels/gitwrapped/pkg/errors"
	"github.com/matzehuels/gitwrapped/pkg/integrations/github"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

const appName = "gitwrapped"

// Environment variables read by [Config.ApplyEnv].
const (
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvCache       = "GITWRAPPED_CACHE"
	EnvRedisAddr   = "GITWRAPPED_REDIS_ADDR"
	EnvMongoURI    = "GITWRAPPED_MONGO_URI"
	EnvRedisDB     = "GITWRAPPED_REDIS_DB"
	EnvAddr        = "GITWRAPPED_ADDR"
)

// Config is the complete application configuration.
type Config struct {
	GitHub GitHubConfig `toml:"github"`
	Cache  CacheConfig  `toml:"cache"`
	Score  ScoreConfig  `toml:"score"`
	Limits LimitsConfig `toml:"limits"`
	Deck   DeckConfig   `toml:"deck"`
	Server ServerConfig `toml:"server"`
}

type GitHubConfig struct {
	Token        string `toml:"token"`
	BaseURL      string `toml:"base_url"`
	ReposPerPage int    `toml:"repos_per_page"`
}

type CacheConfig struct {
	Backend       string   `toml:"backend"` // file, redis, mongo, none
	TTL           Duration `toml:"ttl"`
	Dir           string   `toml:"dir"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
	MongoURI      string   `toml:"mongo_uri"`
	MongoDatabase string   `toml:"mongo_database"`
}

type ScoreConfig struct {
	StarDivisor    float64 `toml:"star_divisor"`
	ContribDivisor float64 `toml:"contrib_divisor"`
}

type LimitsConfig struct {
	TopLanguages int `toml:"top_languages"`
	TopRepos     int `toml:"top_repos"`
	RepoWindow   int `toml:"repo_window"`
}

type DeckConfig struct {
	Autoplay         bool     `toml:"autoplay"`
	AutoplayInterval Duration `toml:"autoplay_interval"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a string ("24h", "5s") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	p := wrapped.DefaultPolicy()
	return Config{
		GitHub: GitHubConfig{
			BaseURL:      github.DefaultBaseURL,
			ReposPerPage: github.DefaultReposPerPage,
		},
		Cache: CacheConfig{
			Backend:       cache.BackendFile,
			TTL:           Duration{cache.TTLWrapped},
			RedisAddr:     "localhost:6379",
			MongoDatabase: "gitwrapped",
		},
		Score: ScoreConfig{
			StarDivisor:    p.Score.StarDivisor,
			ContribDivisor: p.Score.ContribDivisor,
		},
		Limits: LimitsConfig{
			TopLanguages: p.TopLanguages,
			TopRepos:     p.TopRepos,
			RepoWindow:   p.RepoWindow,
		},
		Deck: DeckConfig{
			AutoplayInterval: Duration{5 * time.Second},
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/gitwrapped/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load builds the configuration from defaults, the TOML file at path and
// the environment. An empty path uses [DefaultPath], where a missing file
// is fine; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// ApplyEnv overrides fields from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvGitHubToken); ok && v != "" {
		c.GitHub.Token = v
	}
	if v, ok := lookup(EnvCache); ok && v != "" {
		c.Cache.Backend = v
	}
	if v, ok := lookup(EnvRedisAddr); ok && v != "" {
		c.Cache.RedisAddr = v
	}
	if v, ok := lookup(EnvMongoURI); ok && v != "" {
		c.Cache.MongoURI = v
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvRedisDB); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "%s", EnvRedisDB)
		}
		c.Cache.RedisDB = n
	}
	return nil
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendRedis, cache.BackendMongo, cache.BackendNone:
	default:
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, cache.ErrUnknownBackend,
			"cache.backend %q (use file, redis, mongo or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == cache.BackendMongo && c.Cache.MongoURI == "" {
		return apperr.New(apperr.ErrCodeInvalidConfig, "cache.mongo_uri is required for the mongo backend")
	}
	if c.Cache.TTL.Duration < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.GitHub.ReposPerPage <= 0 || c.GitHub.ReposPerPage > 100 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "github.repos_per_page must be 1-100, got %d", c.GitHub.ReposPerPage)
	}
	if c.Deck.AutoplayInterval.Duration <= 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "deck.autoplay_interval must be positive")
	}
	if err := c.Policy().Validate(); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "invalid score or limits")
	}
	return nil
}

// Policy returns the aggregation policy described by the score and limits sections.
func (c Config) Policy() wrapped.Policy {
	return wrapped.Policy{
		TopLanguages: c.Limits.TopLanguages,
		RepoWindow:   c.Limits.RepoWindow,
		TopRepos:     c.Limits.TopRepos,
		Score: wrapped.ScorePolicy{
			StarDivisor:    c.Score.StarDivisor,
			ContribDivisor: c.Score.ContribDivisor,
		},
	}
}

// CacheOptions returns the options for [cache.Open]. defaultDir is used
// when cache.dir is unset.
func (c Config) CacheOptions(defaultDir string) cache.Options {
	dir := c.Cache.Dir
	if dir == "" {
		dir = defaultDir
	}
	return cache.Options{
		Backend: c.Cache.Backend,
		Dir:     dir,
		Redis: cache.RedisOptions{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
		},
		Mongo: cache.MongoOptions{
			URI:      c.Cache.MongoURI,
			Database: c.Cache.MongoDatabase,
		},
	}
}

// String renders the configuration as TOML with the token redacted.
func (c Config) String() string {
	if c.GitHub.Token != "" {
		c.GitHub.Token = "***"
	}
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return buf.String()
}
