package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gitwrapped/pkg/observability"
)

// logHooks reports pipeline, cache and HTTP events to the CLI logger at
// debug level, so -v shows what a lookup actually did.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
	_ observability.HTTPHooks     = logHooks{}
)

func (h logHooks) OnGenerateStart(_ context.Context, login string) {
	h.logger.Debug("generate", "login", login)
}

func (h logHooks) OnGenerateComplete(_ context.Context, login string, repoCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generate failed", "login", login, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("generate done", "login", login, "repos", repoCount, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnSecondaryFailure(_ context.Context, login, endpoint string, err error) {
	h.logger.Debug("degraded", "login", login, "endpoint", endpoint, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http done", "method", method, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
