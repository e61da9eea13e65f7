// Package integrations provides the shared HTTP plumbing for upstream APIs.
//
// # Overview
//
// The only upstream today is the public GitHub REST API, implemented in the
// [github] subpackage. This package holds what any API client needs:
//
//   - [Client]: GET + JSON decode with default headers and retries
//   - [Client.Cached]: cache-first wrapper storing JSON in a [cache.Cache]
//   - [StatusError], [ErrNotFound], [ErrNetwork]: status classification
//
// # Retries
//
// Transport failures and 5xx responses are wrapped as
// [httputil.RetryableError] and retried (3 attempts, exponential backoff).
// 404 and other 4xx responses fail immediately. Rate limiting is not
// handled: a 403 from GitHub is just another non-success status.
//
// # Observability
//
// Every request reports to [observability.HTTP] and every cached lookup to
// [observability.Cache].
//
// [github]: github.com/matzehuels/gitwrapped/pkg/integrations/github
// [cache.Cache]: github.com/matzehuels/gitwrapped/pkg/cache.Cache
// [httputil.RetryableError]: github.com/matzehuels/gitwrapped/pkg/httputil.RetryableError
// [observability.HTTP]: github.com/matzehuels/gitwrapped/pkg/observability.HTTP
// [observability.Cache]: github.com/matzehuels/gitwrapped/pkg/observability.Cache
package integrations
