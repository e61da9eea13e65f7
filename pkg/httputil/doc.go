// Package httputil provides HTTP helpers shared by the GitHub client.
//
// # Retry
//
// [Retry] re-runs an operation when it fails with a [RetryableError].
// The GitHub client wraps transport failures and 5xx responses in
// [RetryableError]; a 404 or other 4xx is returned as-is and never retried.
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return client.Get(ctx, url, &v)
//	})
//
// Defaults: 3 attempts, 1 second initial delay, doubling after each failure.
// Rate-limit responses (403/429) are not special-cased.
package httputil
