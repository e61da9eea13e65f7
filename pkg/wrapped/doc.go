// Package wrapped builds the "GitHub Wrapped" view of an account.
//
// # Pipeline
//
// A lookup flows through four stages:
//
//  1. Input gate: [github.ParseUsername] normalizes and validates the login
//  2. Fetch: [Fetch] calls the profile, repos, events and search endpoints
//     concurrently; only the profile call is mandatory
//  3. Estimate: a [StatsEstimator] fabricates contributions, heatmap,
//     streak and persona, which the anonymous REST API cannot supply
//  4. Aggregate: [Aggregate] is a pure function producing the [ViewModel]
//
// [Service] wires the stages together with a best-effort cache and
// collapses concurrent lookups of the same login.
//
// # Fabricated figures
//
// Contributions, commits, streak, active days and the heatmap are not
// real. [RandomEstimator] is not reproducible; [SeededEstimator] is, and
// is what tests and the --seed flag use. The pull-request count is real
// whenever the search request succeeds.
//
// # Sharing
//
// [ShareText] and [TweetURL] produce the share line and intent link shown
// on the score panel.
//
// [github.ParseUsername]: github.com/matzehuels/gitwrapped/pkg/integrations/github.ParseUsername
package wrapped
