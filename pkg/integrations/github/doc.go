// Package github provides an HTTP client for the public GitHub REST API.
//
// # Overview
//
// This package fetches everything a wrapped snapshot is built from:
//
//   - [Client.FetchUser]: GET /users/{name}
//   - [Client.FetchRepos]: GET /users/{name}/repos?per_page=50&sort=updated
//   - [Client.FetchEvents]: GET /users/{name}/events/public?per_page=100
//   - [Client.CountPullRequests]: GET /search/issues?q=is:pr+author:{name}
//   - [Client.FetchTrending]: GET /search/repositories?q=created:>{date}
//
// # Usage
//
//	client := github.NewClient(os.Getenv("GITHUB_TOKEN"), "", nil)
//
//	login, err := github.ParseUsername("@torvalds")
//	if err != nil {
//	    return err
//	}
//	user, err := client.FetchUser(ctx, login)
//
// # Errors
//
// Only [Client.FetchUser] classifies its failures: a non-success status
// becomes USER_NOT_FOUND, anything else NETWORK_ERROR. The other calls
// return plain wrapped errors; callers treat them as secondary and degrade.
//
// # Authentication
//
// A personal access token is optional. Without a token, the client is
// limited to 60 requests/hour. No rate-limit handling is performed.
package github
