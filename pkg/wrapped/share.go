package wrapped

import (
	"fmt"
	"net/url"

	"github.com/matzehuels/gitwrapped/pkg/integrations/github"
)

const tweetIntentURL = "https://twitter.com/intent/tweet"

// ShareText returns the one-line brag copied to the clipboard.
func ShareText(vm *ViewModel) string {
	return fmt.Sprintf("GitHub Wrapped %d: %d/100! #GitHubWrapped", vm.GeneratedAt.Year(), vm.Stats.Score)
}

// TweetURL returns a tweet intent link prefilled with [ShareText].
func TweetURL(vm *ViewModel) string {
	return tweetIntentURL + "?text=" + url.QueryEscape(ShareText(vm))
}

// RepoURL returns the web page for owner/name.
func RepoURL(owner, name string) string {
	return github.ProfileURL(owner) + "/" + name
}
