package domain

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the code-search service links point at.
const DefaultBaseURL = "https://sourcegraph.com"

// Status messages shown instead of a link.
const (
	MsgCommitAndPush = "Commit your changes and push upstream first!"
	MsgCopied        = "Copied Sourcegraph link!"
)

// PushUpstreamMessage is the blocking message for a revision that is not on
// its upstream branch.
func PushUpstreamMessage(rev string) string {
	return fmt.Sprintf("Push revision %s upstream first!", ShortRevision(rev, 6))
}

// ShortRevision truncates rev to n characters for display.
func ShortRevision(rev string, n int) string {
	if len(rev) > n {
		return rev[:n]
	}
	return rev
}

// LinkResult is the outcome of a link request: either a URL or a blocking
// status message.
type LinkResult struct {
	URL     string
	Blocked string
}

// IsBlocked returns true if the request ended with a status message.
func (r LinkResult) IsBlocked() bool {
	return r.Blocked != ""
}

// FormatLink assembles the permalink for target. Paths are not URL-encoded.
func FormatLink(baseURL string, uri RepositoryURI, rev string, target LinkTarget) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base := fmt.Sprintf("%s/%s@%s", strings.TrimRight(baseURL, "/"), uri, rev)

	switch target.Kind {
	case TargetDirectory:
		return base + "/-/tree/" + target.Path
	case TargetFile:
		return base + "/-/blob/" + target.Path
	case TargetFileLine:
		return fmt.Sprintf("%s/-/blob/%s#L%d", base, target.Path, target.Line)
	default:
		return base
	}
}
