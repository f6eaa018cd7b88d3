package domain

import "strings"

const (
	httpsRemotePrefix = "https://github.com/"
	sshRemotePrefix   = "git@github.com:"
	githubHost        = "github.com"
)

// RepositoryURI is a host/owner/repo identifier with no scheme and no .git suffix.
type RepositoryURI string

// ParseRemoteURL converts an origin URL into a RepositoryURI. Only
// https://github.com/<owner>/<repo>[.git] and git@github.com:<owner>/<repo>[.git]
// are accepted; any other shape returns a *RemoteFormatError.
func ParseRemoteURL(url string) (RepositoryURI, error) {
	url = strings.TrimSpace(url)

	var path string
	switch {
	case strings.HasPrefix(url, httpsRemotePrefix):
		path = strings.TrimPrefix(url, httpsRemotePrefix)
	case strings.HasPrefix(url, sshRemotePrefix):
		path = strings.TrimPrefix(url, sshRemotePrefix)
	default:
		return "", &RemoteFormatError{URL: url}
	}

	path = strings.TrimSuffix(path, ".git")
	owner, repo, ok := strings.Cut(path, "/")
	if !ok || !isRepoSegment(owner) || !isRepoSegment(repo) {
		return "", &RemoteFormatError{URL: url}
	}

	return RepositoryURI(githubHost + "/" + owner + "/" + repo), nil
}

// isRepoSegment reports whether s is a non-empty owner or repository name.
func isRepoSegment(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

func (u RepositoryURI) String() string {
	return string(u)
}
