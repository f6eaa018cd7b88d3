package git

import (
	"github.com/xvierd/sglink/internal/testutil/gitrepo"
)

func resolverFor(r *gitrepo.Repo) *Resolver {
	return NewResolver(r.Root, NewCommandRunner(NewLocator("", nil), nil), nil)
}
