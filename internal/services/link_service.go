package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/xvierd/sglink/internal/domain"
	"github.com/xvierd/sglink/internal/logging"
	"github.com/xvierd/sglink/internal/ports"
)

// LinkService builds permalinks from git facts.
type LinkService struct {
	facts   ports.GitFactsFactory
	baseURL string
	logger  logging.Logger
}

// NewLinkService creates a new link service.
func NewLinkService(facts ports.GitFactsFactory, baseURL string, logger logging.Logger) *LinkService {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	if baseURL == "" {
		baseURL = domain.DefaultBaseURL
	}
	return &LinkService{facts: facts, baseURL: baseURL, logger: logger}
}

// Ensure LinkService implements ports.LinkProvider.
var _ ports.LinkProvider = (*LinkService)(nil)

// Link selects the target described by ic and builds its link. Errors are
// logged at debug level before they are returned.
func (s *LinkService) Link(ctx context.Context, ic domain.InvocationContext) (domain.LinkResult, error) {
	log := s.logger.With("root", ic.Root)

	target, err := SelectTarget(ic)
	if err != nil {
		log.Debug("failed to select link target", "error", err.Error())
		return domain.LinkResult{}, err
	}

	facts := s.facts(ic.Root, ic.GitPath)
	result, err := s.BuildLink(ctx, facts, target, ic.Document)
	if err != nil {
		log.Debug("failed to build link", "target", target.String(), "error", err.Error())
		return domain.LinkResult{}, err
	}

	if result.IsBlocked() {
		log.Info("link blocked", "target", target.String(), "reason", result.Blocked)
	}
	return result, nil
}

// BuildLink resolves the repository URI and revision, checks the revision is
// upstream and, for line targets, that the document is clean.
// A failed check is reported in LinkResult.Blocked, not as an error.
func (s *LinkService) BuildLink(ctx context.Context, facts ports.GitFacts, target domain.LinkTarget, doc *domain.ActiveDocument) (domain.LinkResult, error) {
	if err := target.Validate(); err != nil {
		return domain.LinkResult{}, err
	}

	var (
		uri domain.RepositoryURI
		rev string
	)

	// URI and revision are independent; both must settle before composing.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		uri, err = facts.RepositoryURI(gctx)
		if err != nil {
			return fmt.Errorf("failed to resolve repository: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rev, err = facts.Revision(gctx)
		if err != nil {
			return fmt.Errorf("failed to resolve revision: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.LinkResult{}, err
	}

	if !facts.IsRevUpstream(ctx, rev) {
		return domain.LinkResult{Blocked: domain.PushUpstreamMessage(rev)}, nil
	}

	if target.Kind == domain.TargetFileLine {
		document := domain.ActiveDocument{Path: target.Path}
		if doc != nil {
			document = *doc
		}
		if !facts.IsFileClean(ctx, document) {
			return domain.LinkResult{Blocked: domain.MsgCommitAndPush}, nil
		}
	}

	return domain.LinkResult{URL: domain.FormatLink(s.baseURL, uri, rev, target)}, nil
}
