// Package git provides repository access for nextver: release tag discovery
// and commit listing since a ref. It uses the go-git library so no git CLI
// installation is required. The core never touches the repository directly;
// it consumes the values this package produces.
package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/raveheart1/nextver/internal/commit"
	"github.com/raveheart1/nextver/internal/version"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default it's a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repository wraps an opened git repository.
type Repository struct {
	repo *gogit.Repository
}

// Open opens the repository at path, or the current working directory when
// path is empty. DetectDotGit traverses up the directory tree to find the
// repository root, matching git CLI behavior.
func Open(path string) (*Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return &Repository{repo: repo}, nil
}

// Release is a discovered release tag: the parsed version, the tag name as
// written, and the commit the tag points at.
type Release struct {
	Version version.Version
	TagName string
	Hash    plumbing.Hash
}

// LatestRelease returns the highest release tag parseable under the active
// scheme, or nil when no tag matches. Tags that do not match the scheme
// grammar are skipped, not reported as errors; a repository with only
// malformed tags behaves as if it had no previous release.
func (r *Repository) LatestRelease(scheme version.Scheme, prefix string) (*Release, error) {
	tags, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var latest *Release
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		v, err := version.ParseTag(name, prefix, scheme)
		if err != nil {
			logDebug("[git] skipping tag %s: %v", name, err)
			return nil
		}

		hash, err := r.resolveTagTarget(ref)
		if err != nil {
			logDebug("[git] skipping tag %s: %v", name, err)
			return nil
		}

		if latest == nil || version.Compare(v, latest.Version) > 0 {
			latest = &Release{Version: v, TagName: name, Hash: hash}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	if latest != nil {
		logDebug("[git] latest release: %s (%s)", latest.TagName, latest.Hash)
	} else {
		logDebug("[git] no release tag found for scheme %s", scheme)
	}
	return latest, nil
}

// resolveTagTarget follows annotated tags to the commit they reference.
// Lightweight tags already point at the commit.
func (r *Repository) resolveTagTarget(ref *plumbing.Reference) (plumbing.Hash, error) {
	if tag, err := r.repo.TagObject(ref.Hash()); err == nil {
		return tag.Target, nil
	} else if err != plumbing.ErrObjectNotFound {
		return plumbing.ZeroHash, fmt.Errorf("reading tag object: %w", err)
	}
	return ref.Hash(), nil
}

// CommitsSince walks history from HEAD, newest first, stopping before the
// given release's commit. A nil release walks the full history, which is
// the first-release case. The returned order is authoritative for
// changelog rendering.
func (r *Repository) CommitsSince(since *Release) ([]commit.Raw, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading commit log: %w", err)
	}
	defer iter.Close()

	var commits []commit.Raw
	err = iter.ForEach(func(c *object.Commit) error {
		if since != nil && c.Hash == since.Hash {
			return storer.ErrStop
		}
		commits = append(commits, commit.Raw{
			Hash:    c.Hash.String(),
			Message: c.Message,
			Author:  c.Author.Name,
			When:    c.Author.When,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking commits: %w", err)
	}

	logDebug("[git] found %d commits since %s", len(commits), sinceName(since))
	return commits, nil
}

func sinceName(since *Release) string {
	if since == nil {
		return "the beginning"
	}
	return since.TagName
}
