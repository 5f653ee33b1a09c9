package git

import (
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/relmate/relmate/internal/changelog"
)

// shortHashLen is the abbreviated hash length used in rendered commit links,
// matching git's default abbreviation.
const shortHashLen = 7

// History returns the commits from HEAD, newest first, as changelog input.
// If sinceTag is non-empty, only commits strictly after that tag are
// included, the same range "tag..HEAD" selects; the tag's own commit is
// excluded. An unknown tag or a log failure is fatal to the run.
func History(repo *gogit.Repository, sinceTag string) ([]changelog.Commit, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	excluded := make(map[plumbing.Hash]bool)
	if sinceTag != "" {
		excluded, err = reachableFromTag(repo, sinceTag)
		if err != nil {
			return nil, err
		}
	}

	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading commit log: %w", err)
	}
	defer iter.Close()

	var commits []changelog.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if excluded[c.Hash] {
			return nil
		}
		commits = append(commits, changelog.Commit{
			Hash:    c.Hash.String()[:shortHashLen],
			Message: strings.TrimRight(c.Message, "\n"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating commit log: %w", err)
	}

	logDebug("[git] History: %d commits since %q", len(commits), sinceTag)
	return commits, nil
}

// reachableFromTag collects every commit reachable from the tag, i.e. the
// exclusion set of the "tag..HEAD" range.
func reachableFromTag(repo *gogit.Repository, tag string) (map[plumbing.Hash]bool, error) {
	tagCommit, err := resolveTag(repo, tag)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&gogit.LogOptions{From: tagCommit})
	if err != nil {
		return nil, fmt.Errorf("reading log from tag %s: %w", tag, err)
	}
	defer iter.Close()

	excluded := make(map[plumbing.Hash]bool)
	err = iter.ForEach(func(c *object.Commit) error {
		excluded[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating log from tag %s: %w", tag, err)
	}

	return excluded, nil
}

// resolveTag resolves a tag name to its commit hash. Annotated tags resolve
// through the tag object to the tagged commit; lightweight tags point at the
// commit directly.
func resolveTag(repo *gogit.Repository, name string) (plumbing.Hash, error) {
	ref, err := repo.Tag(name)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving tag %q: %w", name, err)
	}

	if tagObj, err := repo.TagObject(ref.Hash()); err == nil {
		commit, err := tagObj.Commit()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("resolving annotated tag %q target: %w", name, err)
		}
		return commit.Hash, nil
	}

	return ref.Hash(), nil
}
