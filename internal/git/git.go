// Package git provides the repository operations relmate needs: commit
// history traversal for the changelog command, and staging plus committing
// for the bump command. It uses the go-git library throughout, so no git CLI
// is required on the CI runner.
package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default, it's a no-op. Set it via SetDebugLogger.
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

// Open opens the git repository at the specified path or current working
// directory. DetectDotGit is enabled so the repository root is found from
// any subdirectory. If path is empty, the current working directory is used.
func Open(path string) (*gogit.Repository, error) {
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

	return repo, nil
}

// StageFiles stages the given paths, relative to dir, for commit.
// Open detects the repository root from any subdirectory, so dir may sit
// below the worktree root; each path is resolved against that root before
// staging. A listed path that does not exist is an error: callers only pass
// files they just wrote or discovered, so a miss means the paths and the
// worktree disagree and a silent skip would drop the file from the commit.
func StageFiles(repo *gogit.Repository, dir string, paths []string) error {
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	root := wt.Filesystem.Root()
	for _, p := range paths {
		abs, err := filepath.Abs(filepath.Join(dir, p))
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("path %s is outside the worktree %s", abs, root)
		}
		rel = filepath.ToSlash(rel)

		if _, err := wt.Filesystem.Stat(rel); err != nil {
			return fmt.Errorf("staging %s: %w", rel, err)
		}
		if _, err := wt.Add(rel); err != nil {
			return fmt.Errorf("staging %s: %w", rel, err)
		}
		logDebug("[git] staged %s", rel)
	}

	return nil
}

// HasStagedChanges reports whether the index differs from HEAD.
func HasStagedChanges(repo *gogit.Repository) (bool, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting worktree status: %w", err)
	}

	for _, fileStatus := range status {
		if fileStatus.Staging != gogit.Unmodified && fileStatus.Staging != gogit.Untracked {
			return true, nil
		}
	}
	return false, nil
}

// Commit creates a commit from the current index with the given message and
// returns its full hash.
func Commit(repo *gogit.Repository, message string) (string, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: signature(repo),
	})
	if err != nil {
		return "", fmt.Errorf("creating commit: %w", err)
	}

	logDebug("[git] committed %s", hash)
	return hash.String(), nil
}

// signature resolves the commit author: git config when present, then the
// conventional environment variables, then a CI fallback identity.
func signature(repo *gogit.Repository) *object.Signature {
	name := os.Getenv("GIT_COMMITTER_NAME")
	email := os.Getenv("GIT_COMMITTER_EMAIL")

	if cfg, err := repo.ConfigScoped(config.SystemScope); err == nil {
		if name == "" {
			name = cfg.User.Name
		}
		if email == "" {
			email = cfg.User.Email
		}
	}

	if name == "" {
		name = "relmate"
	}
	if email == "" {
		email = "relmate@ci"
	}

	return &object.Signature{Name: name, Email: email, When: time.Now()}
}
