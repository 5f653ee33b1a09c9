// Package testutil provides test fixtures shared across relmate tests,
// chiefly throwaway git repositories built with go-git.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Repo wraps a temporary git repository with helpers for building history.
type Repo struct {
	T   *testing.T
	Dir string
	Git *gogit.Repository
}

// NewRepo initializes an empty repository in a temp directory.
func NewRepo(t *testing.T) *Repo {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return &Repo{T: t, Dir: dir, Git: repo}
}

// WriteFile writes a file relative to the repository root.
func (r *Repo) WriteFile(name, content string) {
	r.T.Helper()
	path := filepath.Join(r.Dir, name)
	require.NoError(r.T, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(r.T, os.WriteFile(path, []byte(content), 0o644))
}

// Commit stages everything and commits with the given message.
// The message doubles as file content so consecutive commits always differ.
func (r *Repo) Commit(message string) plumbing.Hash {
	r.T.Helper()

	r.WriteFile("file.txt", message)

	wt, err := r.Git.Worktree()
	require.NoError(r.T, err)
	_, err = wt.Add(".")
	require.NoError(r.T, err)

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: testSignature(),
	})
	require.NoError(r.T, err)
	return hash
}

// LightweightTag creates a lightweight tag pointing at the given commit.
func (r *Repo) LightweightTag(name string, hash plumbing.Hash) {
	r.T.Helper()
	_, err := r.Git.CreateTag(name, hash, nil)
	require.NoError(r.T, err)
}

// AnnotatedTag creates an annotated tag pointing at the given commit.
func (r *Repo) AnnotatedTag(name string, hash plumbing.Hash) {
	r.T.Helper()
	_, err := r.Git.CreateTag(name, hash, &gogit.CreateTagOptions{
		Message: "release " + name,
		Tagger:  testSignature(),
	})
	require.NoError(r.T, err)
}

// HeadMessage returns the HEAD commit message without its trailing newline.
func (r *Repo) HeadMessage() string {
	r.T.Helper()
	head, err := r.Git.Head()
	require.NoError(r.T, err)
	commit, err := r.Git.CommitObject(head.Hash())
	require.NoError(r.T, err)
	return strings.TrimRight(commit.Message, "\n")
}

// ReadFile reads a file relative to the repository root.
func (r *Repo) ReadFile(name string) string {
	r.T.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, name))
	require.NoError(r.T, err)
	return string(data)
}

func testSignature() *object.Signature {
	return &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()}
}
