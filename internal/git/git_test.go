package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relmate/relmate/internal/testutil"
)

func TestHistory_FullHistoryNewestFirst(t *testing.T) {
	r := testutil.NewRepo(t)
	r.Commit("[ci] first")
	r.Commit("[ci] second")
	r.Commit("[ci] third")

	commits, err := History(r.Git, "")
	require.NoError(t, err)

	require.Len(t, commits, 3)
	assert.Equal(t, "[ci] third", commits[0].Message)
	assert.Equal(t, "[ci] second", commits[1].Message)
	assert.Equal(t, "[ci] first", commits[2].Message)
	for _, c := range commits {
		assert.Len(t, c.Hash, 7)
	}
}

func TestHistory_SinceTag(t *testing.T) {
	tests := map[string]struct {
		tagger func(r *testutil.Repo, name string, hash plumbing.Hash)
	}{
		"lightweight tag": {tagger: (*testutil.Repo).LightweightTag},
		"annotated tag":   {tagger: (*testutil.Repo).AnnotatedTag},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := testutil.NewRepo(t)
			r.Commit("[ci] before tag")
			tagged := r.Commit("[ci] tagged")
			tt.tagger(r, "v1.0.0", tagged)
			r.Commit("[ci] after one")
			r.Commit("[ci] after two")

			commits, err := History(r.Git, "v1.0.0")
			require.NoError(t, err)

			// Strictly after the tag: the tagged commit itself is excluded.
			require.Len(t, commits, 2)
			assert.Equal(t, "[ci] after two", commits[0].Message)
			assert.Equal(t, "[ci] after one", commits[1].Message)
		})
	}
}

func TestHistory_TagAtHead(t *testing.T) {
	r := testutil.NewRepo(t)
	head := r.Commit("[ci] only")
	r.LightweightTag("v1.0.0", head)

	commits, err := History(r.Git, "v1.0.0")
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestHistory_UnknownTag(t *testing.T) {
	r := testutil.NewRepo(t)
	r.Commit("[ci] first")

	_, err := History(r.Git, "v9.9.9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v9.9.9")
}

func TestHistory_MultilineMessagesPreserved(t *testing.T) {
	r := testutil.NewRepo(t)
	r.Commit("[framework] add module\n[ci] cleanup\n")

	commits, err := History(r.Git, "")
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "[framework] add module\n[ci] cleanup", commits[0].Message)
}

func TestStageCommitFlow(t *testing.T) {
	r := testutil.NewRepo(t)
	r.Commit("[ci] initial")

	// No staged changes right after a commit.
	staged, err := HasStagedChanges(r.Git)
	require.NoError(t, err)
	assert.False(t, staged)

	// Modify tracked file and add a new descriptor.
	r.WriteFile("VERSION", "1.2.4\n")
	r.WriteFile("pom.xml", "<project/>")

	err = StageFiles(r.Git, r.Dir, []string{"VERSION", "pom.xml"})
	require.NoError(t, err)

	staged, err = HasStagedChanges(r.Git)
	require.NoError(t, err)
	assert.True(t, staged)

	hash, err := Commit(r.Git, "[ci] Bump version to 1.2.4-SNAPSHOT")
	require.NoError(t, err)
	assert.Len(t, hash, 40)

	staged, err = HasStagedChanges(r.Git)
	require.NoError(t, err)
	assert.False(t, staged, "commit consumes the staged changes")

	assert.Equal(t, "[ci] Bump version to 1.2.4-SNAPSHOT", r.HeadMessage())
}

func TestStageFiles_SubdirectoryPaths(t *testing.T) {
	r := testutil.NewRepo(t)
	r.Commit("[ci] initial")
	r.WriteFile("service/VERSION", "1.2.4\n")
	r.WriteFile("service/pom.xml", "<project/>")

	// Paths relative to the subdirectory resolve against the worktree root.
	sub := filepath.Join(r.Dir, "service")
	err := StageFiles(r.Git, sub, []string{"VERSION", "pom.xml"})
	require.NoError(t, err)

	staged, err := HasStagedChanges(r.Git)
	require.NoError(t, err)
	assert.True(t, staged)

	_, err = Commit(r.Git, "[ci] Bump version to 1.2.4-SNAPSHOT")
	require.NoError(t, err)
	assert.Equal(t, "[ci] Bump version to 1.2.4-SNAPSHOT", r.HeadMessage())
}

func TestStageFiles_MissingPathFails(t *testing.T) {
	r := testutil.NewRepo(t)
	r.Commit("[ci] initial")

	err := StageFiles(r.Git, r.Dir, []string{"missing/pom.xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing/pom.xml")
}

func TestStageFiles_OutsideWorktreeFails(t *testing.T) {
	r := testutil.NewRepo(t)
	r.Commit("[ci] initial")

	err := StageFiles(r.Git, r.Dir, []string{"../elsewhere.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the worktree")
}

func TestOpen_DetectsFromSubdirectory(t *testing.T) {
	r := testutil.NewRepo(t)
	r.Commit("[ci] initial")

	sub := filepath.Join(r.Dir, "module-a")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	repo, err := Open(sub)
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestOpen_NotARepository(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
}
