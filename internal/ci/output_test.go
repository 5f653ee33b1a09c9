package ci

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOutputs(t *testing.T) (*Outputs, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "output")
	return NewOutputs(path), path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSet_AppendsKeyValueLine(t *testing.T) {
	outputs, path := newTestOutputs(t)

	require.NoError(t, outputs.Set("has_changes", "true"))
	assert.Equal(t, "has_changes=true\n", readFile(t, path))
}

func TestSet_AppendsToExistingContent(t *testing.T) {
	outputs, path := newTestOutputs(t)
	require.NoError(t, os.WriteFile(path, []byte("earlier=1\n"), 0o644))

	require.NoError(t, outputs.Set("has_changes", "true"))
	assert.Equal(t, "earlier=1\nhas_changes=true\n", readFile(t, path))
}

func TestSetMultiline(t *testing.T) {
	tests := map[string]struct {
		value    string
		expected string
	}{
		"body with trailing newline": {
			value:    "**[ci]**\n- entry\n",
			expected: "changelog<<EOF\n**[ci]**\n- entry\nEOF\n",
		},
		"body without trailing newline": {
			value:    "**[ci]**\n- entry",
			expected: "changelog<<EOF\n**[ci]**\n- entry\nEOF\n",
		},
		"empty body": {
			value:    "",
			expected: "changelog<<EOF\n\nEOF\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			outputs, path := newTestOutputs(t)
			require.NoError(t, outputs.SetMultiline("changelog", tt.value))
			assert.Equal(t, tt.expected, readFile(t, path))
		})
	}
}

func TestSetMultiline_SentinelCollision(t *testing.T) {
	outputs, path := newTestOutputs(t)

	err := outputs.SetMultiline("changelog", "before\nEOF\nafter")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSentinelCollision)

	// Nothing may be written on collision.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSetMultiline_SentinelInsideLineIsFine(t *testing.T) {
	outputs, _ := newTestOutputs(t)
	assert.NoError(t, outputs.SetMultiline("changelog", "mentions EOF mid-line"))
}

func TestRepoBaseURL(t *testing.T) {
	tests := map[string]struct {
		serverURL  string
		repository string
		expected   string
		wantErr    bool
	}{
		"joins server and repository": {
			serverURL:  "https://github.example.com",
			repository: "acme/widget",
			expected:   "https://github.example.com/acme/widget",
		},
		"trailing slash on server": {
			serverURL:  "https://github.example.com/",
			repository: "acme/widget",
			expected:   "https://github.example.com/acme/widget",
		},
		"missing server": {
			serverURL:  "",
			repository: "acme/widget",
			wantErr:    true,
		},
		"missing repository": {
			serverURL:  "https://github.example.com",
			repository: "",
			wantErr:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			url, err := RepoBaseURL(tt.serverURL, tt.repository)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}
}
