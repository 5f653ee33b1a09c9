package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so tests are hermetic.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"GITHUB_OUTPUT", "GITHUB_SERVER_URL", "GITHUB_REPOSITORY"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	for _, kv := range os.Environ() {
		if len(kv) > 8 && kv[:8] == "RELMATE_" {
			name := kv[:indexOf(kv, '=')]
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
}

func indexOf(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return len(s)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing-is-fine-when-default"))
	require.Error(t, err, "explicit config path must exist")

	cfg, err = Load("")
	require.NoError(t, err)

	assert.Equal(t, "VERSION", cfg.VersionFile)
	assert.Equal(t, "[ci] Bump version to %s", cfg.CommitMessage)
	assert.Equal(t, "mvn", cfg.MavenCmd)
	assert.Equal(t, "markdown", cfg.Changelog.Format)
	assert.Equal(t, "changelog", cfg.Changelog.OutputKey)
	assert.Equal(t, "has_changes", cfg.Bump.OutputKey)
	assert.Empty(t, cfg.CI.OutputFile)
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "relmate.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
version_file: version.txt
changelog:
  format: yaml
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "version.txt", cfg.VersionFile)
	assert.Equal(t, "yaml", cfg.Changelog.Format)
	// Untouched keys keep their defaults.
	assert.Equal(t, "mvn", cfg.MavenCmd)
	assert.Equal(t, "changelog", cfg.Changelog.OutputKey)
}

func TestLoad_CIEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_OUTPUT", "/tmp/gh-output")
	t.Setenv("GITHUB_SERVER_URL", "https://github.example.com")
	t.Setenv("GITHUB_REPOSITORY", "acme/widget")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/gh-output", cfg.CI.OutputFile)
	assert.Equal(t, "https://github.example.com", cfg.CI.ServerURL)
	assert.Equal(t, "acme/widget", cfg.CI.Repository)
}

func TestLoad_RelmateEnvHasHighestPriority(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_OUTPUT", "/tmp/gh-output")
	t.Setenv("RELMATE_CI_OUTPUT_FILE", "/tmp/custom-output")
	t.Setenv("RELMATE_CHANGELOG_FORMAT", "yaml")
	t.Setenv("RELMATE_VERSION_FILE", "v.txt")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom-output", cfg.CI.OutputFile)
	assert.Equal(t, "yaml", cfg.Changelog.Format)
	assert.Equal(t, "v.txt", cfg.VersionFile)
}

func TestValidateForBump(t *testing.T) {
	tests := map[string]struct {
		mutate  func(cfg *Configuration)
		wantErr string
	}{
		"valid": {
			mutate: func(cfg *Configuration) { cfg.CI.OutputFile = "/tmp/out" },
		},
		"missing output file": {
			mutate:  func(cfg *Configuration) {},
			wantErr: "GITHUB_OUTPUT",
		},
		"missing version file": {
			mutate: func(cfg *Configuration) {
				cfg.CI.OutputFile = "/tmp/out"
				cfg.VersionFile = ""
			},
			wantErr: "version_file",
		},
		"commit message without verb": {
			mutate: func(cfg *Configuration) {
				cfg.CI.OutputFile = "/tmp/out"
				cfg.CommitMessage = "Bump version"
			},
			wantErr: "exactly one %s verb",
		},
		"commit message with two verbs": {
			mutate: func(cfg *Configuration) {
				cfg.CI.OutputFile = "/tmp/out"
				cfg.CommitMessage = "Bump %s to %s"
			},
			wantErr: "exactly one %s verb",
		},
		"commit message with foreign verb": {
			mutate: func(cfg *Configuration) {
				cfg.CI.OutputFile = "/tmp/out"
				cfg.CommitMessage = "Bump %s build %d"
			},
			wantErr: "unsupported verb %d",
		},
		"commit message with escaped percent": {
			mutate: func(cfg *Configuration) {
				cfg.CI.OutputFile = "/tmp/out"
				cfg.CommitMessage = "Bump to %s (100%%)"
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)

			err = ValidateForBump(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateForChangelog(t *testing.T) {
	valid := func(cfg *Configuration) {
		cfg.CI.OutputFile = "/tmp/out"
		cfg.CI.ServerURL = "https://github.example.com"
		cfg.CI.Repository = "acme/widget"
	}

	tests := map[string]struct {
		mutate  func(cfg *Configuration)
		wantErr string
	}{
		"valid": {
			mutate: valid,
		},
		"missing server URL": {
			mutate: func(cfg *Configuration) {
				valid(cfg)
				cfg.CI.ServerURL = ""
			},
			wantErr: "GITHUB_SERVER_URL",
		},
		"missing repository": {
			mutate: func(cfg *Configuration) {
				valid(cfg)
				cfg.CI.Repository = ""
			},
			wantErr: "GITHUB_REPOSITORY",
		},
		"bad format": {
			mutate: func(cfg *Configuration) {
				valid(cfg)
				cfg.Changelog.Format = "xml"
			},
			wantErr: "invalid changelog format",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)

			err = ValidateForChangelog(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
