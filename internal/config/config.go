// Package config provides layered configuration for relmate using koanf.
// Values are loaded with priority: RELMATE_* environment variables > CI
// platform environment (GITHUB_OUTPUT, GITHUB_SERVER_URL, GITHUB_REPOSITORY)
// > project config (.relmate.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ProjectConfigFile is the optional per-repository config file name.
const ProjectConfigFile = ".relmate.yml"

// Configuration holds all settings for both relmate commands.
type Configuration struct {
	// VersionFile is the file the bumped version string is written to.
	VersionFile string `koanf:"version_file"`
	// CommitMessage is the version-bump commit message template; the single
	// %s verb receives the new snapshot version.
	CommitMessage string `koanf:"commit_message"`
	// MavenCmd is the Maven executable used for versions:set.
	MavenCmd string `koanf:"maven_cmd"`

	Changelog ChangelogConfig `koanf:"changelog"`
	Bump      BumpConfig      `koanf:"bump"`
	CI        CIConfig        `koanf:"ci"`
}

// ChangelogConfig configures the changelog command.
type ChangelogConfig struct {
	// Format selects the report rendering: "markdown" or "yaml".
	Format string `koanf:"format"`
	// OutputKey is the CI output variable name for the rendered report.
	OutputKey string `koanf:"output_key"`
}

// BumpConfig configures the bump command.
type BumpConfig struct {
	// OutputKey is the CI output flag name set when a commit was made.
	OutputKey string `koanf:"output_key"`
}

// CIConfig is the CI platform contract, normally filled from the runner's
// environment.
type CIConfig struct {
	// OutputFile is the step output file (GITHUB_OUTPUT).
	OutputFile string `koanf:"output_file"`
	// ServerURL is the CI server base URL (GITHUB_SERVER_URL).
	ServerURL string `koanf:"server_url"`
	// Repository is the "owner/name" identifier (GITHUB_REPOSITORY).
	Repository string `koanf:"repository"`
}

// ciEnvKeys maps CI platform environment variables onto config keys.
var ciEnvKeys = map[string]string{
	"GITHUB_OUTPUT":     "ci.output_file",
	"GITHUB_SERVER_URL": "ci.server_url",
	"GITHUB_REPOSITORY": "ci.repository",
}

// Load loads configuration from defaults, the project config file, the CI
// platform environment, and RELMATE_* overrides, in ascending priority.
// projectConfigPath overrides the default .relmate.yml location; pass ""
// for the default.
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	loadCIEnv(k)

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the optional project-level YAML config.
// A missing file is not an error; a present but unparseable one is.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigFile
	if customPath != "" {
		path = customPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if customPath != "" {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		return nil
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading project config %s: %w", path, err)
	}
	return nil
}

// loadCIEnv copies the CI platform contract variables into the config tree.
func loadCIEnv(k *koanf.Koanf) {
	for envName, key := range ciEnvKeys {
		if v := os.Getenv(envName); v != "" {
			k.Set(key, v)
		}
	}
}

// loadEnvironmentConfig loads RELMATE_* environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("RELMATE_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("loading environment config: %w", err)
	}
	return nil
}

// envTransform maps RELMATE_CHANGELOG_FORMAT to "changelog.format" and so
// on. Only the known groups become nested keys; everything else stays a flat
// top-level key (RELMATE_VERSION_FILE -> "version_file").
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "RELMATE_"))
	for _, group := range []string{"changelog", "bump", "ci"} {
		if strings.HasPrefix(key, group+"_") {
			return group + "." + strings.TrimPrefix(key, group+"_")
		}
	}
	return key
}
