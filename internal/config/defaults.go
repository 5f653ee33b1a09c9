package config

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// version_file: The file the bumped version string is persisted to.
		"version_file": "VERSION",
		// commit_message: Template for the version-bump commit. The %s verb
		// receives the new snapshot version. The leading [ci] tag keeps bump
		// commits grouped under "ci" in generated changelogs.
		"commit_message": "[ci] Bump version to %s",
		// maven_cmd: Maven executable invoked for versions:set.
		"maven_cmd": "mvn",
		"changelog": map[string]interface{}{
			"format":     "markdown", // markdown | yaml
			"output_key": "changelog",
		},
		"bump": map[string]interface{}{
			"output_key": "has_changes",
		},
		// ci: Filled from GITHUB_OUTPUT / GITHUB_SERVER_URL / GITHUB_REPOSITORY
		// at load; empty defaults so validation can report what is missing.
		"ci": map[string]interface{}{
			"output_file": "",
			"server_url":  "",
			"repository":  "",
		},
	}
}

// GetDefaultConfigTemplate returns a commented config template that
// documents all available options.
func GetDefaultConfigTemplate() string {
	return `# relmate configuration
# Any value can be overridden via RELMATE_* environment variables,
# e.g. RELMATE_CHANGELOG_FORMAT=yaml

version_file: VERSION                      # File the bumped version is written to
commit_message: "[ci] Bump version to %s"  # %s receives the new snapshot version
maven_cmd: mvn                             # Maven executable for versions:set

changelog:
  format: markdown                         # markdown | yaml
  output_key: changelog                    # CI output variable name

bump:
  output_key: has_changes                  # CI output flag set when a commit was made

# ci.* is normally taken from the runner environment:
#   GITHUB_OUTPUT, GITHUB_SERVER_URL, GITHUB_REPOSITORY
ci:
  output_file: ""
  server_url: ""
  repository: ""
`
}
