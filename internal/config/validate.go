package config

import "fmt"

// changelog output formats accepted by ValidateForChangelog.
const (
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// ValidateForBump checks that everything the bump command needs is present.
func ValidateForBump(cfg *Configuration) error {
	if cfg.VersionFile == "" {
		return fmt.Errorf("version_file is empty")
	}
	if cfg.CommitMessage == "" {
		return fmt.Errorf("commit_message is empty")
	}
	if err := validateCommitTemplate(cfg.CommitMessage); err != nil {
		return err
	}
	if cfg.MavenCmd == "" {
		return fmt.Errorf("maven_cmd is empty")
	}
	if cfg.CI.OutputFile == "" {
		return fmt.Errorf("CI output file is not set (GITHUB_OUTPUT)")
	}
	return nil
}

// validateCommitTemplate checks that the commit message template carries
// exactly one %s verb for the new version. Any other verb, a missing verb,
// or extra verbs would render a garbled message through fmt.Sprintf.
func validateCommitTemplate(tmpl string) error {
	verbs := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if i+1 >= len(tmpl) {
			return fmt.Errorf("commit_message ends with a dangling %%")
		}
		switch tmpl[i+1] {
		case 's':
			verbs++
		case '%':
		default:
			return fmt.Errorf("commit_message contains unsupported verb %%%c (only %%s is substituted)", tmpl[i+1])
		}
		i++
	}
	if verbs != 1 {
		return fmt.Errorf("commit_message must contain exactly one %%s verb, found %d", verbs)
	}
	return nil
}

// ValidateForChangelog checks that everything the changelog command needs is
// present. The server URL and repository identifier are only needed for the
// markdown format, where commit links are built from them; the YAML format
// carries bare hashes.
func ValidateForChangelog(cfg *Configuration) error {
	if cfg.CI.OutputFile == "" {
		return fmt.Errorf("CI output file is not set (GITHUB_OUTPUT)")
	}
	if cfg.Changelog.Format != FormatMarkdown && cfg.Changelog.Format != FormatYAML {
		return fmt.Errorf("invalid changelog format %q (expected: markdown or yaml)", cfg.Changelog.Format)
	}
	if cfg.Changelog.Format == FormatMarkdown {
		if cfg.CI.ServerURL == "" {
			return fmt.Errorf("CI server URL is not set (GITHUB_SERVER_URL)")
		}
		if cfg.CI.Repository == "" {
			return fmt.Errorf("CI repository is not set (GITHUB_REPOSITORY)")
		}
	}
	return nil
}
