package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relmate/relmate/internal/changelog"
	"github.com/relmate/relmate/internal/ci"
	"github.com/relmate/relmate/internal/config"
	relerrors "github.com/relmate/relmate/internal/errors"
	"github.com/relmate/relmate/internal/git"
)

var (
	changelogFormatFlag string
	changelogDirFlag    string
	changelogOutputFlag string
	changelogConfigFlag string
)

var changelogCmd = &cobra.Command{
	Use:   "changelog [previous-tag]",
	Short: "Derive a categorized changelog from commit history",
	Long: `Derive a categorized changelog from the repository's commit history and
export it as a multi-line CI output variable.

Every full commit-message line of the form "[category] description" becomes
an entry under that category. With a previous tag, only commits strictly
after the tag are read; without one, the entire history is.

The rendered report is appended to the file named by GITHUB_OUTPUT using the
heredoc convention (delimited by a literal EOF sentinel) and echoed to
stdout. Commit links are built from GITHUB_SERVER_URL and GITHUB_REPOSITORY.

Examples:
  relmate changelog                 # Whole history
  relmate changelog v1.2.3          # Commits after the v1.2.3 tag
  relmate changelog --format yaml   # Structured output instead of markdown`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		previousTag := ""
		if len(args) == 1 {
			previousTag = args[0]
		}
		return runChangelog(cmd, previousTag)
	},
}

func init() {
	rootCmd.AddCommand(changelogCmd)

	changelogCmd.Flags().StringVar(&changelogFormatFlag, "format", "", "Report format: markdown | yaml (default from config)")
	changelogCmd.Flags().StringVar(&changelogDirFlag, "dir", "", "Repository directory (default: current directory)")
	changelogCmd.Flags().StringVar(&changelogOutputFlag, "output", "", "CI output file (default: $GITHUB_OUTPUT)")
	changelogCmd.Flags().StringVar(&changelogConfigFlag, "config", "", "Config file path (default: .relmate.yml)")
}

func runChangelog(cmd *cobra.Command, previousTag string) error {
	cfg, err := config.Load(changelogConfigFlag)
	if err != nil {
		return relerrors.Wrap(err, relerrors.Environment)
	}
	if changelogFormatFlag != "" {
		cfg.Changelog.Format = changelogFormatFlag
	}
	if changelogOutputFlag != "" {
		cfg.CI.OutputFile = changelogOutputFlag
	}

	if err := config.ValidateForChangelog(cfg); err != nil {
		return relerrors.Wrap(err, relerrors.Environment,
			"Run under a CI job, or set GITHUB_OUTPUT, GITHUB_SERVER_URL and GITHUB_REPOSITORY")
	}

	dir := changelogDirFlag
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return relerrors.Wrap(err, relerrors.Runtime)
		}
	}

	repo, err := git.Open(dir)
	if err != nil {
		return relerrors.Wrap(err, relerrors.ExternalTool)
	}

	commits, err := git.History(repo, previousTag)
	if err != nil {
		return relerrors.Wrap(err, relerrors.ExternalTool)
	}

	report := changelog.Collect(commits)

	body, err := renderReport(report, cfg)
	if err != nil {
		return err
	}

	outputs := ci.NewOutputs(cfg.CI.OutputFile)
	if err := outputs.SetMultiline(cfg.Changelog.OutputKey, body); err != nil {
		return relerrors.Wrap(err, relerrors.Runtime)
	}

	fmt.Fprint(cmd.OutOrStdout(), body)
	return nil
}

// renderReport renders the report in the configured format.
func renderReport(report *changelog.Report, cfg *config.Configuration) (string, error) {
	switch cfg.Changelog.Format {
	case config.FormatYAML:
		body, err := changelog.RenderYAML(report)
		if err != nil {
			return "", relerrors.Wrap(err, relerrors.Runtime)
		}
		return body, nil
	default:
		baseURL, err := ci.RepoBaseURL(cfg.CI.ServerURL, cfg.CI.Repository)
		if err != nil {
			return "", relerrors.Wrap(err, relerrors.Environment)
		}
		return changelog.RenderMarkdown(report, baseURL), nil
	}
}
