package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/relmate/relmate/internal/ci"
	"github.com/relmate/relmate/internal/config"
	relerrors "github.com/relmate/relmate/internal/errors"
	"github.com/relmate/relmate/internal/git"
	"github.com/relmate/relmate/internal/maven"
	"github.com/relmate/relmate/internal/output"
	"github.com/relmate/relmate/internal/progress"
	"github.com/relmate/relmate/internal/version"
)

var (
	bumpDirFlag        string
	bumpOutputFlag     string
	bumpConfigFlag     string
	bumpSkipCommitFlag bool
)

// newMavenUpdater builds the descriptor updater. Swappable for tests.
var newMavenUpdater = maven.NewUpdater

var bumpCmd = &cobra.Command{
	Use:   "bump <version>",
	Short: "Increment the patch version and commit the result",
	Long: `Increment the patch component of the given version, then persist and
propagate it:

  1. Write the new version to the VERSION file
  2. Run the Maven versions plugin to set <new>-SNAPSHOT across all
     modules (backup poms disabled)
  3. Stage the VERSION file and every pom.xml
  4. Commit if the staged diff is non-empty, and append has_changes=true
     to the CI output file named by GITHUB_OUTPUT

When nothing changed, no commit is created and no flag is written. Any
failure aborts immediately; a failure after the VERSION write but before the
commit leaves an uncommitted local modification for the CI job to discard.

Examples:
  relmate bump 1.2.3                 # VERSION becomes 1.2.4, poms 1.2.4-SNAPSHOT
  relmate bump 1.2.3 --skip-commit   # Stage only, for pipeline debugging
  relmate bump 1.2.3 --dir ./service # Operate on another checkout`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBump(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(bumpCmd)

	bumpCmd.Flags().StringVar(&bumpDirFlag, "dir", "", "Project directory (default: current directory)")
	bumpCmd.Flags().StringVar(&bumpOutputFlag, "output", "", "CI output file (default: $GITHUB_OUTPUT)")
	bumpCmd.Flags().StringVar(&bumpConfigFlag, "config", "", "Config file path (default: .relmate.yml)")
	bumpCmd.Flags().BoolVar(&bumpSkipCommitFlag, "skip-commit", false, "Stage changes but do not commit or set the CI flag")
}

func runBump(cmd *cobra.Command, versionArg string) error {
	cfg, err := config.Load(bumpConfigFlag)
	if err != nil {
		return relerrors.Wrap(err, relerrors.Environment)
	}
	if bumpOutputFlag != "" {
		cfg.CI.OutputFile = bumpOutputFlag
	}

	current, err := version.Parse(versionArg)
	if err != nil {
		return relerrors.NewInputErrorWithUsage(
			err.Error(),
			"relmate bump <major.minor.patch>",
			"Pass the current version as three dot-separated integers, e.g. 1.2.3",
		)
	}

	// The CI flag is only written when committing, so --skip-commit runs
	// don't need an output file.
	if !bumpSkipCommitFlag {
		if err := config.ValidateForBump(cfg); err != nil {
			return relerrors.Wrap(err, relerrors.Environment,
				"Run under a CI job that sets GITHUB_OUTPUT, or pass --output")
		}
	}

	dir := bumpDirFlag
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return relerrors.Wrap(err, relerrors.Runtime)
		}
	}

	next := current.Bump()
	snapshot := next.Snapshot()

	// Side effects run in the documented order and abort on first error.
	versionPath := filepath.Join(dir, cfg.VersionFile)
	if err := os.WriteFile(versionPath, []byte(next.String()+"\n"), 0o644); err != nil {
		return relerrors.WrapWithMessage(err, relerrors.Runtime, "writing version file")
	}

	updater := newMavenUpdater(cfg.MavenCmd, cmd.OutOrStdout(), cmd.ErrOrStderr())
	spin := progress.NewSpinner(fmt.Sprintf("Setting descriptor versions to %s", snapshot))
	spin.Start()
	err = updater.SetVersion(cmd.Context(), dir, snapshot)
	spin.Stop()
	if err != nil {
		return relerrors.Wrap(err, relerrors.ExternalTool,
			"Check that Maven and the versions plugin are available on the runner")
	}

	repo, err := git.Open(dir)
	if err != nil {
		return relerrors.Wrap(err, relerrors.ExternalTool)
	}

	poms, err := maven.DiscoverPOMs(dir)
	if err != nil {
		return relerrors.Wrap(err, relerrors.Runtime)
	}
	if err := git.StageFiles(repo, dir, append([]string{cfg.VersionFile}, poms...)); err != nil {
		return relerrors.Wrap(err, relerrors.ExternalTool)
	}

	hasChanges, err := git.HasStagedChanges(repo)
	if err != nil {
		return relerrors.Wrap(err, relerrors.ExternalTool)
	}

	output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Bumped %s -> %s (%d descriptors)", current, next, len(poms)))

	if !hasChanges {
		output.PrintNotice(cmd.OutOrStdout(), "No changes to commit")
		return nil
	}
	if bumpSkipCommitFlag {
		output.PrintNotice(cmd.OutOrStdout(), "Changes staged, commit skipped")
		return nil
	}

	message := fmt.Sprintf(cfg.CommitMessage, snapshot)
	hash, err := git.Commit(repo, message)
	if err != nil {
		return relerrors.Wrap(err, relerrors.ExternalTool)
	}
	output.PrintDetail(cmd.OutOrStdout(), fmt.Sprintf("Committed %.7s: %s", hash, message))

	outputs := ci.NewOutputs(cfg.CI.OutputFile)
	if err := outputs.Set(cfg.Bump.OutputKey, "true"); err != nil {
		return relerrors.Wrap(err, relerrors.Environment)
	}

	return nil
}
