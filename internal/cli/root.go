// Package cli defines the relmate command surface. Each command lives in its
// own file and registers itself on the root command in init().
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relmate/relmate/internal/build"
	relerrors "github.com/relmate/relmate/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "relmate",
	Short: "CI release helpers: version bumping and changelog generation",
	Long: `relmate bundles the two release chores a CI pipeline runs around a tagged
release: bumping the patch version across Maven build descriptors, and
deriving a categorized changelog from commit history.

Both commands are stateless single passes and fail fast on the first error,
leaving error handling to the CI system.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", build.Version, build.Commit, build.BuildDate)
}

// Execute runs the root command and returns the process exit code.
// Structured errors are printed with their remediation steps; anything else
// is wrapped as a runtime error.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	cliErr := relerrors.AsCLIError(err)
	if cliErr == nil {
		cliErr = relerrors.Wrap(err, relerrors.Runtime)
	}
	relerrors.PrintError(cliErr)
	return exitCodeFor(cliErr.Category)
}

// exitCodeFor maps an error category to the documented exit code.
func exitCodeFor(category relerrors.ErrorCategory) int {
	switch category {
	case relerrors.InvalidInput:
		return ExitInvalidArguments
	case relerrors.Environment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeFailure
	}
}
