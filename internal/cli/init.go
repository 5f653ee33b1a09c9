package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/relmate/relmate/internal/config"
	relerrors "github.com/relmate/relmate/internal/errors"
	"github.com/relmate/relmate/internal/output"
)

var initDirFlag string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented " + config.ProjectConfigFile + " config template",
	Long: `Write a commented configuration template to ` + config.ProjectConfigFile + ` in the
project directory. The template documents every option together with its
default; the commands run fine without it.

Examples:
  relmate init                # Create ` + config.ProjectConfigFile + ` in the current directory
  relmate init --force        # Overwrite an existing config
  relmate init --dir ./svc    # Create it in another checkout`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initDirFlag, "dir", "", "Project directory (default: current directory)")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	dir := initDirFlag
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return relerrors.Wrap(err, relerrors.Runtime)
		}
	}

	path := filepath.Join(dir, config.ProjectConfigFile)
	if _, err := os.Stat(path); err == nil && !force {
		return relerrors.NewInputError(
			fmt.Sprintf("%s already exists", path),
			"Pass --force to overwrite it",
		)
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return relerrors.WrapWithMessage(err, relerrors.Runtime, "writing config template")
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Wrote "+path)
	return nil
}
