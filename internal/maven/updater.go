// Package maven drives the external Maven versions plugin that propagates a
// new version across all project build descriptors (pom.xml files). The
// invocation itself is fully delegated to Maven; this package only builds the
// command line and fails fast on a non-zero exit.
package maven

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"path/filepath"
	"sort"
)

// POM is the Maven build descriptor file name.
const POM = "pom.xml"

// CommandRunner executes an external command in a directory, streaming its
// output to the given writers and returning the exit code.
type CommandRunner interface {
	Run(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) (int, error)
}

// ExecRunner is the default CommandRunner backed by os/exec.
type ExecRunner struct{}

// Run executes the command and returns its exit code. A non-zero exit is not
// an error here; the caller decides how to treat it.
func (ExecRunner) Run(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("running %s: %w", name, err)
	}
	return 0, nil
}

// Updater propagates versions into build descriptors via the Maven versions
// plugin.
type Updater struct {
	// Cmd is the Maven executable, "mvn" unless overridden by config.
	Cmd string
	// Runner executes the Maven process. Swappable for tests.
	Runner CommandRunner
	// Stdout and Stderr receive the Maven process output.
	Stdout io.Writer
	Stderr io.Writer
}

// NewUpdater returns an Updater using the given Maven executable.
func NewUpdater(cmd string, stdout, stderr io.Writer) *Updater {
	return &Updater{Cmd: cmd, Runner: ExecRunner{}, Stdout: stdout, Stderr: stderr}
}

// SetVersion runs "versions:set" in dir to write the new version into every
// module's descriptor. Backup pom files are disabled so the working tree only
// contains the real descriptor changes to stage.
func (u *Updater) SetVersion(ctx context.Context, dir, newVersion string) error {
	args := []string{
		"-q",
		"versions:set",
		"-DnewVersion=" + newVersion,
		"-DgenerateBackupPoms=false",
		"-DprocessAllModules=true",
	}

	exitCode, err := u.Runner.Run(ctx, dir, u.Stdout, u.Stderr, u.Cmd, args...)
	if err != nil {
		return fmt.Errorf("invoking %s versions:set: %w", u.Cmd, err)
	}
	if exitCode != 0 {
		return fmt.Errorf("%s versions:set failed with exit code %d", u.Cmd, exitCode)
	}
	return nil
}

// DiscoverPOMs walks root and returns the relative paths of all pom.xml
// files, sorted. Hidden directories and build output are not skipped; Maven
// multi-module layouts keep descriptors in plain module directories.
func DiscoverPOMs(root string) ([]string, error) {
	var poms []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == POM {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			poms = append(poms, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s for descriptors: %w", root, err)
	}

	sort.Strings(poms)
	return poms, nil
}
