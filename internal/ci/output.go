// Package ci implements the CI output-file contract used by GitHub
// Actions-style runners: step outputs are appended to the file named by
// GITHUB_OUTPUT, either as single "key=value" lines or as heredoc-delimited
// multi-line blocks.
package ci

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel is the literal delimiter for multi-line output blocks. The CI
// contract requires this exact token, so the body must never contain a line
// equal to it.
const Sentinel = "EOF"

// ErrSentinelCollision is returned when a multi-line value contains a line
// exactly equal to the sentinel, which would terminate the block early on
// the CI side. Failing beats silently corrupting the output file.
var ErrSentinelCollision = errors.New("value contains a line equal to the output sentinel")

// Outputs appends step outputs to a CI output file.
type Outputs struct {
	path string
}

// NewOutputs returns an Outputs writer for the given file path.
func NewOutputs(path string) *Outputs {
	return &Outputs{path: path}
}

// Path returns the underlying output file path.
func (o *Outputs) Path() string {
	return o.path
}

// Set appends a single-line "key=value" output.
func (o *Outputs) Set(key, value string) error {
	return o.append(fmt.Sprintf("%s=%s\n", key, value))
}

// SetMultiline appends a multi-line output using the heredoc convention:
//
//	key<<EOF
//	...value...
//	EOF
//
// Returns ErrSentinelCollision if any line of the value equals the sentinel.
func (o *Outputs) SetMultiline(key, value string) error {
	for _, line := range strings.Split(value, "\n") {
		if line == Sentinel {
			return fmt.Errorf("writing output %q: %w", key, ErrSentinelCollision)
		}
	}

	var sb strings.Builder
	sb.WriteString(key)
	sb.WriteString("<<")
	sb.WriteString(Sentinel)
	sb.WriteString("\n")
	sb.WriteString(value)
	if !strings.HasSuffix(value, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(Sentinel)
	sb.WriteString("\n")

	return o.append(sb.String())
}

// append opens the output file in append mode and writes the block.
func (o *Outputs) append(block string) error {
	f, err := os.OpenFile(o.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening output file %s: %w", o.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("writing output file %s: %w", o.path, err)
	}
	return nil
}

// RepoBaseURL joins the CI server URL and repository identifier into the
// repository base URL used for commit links, e.g.
// "https://github.example.com" + "acme/widget".
func RepoBaseURL(serverURL, repository string) (string, error) {
	if serverURL == "" {
		return "", errors.New("server URL is empty")
	}
	if repository == "" {
		return "", errors.New("repository identifier is empty")
	}
	return strings.TrimRight(serverURL, "/") + "/" + strings.Trim(repository, "/"), nil
}
