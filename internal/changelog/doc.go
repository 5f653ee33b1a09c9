// Package changelog derives a categorized changelog from git commit history.
//
// This package implements:
//   - Commit-message parsing: full lines of the form "[category] description"
//     become entries under that category
//   - Grouping into a Report with deterministic, lexicographic category order
//   - Markdown rendering with commit links, and a structured YAML alternative
//
// Parsing and grouping are pure functions over a commit slice; collecting the
// commits themselves is the git package's job.
package changelog
