package changelog

import (
	"regexp"
	"strings"
)

// taggedLine matches a full commit-message line of the form
// "[category] description". The category may contain letters, digits,
// underscore, dot, or hyphen. A bracket appearing mid-line does not match.
var taggedLine = regexp.MustCompile(`^\[([A-Za-z0-9_.-]+)\] (.+)$`)

// Collect parses every commit message and groups tagged lines into a Report.
// Commits are traversed in the order given (the git package yields them
// newest first); within a commit, lines are taken top to bottom. A commit
// with no tagged lines contributes nothing; a commit may contribute several
// entries, possibly under different categories.
func Collect(commits []Commit) *Report {
	report := NewReport()

	for _, c := range commits {
		for _, line := range strings.Split(c.Message, "\n") {
			category, description, ok := parseLine(strings.TrimRight(line, "\r"))
			if !ok {
				continue
			}
			report.Add(category, Entry{Hash: c.Hash, Description: description})
		}
	}

	return report
}

// parseLine extracts the category and description from a tagged line.
// Returns ok=false for lines that are not full-line tag matches.
func parseLine(line string) (category, description string, ok bool) {
	m := taggedLine.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
