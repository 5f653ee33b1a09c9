package changelog

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// RenderMarkdown renders the report as a markdown changelog. Each category,
// in lexicographic order, gets a bold "**[category]**" header followed by one
// bullet per entry and a blank separator line:
//
//	**[ci]**
//	- [abc123](https://example.com/org/repo/commit/abc123) fix build
//
// baseURL is the repository base URL; entry links point at
// "<baseURL>/commit/<hash>". An empty report renders an empty string.
func RenderMarkdown(r *Report, baseURL string) string {
	var sb strings.Builder

	for _, category := range r.Categories() {
		sb.WriteString("**[")
		sb.WriteString(category)
		sb.WriteString("]**\n")
		for _, e := range r.Entries(category) {
			sb.WriteString(FormatEntryLine(e, baseURL))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatEntryLine renders a single entry bullet with its commit link.
func FormatEntryLine(e Entry, baseURL string) string {
	return fmt.Sprintf("- [%s](%s/commit/%s) %s", e.Hash, baseURL, e.Hash, e.Description)
}

// entryLine is the inverse of FormatEntryLine: "- [hash](url) description".
var entryLine = regexp.MustCompile(`^- \[([0-9a-f]+)\]\([^)]*\) (.+)$`)

// ParseEntryLine parses a rendered bullet back into an Entry.
// Returns ok=false for lines that are not entry bullets.
func ParseEntryLine(line string) (Entry, bool) {
	m := entryLine.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{Hash: m[1], Description: m[2]}, true
}

// yamlCategory is one category block in the YAML rendering.
type yamlCategory struct {
	Category string      `yaml:"category"`
	Entries  []yamlEntry `yaml:"entries"`
}

// yamlEntry is one entry in the YAML rendering.
type yamlEntry struct {
	Hash        string `yaml:"hash"`
	Description string `yaml:"description"`
}

// RenderYAML renders the report as a YAML document, a structured alternative
// to the sentinel-delimited markdown export. Category order matches
// Categories(); entry order is preserved.
func RenderYAML(r *Report) (string, error) {
	cats := make([]yamlCategory, 0, len(r.Categories()))
	for _, category := range r.Categories() {
		entries := r.Entries(category)
		yc := yamlCategory{Category: category, Entries: make([]yamlEntry, 0, len(entries))}
		for _, e := range entries {
			yc.Entries = append(yc.Entries, yamlEntry{Hash: e.Hash, Description: e.Description})
		}
		cats = append(cats, yc)
	}

	out, err := yaml.Marshal(cats)
	if err != nil {
		return "", fmt.Errorf("marshaling changelog YAML: %w", err)
	}
	return string(out), nil
}
