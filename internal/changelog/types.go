package changelog

import "sort"

// Commit is a single commit as read from repository history.
// Hash is the abbreviated hash used in rendered links; Message is the raw,
// possibly multi-line commit message.
type Commit struct {
	Hash    string
	Message string
}

// Entry is one changelog line extracted from a commit message.
type Entry struct {
	Hash        string
	Description string
}

// Report groups entries by category. Within a category, entries keep the
// order they were collected in (commit log order, then line order within a
// commit). Categories are reported in lexicographic order.
type Report struct {
	entries map[string][]Entry
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{entries: make(map[string][]Entry)}
}

// Add appends an entry to the given category's sequence.
func (r *Report) Add(category string, e Entry) {
	r.entries[category] = append(r.entries[category], e)
}

// Categories returns all category names sorted lexicographically ascending.
func (r *Report) Categories() []string {
	cats := make([]string, 0, len(r.entries))
	for c := range r.entries {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Entries returns the ordered entries for a category, or nil if the
// category has none.
func (r *Report) Entries(category string) []Entry {
	return r.entries[category]
}

// IsEmpty returns true if the report contains no entries in any category.
func (r *Report) IsEmpty() bool {
	return len(r.entries) == 0
}

// Count returns the total number of entries across all categories.
func (r *Report) Count() int {
	n := 0
	for _, es := range r.entries {
		n += len(es)
	}
	return n
}
