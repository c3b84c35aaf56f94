// Package roster loads organization members from tabular input.
//
// A roster is the flat list of people the chart is drawn from: one row per
// member with a unique key, the key of the member they report to, a display
// name and an optional icon file. Rows are sorted by (reports_to, key) before
// they are indexed so that siblings always appear in the same left-to-right
// order, whatever the order of the source file.
//
// Supported sources are CSV ([ReadCSV]), Excel workbooks ([LoadXLSX]) and
// JSON arrays ([ReadJSON]); [Load] picks one from the file extension.
package roster

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
)

// Column names of the tabular input.
const (
	ColumnKey       = "key"
	ColumnReportsTo = "reports_to"
	ColumnFullName  = "full_name"
	ColumnIcon      = "icon"
)

// DefaultIconsDir is the directory icon file names are resolved against.
const DefaultIconsDir = "icons"

// Member is one row of input.
type Member struct {
	ID        string // Unique key (never empty)
	FullName  string // Display name
	ManagerID string // Key of the member this one reports to; empty for roots
	IconPath  string // Resolved icon file path; empty when the member has no icon
}

// IsRoot reports whether the member reports to nobody.
func (m Member) IsRoot() bool { return m.ManagerID == "" }

// HasIcon reports whether the member references an icon file.
func (m Member) HasIcon() bool { return m.IconPath != "" }

// DisplayName returns the full name if set, otherwise the ID.
func (m Member) DisplayName() string {
	if strings.TrimSpace(m.FullName) != "" {
		return m.FullName
	}
	return m.ID
}

// Options controls how raw rows become members.
type Options struct {
	// IconsDir is joined with relative icon file names. Empty means the
	// names are used as-is.
	IconsDir string
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{IconsDir: DefaultIconsDir}
}

// Record is an unprocessed input row.
type Record struct {
	Key       string
	ReportsTo string
	FullName  string
	Icon      string
}

// Roster is the ordered, de-duplicated set of members.
//
// The zero value is an empty roster. A Roster is never modified after
// [FromRecords] returns it.
type Roster struct {
	members []Member
	index   map[string]int

	// Skipped counts rows dropped because their key was empty.
	Skipped int
	// Duplicates counts rows that overwrote an earlier row with the same key.
	Duplicates int
}

// FromRecords sorts records by (ReportsTo, Key), drops rows without a key and
// indexes the rest.
//
// Duplicate keys follow mapping-insertion semantics: the later row (in sorted
// order) supplies the member's values, while the member keeps the position
// where its key first appeared.
func FromRecords(records []Record, opts Options) *Roster {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		if c := cmp.Compare(a.ReportsTo, b.ReportsTo); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	r := &Roster{index: make(map[string]int, len(sorted))}
	for _, rec := range sorted {
		if rec.Key == "" {
			r.Skipped++
			continue
		}
		m := Member{
			ID:        rec.Key,
			FullName:  rec.FullName,
			ManagerID: rec.ReportsTo,
			IconPath:  resolveIcon(rec.Icon, opts.IconsDir),
		}
		if i, ok := r.index[m.ID]; ok {
			r.members[i] = m
			r.Duplicates++
			continue
		}
		r.index[m.ID] = len(r.members)
		r.members = append(r.members, m)
	}
	return r
}

func resolveIcon(name, dir string) string {
	if name == "" {
		return ""
	}
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Members returns the members in roster order.
// The returned slice is a copy.
func (r *Roster) Members() []Member { return slices.Clone(r.members) }

// Len returns the number of members.
func (r *Roster) Len() int { return len(r.members) }

// Get returns the member with the given ID.
func (r *Roster) Get(id string) (Member, bool) {
	i, ok := r.index[id]
	if !ok {
		return Member{}, false
	}
	return r.members[i], true
}

// IDs returns member IDs in roster order.
func (r *Roster) IDs() []string {
	ids := make([]string, len(r.members))
	for i, m := range r.members {
		ids[i] = m.ID
	}
	return ids
}
