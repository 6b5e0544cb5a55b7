package domain

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// IndexEntry is one element of the published index.
// Entries decoded from a prior index keep their original JSON, so members this tool does not
// model survive a rewrite unchanged.
type IndexEntry struct {
	// Pkg is the merge key.
	Pkg string
	// Name is the sort key.
	Name string

	ext *Extension
	raw json.RawMessage
}

// NewIndexEntry wraps a freshly generated record.
func NewIndexEntry(ext Extension) IndexEntry {
	return IndexEntry{Pkg: ext.Pkg, Name: ext.Name, ext: &ext}
}

// ParseIndexEntry keeps data as is and reads only the keys needed for merging.
// The element must be an object with a string pkg. A name that is missing or not a string sorts as "".
func ParseIndexEntry(data []byte) (IndexEntry, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil || members == nil {
		return IndexEntry{}, zerr.New("index entry is not an object")
	}

	var entry IndexEntry
	pkg, ok := members["pkg"]
	if !ok || bytes.Equal(pkg, []byte("null")) || json.Unmarshal(pkg, &entry.Pkg) != nil {
		return IndexEntry{}, zerr.New("index entry has no string pkg")
	}
	if name, ok := members["name"]; ok {
		_ = json.Unmarshal(name, &entry.Name)
	}

	entry.raw = append(json.RawMessage(nil), data...)
	return entry, nil
}

// Extension returns the typed record for a freshly generated entry.
func (e IndexEntry) Extension() (Extension, bool) {
	if e.ext == nil {
		return Extension{}, false
	}
	return *e.ext, true
}

// MarshalJSON writes the original JSON of a prior entry, or the typed record without HTML escaping.
func (e IndexEntry) MarshalJSON() ([]byte, error) {
	if e.ext == nil {
		if e.raw == nil {
			return []byte("null"), nil
		}
		return e.raw, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e.ext); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MergeIndex combines a prior index with freshly generated entries.
// Entries are keyed by package identifier and a fresh entry replaces any prior entry with the same key.
// The result is stably sorted by name.
func MergeIndex(existing []IndexEntry, fresh []Extension) []IndexEntry {
	order := make([]string, 0, len(existing)+len(fresh))
	byPkg := make(map[string]IndexEntry, len(existing)+len(fresh))

	put := func(entry IndexEntry) {
		if _, ok := byPkg[entry.Pkg]; !ok {
			order = append(order, entry.Pkg)
		}
		byPkg[entry.Pkg] = entry
	}

	for _, entry := range existing {
		put(entry)
	}
	for _, ext := range fresh {
		put(NewIndexEntry(ext))
	}

	merged := make([]IndexEntry, 0, len(order))
	for _, pkg := range order {
		merged = append(merged, byPkg[pkg])
	}

	slices.SortStableFunc(merged, func(a, b IndexEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return merged
}
