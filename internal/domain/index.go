package domain

import (
	"sort"

	m "github.com/kennytm/oztags/internal/model"
)

// Index accumulates tag records from all processed files, deduplicated
// by (name, file, line). Insertion order is irrelevant; Sorted defines
// the output order.
type Index struct {
	seen    map[m.Key]struct{}
	symbols []m.Symbol
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{seen: make(map[m.Key]struct{})}
}

// Add inserts symbols, dropping duplicates.
func (ix *Index) Add(symbols ...m.Symbol) {
	for _, s := range symbols {
		key := s.Key()
		if _, dup := ix.seen[key]; dup {
			continue
		}

		ix.seen[key] = struct{}{}
		ix.symbols = append(ix.symbols, s)
	}
}

// Len returns the number of distinct records.
func (ix *Index) Len() int {
	return len(ix.symbols)
}

// Sorted returns the records ordered by name (bytewise, matching the
// conventional tags-file sort contract), then file, then line. The
// stored records are not mutated.
func (ix *Index) Sorted() []m.Symbol {
	out := make([]m.Symbol, len(ix.symbols))
	copy(out, ix.symbols)

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}

		if a.File != b.File {
			return a.File < b.File
		}

		return a.Line < b.Line
	})

	return out
}
