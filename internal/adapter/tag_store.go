package adapter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	m "github.com/kennytm/oztags/internal/model"
)

// TagStore persists and retrieves tag records in the tags-file text
// format consumed by editor tooling.
type TagStore interface {
	// Save serializes the symbols (already sorted) to path. The write
	// is atomic: content goes to a temp file in the destination
	// directory which is renamed into place, so a consuming editor
	// never observes a truncated tags file.
	Save(path m.Path, symbols []m.Symbol) error

	// Load parses a tags file back into symbols. Comment lines
	// (leading `!`) and malformed lines are skipped.
	Load(path m.Path) ([]m.Symbol, error)
}

type tagStore struct{}

// NewTagStore constructs a TagStore implementation.
func NewTagStore() TagStore {
	return &tagStore{}
}

// FormatLine renders one symbol as a tags-file line:
//
//	{name}\t{file}\t{line};"\t{kindchar}[\t{scopekind}:{scopename}][\taccess:{access}]
//
// The scope field is omitted for an empty scope chain; the access
// field only appears on methods.
func FormatLine(s m.Symbol) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\t%s\t%d;\"\t%c", s.Name, s.File, s.Line, s.Kind.Char())

	if scope := s.ScopeName(); scope != "" {
		fmt.Fprintf(&b, "\t%s:%s", s.ScopeKind, scope)
	}

	if s.Kind == m.KindMethod {
		fmt.Fprintf(&b, "\taccess:%s", s.Access)
	}

	return b.String()
}

func (ts *tagStore) Save(path m.Path, symbols []m.Symbol) error {
	dir := filepath.Dir(string(path))

	tmp, err := os.CreateTemp(dir, ".oztags-*")
	if err != nil {
		return fmt.Errorf("%w: %v", m.ErrWrite, err)
	}

	tmpName := tmp.Name()
	defer func() {
		// No-ops once the rename succeeded.
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	w := bufio.NewWriter(tmp)
	for _, s := range symbols {
		if _, err := w.WriteString(FormatLine(s) + "\n"); err != nil {
			return fmt.Errorf("%w: %v", m.ErrWrite, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", m.ErrWrite, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", m.ErrWrite, err)
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		return fmt.Errorf("%w: %v", m.ErrWrite, err)
	}

	return nil
}

func (ts *tagStore) Load(path m.Path) ([]m.Symbol, error) {
	raw, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", m.ErrUnreadableFile, path, err)
	}

	var symbols []m.Symbol

	for _, line := range SplitLines(raw) {
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		if s, ok := parseLine(line); ok {
			symbols = append(symbols, s)
		}
	}

	return symbols, nil
}

func parseLine(line string) (m.Symbol, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < 4 {
		return m.Symbol{}, false
	}

	lineno, err := strconv.Atoi(strings.TrimSuffix(fields[2], `;"`))
	if err != nil {
		return m.Symbol{}, false
	}

	if len(fields[3]) != 1 {
		return m.Symbol{}, false
	}

	kind, ok := m.KindForChar(fields[3][0])
	if !ok {
		return m.Symbol{}, false
	}

	s := m.Symbol{
		Name: fields[0],
		Kind: kind,
		File: m.Path(fields[1]),
		Line: lineno,
	}

	for _, field := range fields[4:] {
		key, value, found := strings.Cut(field, ":")
		if !found {
			continue
		}

		switch key {
		case "access":
			s.Access = m.Access(value)
		case string(m.KindProcedure), string(m.KindClass), string(m.KindMethod):
			s.Scope = strings.Split(value, ",")
			s.ScopeKind = m.SymbolKind(key)
		}
	}

	if s.Kind == m.KindMethod && s.Access == "" {
		s.Access = m.AccessPublic
	}

	return s, true
}
