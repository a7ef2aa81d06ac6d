package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/kennytm/oztags/internal/model"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name string
		sym  m.Symbol
		want string
	}{
		{
			name: "top-level procedure",
			sym:  m.Symbol{Name: "Main", Kind: m.KindProcedure, File: "main.oz", Line: 10},
			want: "Main\tmain.oz\t10;\"\tf",
		},
		{
			name: "class",
			sym:  m.Symbol{Name: "Counter", Kind: m.KindClass, File: "counter.oz", Line: 1},
			want: "Counter\tcounter.oz\t1;\"\tc",
		},
		{
			name: "public method",
			sym: m.Symbol{
				Name: "init", Kind: m.KindMethod, Access: m.AccessPublic,
				File: "counter.oz", Line: 3, Scope: []string{"Counter"}, ScopeKind: m.KindClass,
			},
			want: "init\tcounter.oz\t3;\"\tm\tclass:Counter\taccess:public",
		},
		{
			name: "private method in nested scope",
			sym: m.Symbol{
				Name: "Secret", Kind: m.KindMethod, Access: m.AccessPrivate,
				File: "counter.oz", Line: 7, Scope: []string{"Outer", "Counter"}, ScopeKind: m.KindClass,
			},
			want: "Secret\tcounter.oz\t7;\"\tm\tclass:Outer,Counter\taccess:private",
		},
		{
			name: "nested procedure",
			sym: m.Symbol{
				Name: "Helper", Kind: m.KindProcedure,
				File: "main.oz", Line: 4, Scope: []string{"Main"}, ScopeKind: m.KindProcedure,
			},
			want: "Helper\tmain.oz\t4;\"\tf\tprocedure:Main",
		},
		{
			name: "procedure nested in a method body",
			sym: m.Symbol{
				Name: "Helper", Kind: m.KindProcedure,
				File: "counter.oz", Line: 5, Scope: []string{"Counter", "init"}, ScopeKind: m.KindMethod,
			},
			want: "Helper\tcounter.oz\t5;\"\tf\tmethod:Counter,init",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLine(tt.sym))
		})
	}
}

func TestTagStore_SaveAndLoad(t *testing.T) {
	store := NewTagStore()

	symbols := []m.Symbol{
		{Name: "Counter", Kind: m.KindClass, File: "counter.oz", Line: 1},
		{
			Name: "Helper", Kind: m.KindProcedure,
			File: "counter.oz", Line: 4, Scope: []string{"Counter", "init"}, ScopeKind: m.KindMethod,
		},
		{Name: "Main", Kind: m.KindProcedure, File: "main.oz", Line: 2},
		{
			Name: "init", Kind: m.KindMethod, Access: m.AccessPublic,
			File: "counter.oz", Line: 3, Scope: []string{"Counter"}, ScopeKind: m.KindClass,
		},
	}

	root := t.TempDir()
	path := m.Path(filepath.Join(root, "tags"))

	require.NoError(t, store.Save(path, symbols))

	t.Run("content matches the fixed format", func(t *testing.T) {
		raw, err := os.ReadFile(string(path))
		require.NoError(t, err)

		want := "Counter\tcounter.oz\t1;\"\tc\n" +
			"Helper\tcounter.oz\t4;\"\tf\tmethod:Counter,init\n" +
			"Main\tmain.oz\t2;\"\tf\n" +
			"init\tcounter.oz\t3;\"\tm\tclass:Counter\taccess:public\n"
		assert.Equal(t, want, string(raw))
	})

	t.Run("no temp files are left behind", func(t *testing.T) {
		entries, err := os.ReadDir(root)
		require.NoError(t, err)

		require.Len(t, entries, 1)
		assert.Equal(t, "tags", entries[0].Name())
	})

	t.Run("load round-trips", func(t *testing.T) {
		loaded, err := store.Load(path)
		require.NoError(t, err)

		assert.Equal(t, symbols, loaded)
	})
}

func TestTagStore_Save_UnwritableDestination(t *testing.T) {
	store := NewTagStore()

	err := store.Save(m.Path(filepath.Join(t.TempDir(), "missing", "tags")), nil)
	require.Error(t, err)

	assert.ErrorIs(t, err, m.ErrWrite)
}

func TestTagStore_Load(t *testing.T) {
	store := NewTagStore()

	t.Run("missing file wraps ErrUnreadableFile", func(t *testing.T) {
		_, err := store.Load("no/such/tags")
		require.Error(t, err)

		assert.ErrorIs(t, err, m.ErrUnreadableFile)
	})

	t.Run("header and malformed lines are skipped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tags")
		content := strings.Join([]string{
			"!_TAG_FILE_SORTED\t1\t",
			"not a tag line",
			"Main\tmain.oz\tnot-a-number;\"\tf",
			"Main\tmain.oz\t2;\"\tz",
			"Main\tmain.oz\t2;\"\tf",
		}, "\n") + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		loaded, err := store.Load(m.Path(path))
		require.NoError(t, err)

		require.Len(t, loaded, 1)
		assert.Equal(t, m.Symbol{Name: "Main", Kind: m.KindProcedure, File: "main.oz", Line: 2}, loaded[0])
	})

	t.Run("method without access field defaults to public", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tags")
		content := "bar\tfoo.oz\t2;\"\tm\tclass:Foo\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		loaded, err := store.Load(m.Path(path))
		require.NoError(t, err)

		require.Len(t, loaded, 1)
		assert.Equal(t, m.AccessPublic, loaded[0].Access)
		assert.Equal(t, []string{"Foo"}, loaded[0].Scope)
	})
}
