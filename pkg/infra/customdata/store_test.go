package customdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/cihooks/pkg/infra/customdata"
	"github.com/m-mizutani/gt"
)

func TestStore_Strings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom_data.json")
	gt.NoError(t, os.WriteFile(path, []byte(`{
		"changed_files": ["src/Core/TypeId.h", "README.md"],
		"pr_title": "Fix TypeId"
	}`), 0600))

	store := customdata.New(path)

	t.Run("existing key", func(t *testing.T) {
		files, ok, err := store.Strings("changed_files")
		gt.NoError(t, err)
		gt.True(t, ok)
		gt.Number(t, len(files)).Equal(2)
		gt.Value(t, files[0]).Equal("src/Core/TypeId.h")
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := store.Strings("unknown")
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, _, err := store.Strings("pr_title")
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, ok, err := customdata.New(filepath.Join(dir, "none.json")).Strings("changed_files")
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("broken file", func(t *testing.T) {
		broken := filepath.Join(dir, "broken.json")
		gt.NoError(t, os.WriteFile(broken, []byte("{"), 0600))
		_, _, err := customdata.New(broken).Strings("changed_files")
		gt.Error(t, err)
	})
}
