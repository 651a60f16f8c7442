package mapstore

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colmask/colmask-go/internal/anonymizer"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renames.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	mappings := []anonymizer.Mapping{
		{Token: "customer_name", Placeholder: "column_1"},
		{Token: "customer_email", Placeholder: "column_2"},
	}
	require.NoError(t, store.Save(mappings))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, mappings, loaded)
}

func TestSaveIgnoresKnownTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renames.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save([]anonymizer.Mapping{
		{Token: "customer_name", Placeholder: "column_1"},
	}))
	// Second save includes the known token plus a new one.
	require.NoError(t, store.Save([]anonymizer.Mapping{
		{Token: "customer_name", Placeholder: "column_1"},
		{Token: "customer_phone", Placeholder: "column_2"},
	}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, []anonymizer.Mapping{
		{Token: "customer_name", Placeholder: "column_1"},
		{Token: "customer_phone", Placeholder: "column_2"},
	}, loaded)
}

func TestLoadSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renames.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save([]anonymizer.Mapping{
		{Token: "user_id", Placeholder: "column_1"},
	}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "user_id", loaded[0].Token)
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "renames.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save([]anonymizer.Mapping{
		{Token: "a_name", Placeholder: "column_1"},
	}))
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	err := WriteCSV(&sb, []anonymizer.Mapping{
		{Token: "customer_name", Placeholder: "column_1"},
		{Token: "customer_email", Placeholder: "column_2"},
	})
	require.NoError(t, err)

	want := "token,placeholder\ncustomer_name,column_1\ncustomer_email,column_2\n"
	require.Equal(t, want, sb.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))
	require.Equal(t, "token,placeholder\n", sb.String())
}
