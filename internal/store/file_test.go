package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestFileStoreRoundtrip(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := []record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	require.NoError(t, st.Write("things", in))

	var out []record
	require.NoError(t, st.Read("things", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreMissingSnapshotReadsEmpty(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out []record
	require.NoError(t, st.Read("never-written", &out))
	assert.Nil(t, out)
}

func TestFileStoreMalformedSnapshotReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), []byte("{not json"), 0o644))

	var out []record
	require.NoError(t, st.Read("things", &out))
	assert.Nil(t, out)
}

func TestFileStoreTypeMismatchedSnapshotReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	// Valid JSON whose field types do not match the target: decoding
	// fails partway and must not leave partial records behind.
	bad := []byte(`[{"id":"1","name":"ok"},{"id":2,"name":"bad"}]`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), bad, 0o644))

	var out []record
	require.NoError(t, st.Read("things", &out))
	assert.Nil(t, out)
}

func TestFileStoreWriteReplacesWholeSnapshot(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Write("things", []record{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, st.Write("things", []record{{ID: "3"}}))

	var out []record
	require.NoError(t, st.Read("things", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)
}

func TestMemoryStoreContract(t *testing.T) {
	st := NewMemoryStore()

	var out []record
	require.NoError(t, st.Read("things", &out))
	assert.Nil(t, out)
	assert.False(t, st.Has("things"))

	require.NoError(t, st.Write("things", []record{{ID: "1"}}))
	assert.True(t, st.Has("things"))

	require.NoError(t, st.Read("things", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
}

func TestMemoryStoreTypeMismatchedSnapshotReadsEmpty(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.Write("things", []map[string]any{
		{"id": "1", "name": "ok"},
		{"id": 2, "name": "bad"},
	}))

	var out []record
	require.NoError(t, st.Read("things", &out))
	assert.Nil(t, out)
}

func TestMemoryStoreEmptyListStaysEmpty(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.Write("things", []record{}))

	var out []record
	require.NoError(t, st.Read("things", &out))
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
