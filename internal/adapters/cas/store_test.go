package cas_test

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/overlay/internal/adapters/cas"
	"go.trai.ch/overlay/internal/core/domain"
)

func record(source, id string) domain.CompileRecord {
	return domain.CompileRecord{
		Source:     source,
		SourceID:   id,
		CachePath:  "/srv/site/media/overlay/compiled/" + id + ".css",
		CompiledAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	rec := record("/srv/site/media/a.less", "0123456789abcdef")
	require.NoError(t, store.Put(dir, rec))

	got, err := store.Get(dir, rec.Source)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.SourceID, got.SourceID)
	assert.Equal(t, rec.CachePath, got.CachePath)
	assert.True(t, rec.CompiledAt.Equal(got.CompiledAt))
}

func TestStore_Get_Missing(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir(), "/srv/site/media/missing.less")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Put_ReplacesRecord(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(dir, record("/a.less", "1111111111111111")))
	require.NoError(t, store.Put(dir, record("/a.less", "2222222222222222")))

	got, err := store.Get(dir, "/a.less")
	require.NoError(t, err)
	assert.Equal(t, "2222222222222222", got.SourceID)

	records, err := store.List(dir)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStore_FileLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, cas.NewStore().Put(dir, record("/a.less", "1111111111111111")))

	hash := sha256.Sum256([]byte("/a.less"))
	assert.FileExists(t, filepath.Join(dir, domain.ManifestDirName, hex.EncodeToString(hash[:])+".json"))
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	records, err := store.List(dir)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, store.Put(dir, record("/a.less", "1111111111111111")))
	require.NoError(t, store.Put(dir, record("/b.less", "2222222222222222")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestDirName, "notes.txt"), nil, 0o600))

	records, err = store.List(dir)
	require.NoError(t, err)

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.SourceID)
	}
	assert.ElementsMatch(t, []string{"1111111111111111", "2222222222222222"}, ids)
}

func TestStore_CorruptRecord(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()
	require.NoError(t, store.Put(dir, record("/a.less", "1111111111111111")))

	hash := sha256.Sum256([]byte("/a.less"))
	path := filepath.Join(dir, domain.ManifestDirName, hex.EncodeToString(hash[:])+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := store.Get(dir, "/a.less")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestUnmarshalFailed.Error())

	_, err = store.List(dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestUnmarshalFailed.Error())
}
