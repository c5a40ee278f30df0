package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webdrivers/godriver/pkg/version"
)

func testEntry(subject string) *Entry {
	return &Entry{
		Subject:      subject,
		BrowserBuild: version.MustParse("91.0.4472"),
		LocalBuild:   version.MustParse("91.0.4472"),
		Resolved:     version.MustParse("91.0.4472.101"),
		UpdatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

// storeConformance exercises the Store contract against any implementation.
func storeConformance(t *testing.T, store Store) {
	t.Helper()

	// Absent subject loads as nil without error.
	entry, err := store.Load("chromedriver")
	require.NoError(t, err)
	assert.Nil(t, entry)

	// Round trip.
	in := testEntry("chromedriver")
	require.NoError(t, store.Save(in))

	out, err := store.Load("chromedriver")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Subject, out.Subject)
	assert.True(t, in.BrowserBuild.Equal(out.BrowserBuild))
	assert.True(t, in.Resolved.Equal(out.Resolved))

	// Upsert overwrites.
	in.Resolved = version.MustParse("91.0.4472.114")
	require.NoError(t, store.Save(in))
	out, err = store.Load("chromedriver")
	require.NoError(t, err)
	assert.Equal(t, "91.0.4472.114", out.Resolved.String())

	// Independent subjects coexist.
	require.NoError(t, store.Save(testEntry("geckodriver")))
	entries, err := store.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// Delete is idempotent.
	require.NoError(t, store.Delete("geckodriver"))
	require.NoError(t, store.Delete("geckodriver"))
	entries, err = store.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMemoryStore(t *testing.T) {
	storeConformance(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "versions.yaml")
	store := NewFileStore(path)
	storeConformance(t, store)

	// The cache file must not be world readable.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("\tnot yaml {{{"), 0o600))

	store := NewFileStore(path)
	_, err := store.Load("chromedriver")
	assert.Error(t, err, "corrupt state surfaces as a store error")
}

func TestLevelStore(t *testing.T) {
	store, err := NewLevelStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	storeConformance(t, store)
}
