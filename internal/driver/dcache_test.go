package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sgspell/internal/diag"
	"sgspell/internal/source"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)

	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sg", []byte("// recieve\nlet a = 1;\n"))
	file := fs.Get(id)

	primary := source.Span{File: id, Start: 11, End: 14}
	edit := diag.FixEdit{Span: source.Span{File: id, Start: 3, End: 10}, NewText: "receive", OldText: "recieve"}
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevWarning, diag.SpellMisspelling, primary, "m").
		At(file.Path, source.LineCol{Line: 2, Col: 1}).
		WithNote(primary, "n").
		WithFix("replace", edit))

	key := FileKey(Fingerprint("v1"), file)
	require.NoError(t, cache.Put(key, bagToDiskPayload(file.Path, bag)))

	var payload DiskPayload
	ok, err := cache.Get(key, &payload)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, bag.Items(), diskPayloadToBag(&payload, file, 0).Items())

	ok, err = cache.Get(FileKey(Fingerprint("v2"), file), &payload)
	require.NoError(t, err)
	assert.False(t, ok, "other settings must miss")

	require.NoError(t, cache.DropAll())
	ok, err = cache.Get(key, &payload)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	assert.NoError(t, cache.Put(Digest{}, &DiskPayload{}))
	ok, err := cache.Get(Digest{}, &DiskPayload{})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, cache.DropAll())
}

func TestCheckDirUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sg", "// recieve\nlet a = 1;\n")

	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	opts := testOptions(t)
	opts.Cache = cache
	opts.CacheKey = Fingerprint("test")

	first, err := CheckDir(context.Background(), dir, opts, 1, nil)
	require.NoError(t, err)
	require.NotEmpty(t, first.Files[0].Timing.Phases, "first run checks the file")

	second, err := CheckDir(context.Background(), dir, opts, 1, nil)
	require.NoError(t, err)
	assert.Empty(t, second.Files[0].Timing.Phases, "second run is served from the cache")
	assert.Equal(t, first.Files[0].Bag.Items(), second.Files[0].Bag.Items())
}
