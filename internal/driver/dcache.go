package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-kit/log/level"
	"github.com/vmihailenco/msgpack/v5"

	"sgspell/internal/diag"
	"sgspell/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest keys cache entries.
type Digest [32]byte

// DiskCache stores per-file check results keyed by file content and run
// settings. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome of checking one file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema      uint16
	Path        string
	Diagnostics []cachedDiagnostic
}

type cachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Line     uint32
	Col      uint32
	Start    uint32
	End      uint32
	Notes    []cachedNote
	Fixes    []cachedFix
}

type cachedNote struct {
	Start, End uint32
	Msg        string
}

type cachedFix struct {
	Title string
	Edits []cachedEdit
}

type cachedEdit struct {
	Start, End       uint32
	NewText, OldText string
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt uses dir as the cache root.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Fingerprint hashes the settings that influence a check result.
func Fingerprint(parts ...string) Digest {
	return sha256.Sum256([]byte(strings.Join(parts, "\x00")))
}

// FileKey combines a settings fingerprint with a file's path and content hash.
func FileKey(settings Digest, file *source.File) Digest {
	h := sha256.New()
	h.Write(settings[:])
	h.Write([]byte(file.Path))
	h.Write(file.Hash[:])
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads a payload. Entries from another schema version count as misses.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// bagToDiskPayload converts a file's diagnostics for caching. Spans lose
// their FileID; offsets stay valid as long as the content hash matches.
func bagToDiskPayload(path string, bag *diag.Bag) *DiskPayload {
	payload := &DiskPayload{Path: path}
	for _, d := range bag.Items() {
		cd := cachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Line:     d.Pos.Line,
			Col:      d.Pos.Col,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		for _, fx := range d.Fixes {
			cf := cachedFix{Title: fx.Title}
			for _, e := range fx.Edits {
				cf.Edits = append(cf.Edits, cachedEdit{Start: e.Span.Start, End: e.Span.End, NewText: e.NewText, OldText: e.OldText})
			}
			cd.Fixes = append(cd.Fixes, cf)
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}
	return payload
}

// diskPayloadToBag rebuilds diagnostics against file.
func diskPayloadToBag(payload *DiskPayload, file *source.File, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	span := func(start, end uint32) source.Span {
		return source.Span{File: file.ID, Start: start, End: end}
	}
	for _, cd := range payload.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Path:     file.Path,
			Pos:      source.LineCol{Line: cd.Line, Col: cd.Col},
			Primary:  span(cd.Start, cd.End),
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{Span: span(n.Start, n.End), Msg: n.Msg})
		}
		for _, cf := range cd.Fixes {
			fx := diag.Fix{Title: cf.Title}
			for _, e := range cf.Edits {
				fx.Edits = append(fx.Edits, diag.FixEdit{Span: span(e.Start, e.End), NewText: e.NewText, OldText: e.OldText})
			}
			d.Fixes = append(d.Fixes, fx)
		}
		bag.Add(d)
	}
	return bag
}

// lookupCache returns the cached bag for file, if any. Read failures are
// logged and treated as misses.
func lookupCache(opts Options, file *source.File) (*diag.Bag, bool) {
	if opts.Cache == nil {
		return nil, false
	}
	var payload DiskPayload
	ok, err := opts.Cache.Get(FileKey(opts.CacheKey, file), &payload)
	if err != nil {
		level.Warn(opts.logger()).Log("msg", "cache read failed", "path", file.Path, "err", err)
		return nil, false
	}
	if !ok || payload.Path != file.Path {
		return nil, false
	}
	level.Debug(opts.logger()).Log("msg", "cache hit", "path", file.Path)
	return diskPayloadToBag(&payload, file, opts.MaxDiagnostics), true
}

func storeCache(opts Options, file *source.File, bag *diag.Bag) {
	if opts.Cache == nil {
		return
	}
	if err := opts.Cache.Put(FileKey(opts.CacheKey, file), bagToDiskPayload(file.Path, bag)); err != nil {
		level.Warn(opts.logger()).Log("msg", "cache write failed", "path", file.Path, "err", err)
	}
}
