// Package fs provides file-based discovery of source documents and
// rooted output writing.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/unitdoc"
)

// Ensure Writer implements unitdoc.FileWriter at compile time.
var _ unitdoc.FileWriter = (*Writer)(nil)

// Writer writes files below a base directory and records an xxhash digest
// of every file written.
type Writer struct {
	baseDir string
	digests map[string]uint64
}

// NewWriter creates a new Writer that writes to the given base directory.
// The directory is created on first write.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, digests: make(map[string]uint64)}
}

// Dir returns the base directory.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteFile writes data to name, a slash-separated path relative to the
// base directory. Parent directories are created as needed.
func (w *Writer) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || !filepath.IsLocal(filepath.FromSlash(name)) {
		return unitdoc.Errorf(unitdoc.EINVALID, "invalid output file name %q", name)
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return err
	}

	w.digests[name] = xxhash.Sum64(data)
	return nil
}

// Files returns the names written so far, sorted.
func (w *Writer) Files() []string {
	names := make([]string, 0, len(w.digests))
	for name := range w.digests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Digest combines the digests of every file written, ordered by name, into
// one hex string. Writers that wrote the same names with the same contents
// return the same digest.
func (w *Writer) Digest() string {
	h := xxhash.New()
	for _, name := range w.Files() {
		fmt.Fprintf(h, "%s\x00%016x\n", name, w.digests[name])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
