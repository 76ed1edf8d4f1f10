package goquery_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/unitdoc"
	"github.com/fwojciec/unitdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestChecker_CheckLinks(t *testing.T) {
	t.Parallel()

	t.Run("reports no broken links when targets exist", func(t *testing.T) {
		t.Parallel()

		dir := writeFiles(t, map[string]string{
			"style.css": "",
			"search.js": "",
			"index.html": `<html><head><link rel="stylesheet" href="style.css"></head>
<body><a href="Foo.html">Foo</a><script src="search.js"></script></body></html>`,
			"Foo.html": `<html><body><a href="index.html#top">Home</a><a href="#local">Local</a></body></html>`,
		})

		broken, err := goquery.NewChecker().CheckLinks(context.Background(), dir)

		require.NoError(t, err)
		assert.Empty(t, broken)
	})

	t.Run("reports missing targets per page", func(t *testing.T) {
		t.Parallel()

		dir := writeFiles(t, map[string]string{
			"index.html": `<html><body>
<a href="Missing.html">Missing</a>
<a href="Missing.html">Again</a>
<script src="gone.js"></script>
</body></html>`,
			"A.html": `<html><body><a href="B.html">B</a></body></html>`,
		})

		broken, err := goquery.NewChecker().CheckLinks(context.Background(), dir)

		require.NoError(t, err)
		assert.Equal(t, []unitdoc.BrokenLink{
			{Source: "A.html", Target: "B.html"},
			{Source: "index.html", Target: "Missing.html"},
			{Source: "index.html", Target: "gone.js"},
		}, broken)
	})

	t.Run("ignores external and scheme links", func(t *testing.T) {
		t.Parallel()

		dir := writeFiles(t, map[string]string{
			"index.html": `<html><body>
<a href="https://example.com/docs">External</a>
<a href="mailto:team@example.com">Mail</a>
<a href="javascript:void(0)">JS</a>
<script type="module" src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.esm.min.mjs"></script>
</body></html>`,
		})

		broken, err := goquery.NewChecker().CheckLinks(context.Background(), dir)

		require.NoError(t, err)
		assert.Empty(t, broken)
	})

	t.Run("ignores non html files", func(t *testing.T) {
		t.Parallel()

		dir := writeFiles(t, map[string]string{
			"notes.md": `[broken](nowhere.html)`,
		})

		broken, err := goquery.NewChecker().CheckLinks(context.Background(), dir)

		require.NoError(t, err)
		assert.Empty(t, broken)
	})

	t.Run("returns not found for missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewChecker().CheckLinks(context.Background(), filepath.Join(t.TempDir(), "missing"))

		assert.Equal(t, unitdoc.ENOTFOUND, unitdoc.ErrorCode(err))
	})
}
