package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/unitdoc"
	"github.com/fwojciec/unitdoc/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unitdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults for missing file", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "unitdoc.yaml"))

		require.NoError(t, err)
		assert.Equal(t, unitdoc.DefaultConfig(), cfg)
	})

	t.Run("returns defaults for empty file", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.LoadConfig(writeConfig(t, ""))

		require.NoError(t, err)
		assert.Equal(t, unitdoc.DefaultConfig(), cfg)
	})

	t.Run("overlays file values on defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.LoadConfig(writeConfig(t, `
title: Dext Framework
version: 1.0-beta
exclude:
  - "**/Tests/**"
markdown: true
`))

		require.NoError(t, err)
		assert.Equal(t, "Dext Framework", cfg.Title)
		assert.Equal(t, "1.0-beta", cfg.Version)
		assert.Equal(t, []string{"**/Tests/**"}, cfg.Exclude)
		assert.True(t, cfg.Markdown)
		assert.Equal(t, "API Reference", cfg.Subtitle)
		assert.Equal(t, []string{"**/*.xml"}, cfg.Include)
		assert.Equal(t, "REFERENCE.md", cfg.Reference)
		assert.Equal(t, "en", cfg.Locale)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, "titel: typo\n"))

		assert.Equal(t, unitdoc.EINVALID, unitdoc.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, "title: [unclosed\n"))

		assert.Equal(t, unitdoc.EINVALID, unitdoc.ErrorCode(err))
	})

	t.Run("validates result", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, "include: []\n"))

		assert.Equal(t, unitdoc.EINVALID, unitdoc.ErrorCode(err))
	})
}
