package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/themebundle/internal/manifest"
)

func TestSummarize(t *testing.T) {
	t.Run("project_dir_defaults_to_manifest_dir", func(t *testing.T) {
		cfg := projectConfig(t, testManifest)

		s := Summarize(FromConfig(cfg))
		require.NoError(t, s.Err)
		assert.Equal(t, cfg.Theme.Manifest, s.Manifest)
		assert.Equal(t, filepath.Dir(cfg.Theme.Manifest), s.ProjectDir)
		assert.Equal(t, 2, s.Outputs)
		assert.Equal(t, 1, s.Namespaces)
		assert.True(t, s.SourceMaps)
		assert.False(t, s.ManifestOverride)
	})

	t.Run("explicit_project_dir", func(t *testing.T) {
		values := FromConfig(projectConfig(t, testManifest))
		values.ProjectDir = "/srv/site"

		assert.Equal(t, "/srv/site", Summarize(values).ProjectDir)
	})

	t.Run("manifest_overrides_source_maps", func(t *testing.T) {
		s := Summarize(FromConfig(projectConfig(t, "sourcemaps: false\n"+testManifest)))
		require.NoError(t, s.Err)
		assert.False(t, s.SourceMaps)
		assert.True(t, s.ManifestOverride)
	})

	t.Run("missing_manifest", func(t *testing.T) {
		values := FromConfig(defaultTestConfig())
		values.Manifest = filepath.Join(t.TempDir(), "theme.yaml")

		s := Summarize(values)
		assert.ErrorIs(t, s.Err, manifest.ErrFileNotFound)
		assert.Equal(t, values.Manifest, s.Manifest)
	})

	t.Run("empty_manifest_path", func(t *testing.T) {
		values := FromConfig(defaultTestConfig())
		values.Manifest = "  "

		assert.ErrorIs(t, Summarize(values).Err, ErrRequired)
	})
}
