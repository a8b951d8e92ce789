package tui

import (
	"path/filepath"
	"strings"

	"github.com/quantmind-br/themebundle/internal/manifest"
	"github.com/quantmind-br/themebundle/internal/utils"
)

// ManifestSummary is what the edited configuration resolves to on disk
type ManifestSummary struct {
	Manifest   string
	ProjectDir string
	Outputs    int
	Namespaces int
	SourceMaps bool
	// ManifestOverride is set when the manifest's own sourcemaps key wins
	ManifestOverride bool
	Err              error
}

// Summarize loads the manifest named by values. The project directory
// falls back to the manifest's directory, and a sourcemaps key in the
// manifest overrides the configured value, as they do when serving.
func Summarize(values *ConfigValues) ManifestSummary {
	s := ManifestSummary{SourceMaps: values.SourceMaps}

	path := strings.TrimSpace(values.Manifest)
	if path == "" {
		s.Err = ErrRequired
		return s
	}
	if abs, err := filepath.Abs(utils.ExpandPath(path)); err == nil {
		path = abs
	}
	s.Manifest = path

	projectDir := strings.TrimSpace(values.ProjectDir)
	if projectDir == "" {
		projectDir = filepath.Dir(path)
	}
	if abs, err := filepath.Abs(utils.ExpandPath(projectDir)); err == nil {
		projectDir = abs
	}
	s.ProjectDir = projectDir

	cfg, err := manifest.NewLoader().Load(path)
	if err != nil {
		s.Err = err
		return s
	}
	s.Outputs = cfg.Files.Len()
	s.Namespaces = cfg.Paths.Len()
	if cfg.SourceMaps != nil {
		s.SourceMaps = *cfg.SourceMaps
		s.ManifestOverride = true
	}
	return s
}
