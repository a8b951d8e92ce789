// Package theme combines configured CSS and script sources into cached
// artifacts identified by a fingerprint of their paths and mtimes.
package theme

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/quantmind-br/themebundle/internal/cache"
	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/quantmind-br/themebundle/internal/manifest"
	"github.com/quantmind-br/themebundle/internal/sourcemap"
	"github.com/zeebo/blake3"
)

// Ensure Combiner implements domain.Combiner
var _ domain.Combiner = (*Combiner)(nil)

var contentTypes = map[string]string{
	"css": domain.ContentTypeCSS,
	"js":  domain.ContentTypeJavaScript,
}

// mapExtensions is the lookup order of GetSourceMap
var mapExtensions = []string{"css", "js"}

// ContentTypeFor returns the content type served for an output extension
// given without the leading dot
func ContentTypeFor(extension string) (string, bool) {
	ct, ok := contentTypes[extension]
	return ct, ok
}

// Options contains combiner configuration
type Options struct {
	Paths      manifest.NamespaceTable
	Files      manifest.OutputManifest
	ProjectDir string
	SourceMaps bool
	Store      domain.Store
	FS         FileSystem
}

// Combiner resolves, fingerprints and combines configured outputs
type Combiner struct {
	files         manifest.OutputManifest
	projectDir    string
	sourceMaps    bool
	variant       string
	store         domain.Store
	fs            FileSystem
	resolver      *Resolver
	fingerprinter *Fingerprinter
	generator     *sourcemap.Generator
}

// NewCombiner creates a combiner. Options.Store is required.
func NewCombiner(opts Options) (*Combiner, error) {
	if opts.Store == nil {
		return nil, errors.New("combiner: store is required")
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = OSFileSystem{}
	}

	return &Combiner{
		files:         opts.Files,
		projectDir:    opts.ProjectDir,
		sourceMaps:    opts.SourceMaps,
		variant:       keyVariant(opts.SourceMaps, opts.ProjectDir),
		store:         opts.Store,
		fs:            fsys,
		resolver:      NewResolver(opts.Paths),
		fingerprinter: NewFingerprinter(fsys),
		generator:     sourcemap.NewGenerator(),
	}, nil
}

// Plan is an output resolved against the current state of the disk
type Plan struct {
	Name        string
	Extension   string
	Sources     []domain.ResolvedSource
	ModTimes    []int64
	Fingerprint string
}

// MapFileName returns the file name the source map is served under
func (p *Plan) MapFileName() string {
	return p.Fingerprint + "." + p.Extension + ".map"
}

// LastModified returns the newest source mtime
func (p *Plan) LastModified() int64 {
	if len(p.ModTimes) == 0 {
		return 0
	}
	return slices.Max(p.ModTimes)
}

// Outputs returns the configured output names in declaration order
func (c *Combiner) Outputs() []string {
	return c.files.Names()
}

// SourceMapsEnabled reports whether artifacts carry source maps
func (c *Combiner) SourceMapsEnabled() bool {
	return c.sourceMaps
}

// Plan resolves the sources of name and fingerprints them without reading
// any file content
func (c *Combiner) Plan(name string) (*Plan, error) {
	references, ok := c.files.Lookup(name)
	if !ok {
		return nil, domain.NewUnknownOutputError(name)
	}

	sources, err := c.resolver.ResolveAll(references)
	if err != nil {
		return nil, err
	}

	paths := domain.Paths(sources)
	mtimes, err := c.fingerprinter.ModTimes(paths)
	if err != nil {
		return nil, err
	}

	if len(mtimes) == 0 {
		return nil, domain.NewEmptySourceSetError(name)
	}

	fp, err := c.fingerprinter.Fingerprint(paths, mtimes)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Name:        name,
		Extension:   strings.TrimPrefix(filepath.Ext(name), "."),
		Sources:     sources,
		ModTimes:    mtimes,
		Fingerprint: fp,
	}, nil
}

// GetCombinedFile returns the combined artifact for name, combining the
// sources only when no artifact with the current fingerprint is stored
func (c *Combiner) GetCombinedFile(ctx context.Context, name string) (*domain.CombinedArtifact, error) {
	plan, err := c.Plan(name)
	if err != nil {
		return nil, err
	}

	contentType, ok := ContentTypeFor(plan.Extension)
	if !ok {
		return nil, domain.NewUnsupportedExtensionError(plan.Extension)
	}

	return c.store.GetOrCompute(ctx, c.artifactKey(plan.Extension, plan.Fingerprint), func(ctx context.Context) (*domain.CombinedArtifact, error) {
		return c.combine(plan, contentType)
	})
}

// GetSourceMap returns the source map stored with the artifact for
// fingerprint. ok is false when no such artifact or map exists, which is
// always the case with source maps disabled.
func (c *Combiner) GetSourceMap(ctx context.Context, fingerprint string) (string, bool, error) {
	if !c.sourceMaps {
		return "", false, nil
	}

	for _, ext := range mapExtensions {
		artifact, err := c.store.Get(ctx, c.artifactKey(ext, fingerprint))
		if errors.Is(err, domain.ErrCacheMiss) {
			continue
		}
		if err != nil {
			return "", false, err
		}
		if artifact.HasSourceMap() {
			return artifact.SourceMap, true, nil
		}
	}
	return "", false, nil
}

func (c *Combiner) artifactKey(extension, fingerprint string) string {
	return cache.ArtifactKey(c.variant, extension, fingerprint)
}

// keyVariant names the settings that change a generated artifact for
// unchanged sources. The project directory only shapes source map paths.
func keyVariant(sourceMaps bool, projectDir string) string {
	if !sourceMaps {
		return "plain"
	}
	sum := blake3.Sum256([]byte(projectDir))
	return "map" + hex.EncodeToString(sum[:6])
}

func (c *Combiner) combine(plan *Plan, contentType string) (*domain.CombinedArtifact, error) {
	paths := domain.Paths(plan.Sources)
	contents := make([]string, 0, len(paths))

	var combined strings.Builder
	for _, path := range paths {
		data, err := c.fs.ReadFile(path)
		if err != nil {
			return nil, domain.NewSourceUnavailableError(path, "read", err)
		}
		contents = append(contents, string(data))
		combined.Write(data)
		combined.WriteByte('\n')
	}

	artifact := &domain.CombinedArtifact{
		Fingerprint:  plan.Fingerprint,
		LastModified: plan.LastModified(),
		ContentType:  contentType,
	}

	if c.sourceMaps {
		mapFile := plan.MapFileName()
		sourceMap, err := c.generator.Generate(paths, contents, plan.Fingerprint+"."+plan.Extension, c.projectDir)
		if err != nil {
			return nil, fmt.Errorf("generate source map for %q: %w", plan.Name, err)
		}
		artifact.SourceMap = sourceMap
		combined.WriteString(sourceMapComment(plan.Extension, mapFile))
	}

	artifact.Content = combined.String()
	return artifact, nil
}

func sourceMapComment(extension, mapFile string) string {
	switch extension {
	case "css":
		return "\n/*# sourceMappingURL=" + mapFile + " */\n"
	case "js":
		return "\n//# sourceMappingURL=" + mapFile + "\n"
	default:
		return ""
	}
}
