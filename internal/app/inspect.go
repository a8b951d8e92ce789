package app

import (
	"context"
	"fmt"
	"time"

	"github.com/quantmind-br/themebundle/internal/cache"
	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/quantmind-br/themebundle/internal/sourcemap"
)

// Inspection describes one output as it would currently be served
type Inspection struct {
	Name         string
	Fingerprint  string
	ContentType  string
	LastModified time.Time
	Sources      []domain.ResolvedSource
	ModTimes     []int64
	Size         int
	URL          string
	MapURL       string
	SourceMaps   bool
	SourceMap    *sourcemap.Document
	Mappings     [][][]int
	CacheBackend string
	CacheStats   map[string]interface{}
}

// Inspect combines name and decodes its source map, if any
func (o *Orchestrator) Inspect(ctx context.Context, name string) (*Inspection, error) {
	plan, err := o.combiner.Plan(name)
	if err != nil {
		return nil, err
	}

	artifact, err := o.combiner.GetCombinedFile(ctx, name)
	if err != nil {
		return nil, err
	}

	urls := o.server.URLs()
	in := &Inspection{
		Name:         name,
		Fingerprint:  artifact.Fingerprint,
		ContentType:  artifact.ContentType,
		LastModified: artifact.LastModifiedTime(),
		Sources:      plan.Sources,
		ModTimes:     plan.ModTimes,
		Size:         len(artifact.Content),
		URL:          urls.AssetURL(name),
		SourceMaps:   o.combiner.SourceMapsEnabled(),
		CacheBackend: o.config.Cache.Backend,
		CacheStats:   cache.StatsOf(o.store),
	}

	if artifact.HasSourceMap() {
		doc, err := sourcemap.Parse(artifact.SourceMap)
		if err != nil {
			return nil, fmt.Errorf("parse source map for %q: %w", name, err)
		}
		mappings, err := sourcemap.DecodeMappings(doc.Mappings)
		if err != nil {
			return nil, fmt.Errorf("decode mappings for %q: %w", name, err)
		}
		in.MapURL = urls.SourceMapURL(artifact.Fingerprint, plan.Extension)
		in.SourceMap = doc
		in.Mappings = mappings
	}

	return in, nil
}
