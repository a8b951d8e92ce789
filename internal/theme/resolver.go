package theme

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/quantmind-br/themebundle/internal/manifest"
)

// NamespaceSigil marks a reference as @namespace/relative/path
const NamespaceSigil = "@"

// Resolver turns logical references into physical paths
type Resolver struct {
	paths manifest.NamespaceTable
}

// NewResolver creates a resolver over a namespace table
func NewResolver(paths manifest.NamespaceTable) *Resolver {
	return &Resolver{paths: paths}
}

// Resolve returns the physical path for reference. References without the
// namespace sigil are returned unchanged. The relative part is not
// normalized, so references must come from trusted configuration.
func (r *Resolver) Resolve(reference string) (string, error) {
	if !strings.HasPrefix(reference, NamespaceSigil) {
		return reference, nil
	}

	namespace, relativePath, found := strings.Cut(strings.TrimPrefix(reference, NamespaceSigil), "/")
	if !found {
		return "", domain.NewMalformedReferenceError(reference)
	}

	baseDir, ok := r.paths.Lookup(namespace)
	if !ok {
		return "", domain.NewUnknownNamespaceError(namespace)
	}

	return baseDir + "/" + relativePath, nil
}

// ResolveAll resolves references in order
func (r *Resolver) ResolveAll(references []string) ([]domain.ResolvedSource, error) {
	sources := make([]domain.ResolvedSource, 0, len(references))
	for i, ref := range references {
		path, err := r.Resolve(ref)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", ref, err)
		}
		sources = append(sources, domain.ResolvedSource{
			Index:     i,
			Reference: ref,
			Path:      path,
		})
	}
	return sources, nil
}
