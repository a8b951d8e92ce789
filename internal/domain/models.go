package domain

import "time"

// Content types served for combined outputs
const (
	ContentTypeCSS        = "text/css"
	ContentTypeJavaScript = "application/javascript"
	ContentTypeSourceMap  = "application/json"
)

// CombinedArtifact is the result of combining the sources of one output.
// It is created once per fingerprint and never modified afterwards.
type CombinedArtifact struct {
	Content      string `json:"content" cbor:"1,keyasint"`
	Fingerprint  string `json:"fingerprint" cbor:"2,keyasint"`
	LastModified int64  `json:"last_modified" cbor:"3,keyasint"`
	ContentType  string `json:"content_type" cbor:"4,keyasint"`
	SourceMap    string `json:"source_map,omitempty" cbor:"5,keyasint,omitempty"`
}

// HasSourceMap reports whether a source map was generated with the artifact
func (a *CombinedArtifact) HasSourceMap() bool {
	return a.SourceMap != ""
}

// LastModifiedTime returns LastModified as a UTC time
func (a *CombinedArtifact) LastModifiedTime() time.Time {
	return time.Unix(a.LastModified, 0).UTC()
}

// ETag returns the quoted entity tag for the artifact
func (a *CombinedArtifact) ETag() string {
	return `"` + a.Fingerprint + `"`
}

// ResolvedSource is a physical source file in resolution order
type ResolvedSource struct {
	Index     int
	Reference string
	Path      string
}

// Paths returns the physical paths of sources in order
func Paths(sources []ResolvedSource) []string {
	paths := make([]string, len(sources))
	for i, s := range sources {
		paths[i] = s.Path
	}
	return paths
}
