package server

import (
	"html/template"
	"net/url"
	"strings"
)

// AssetFuncName is the template function name for theme asset URLs
const AssetFuncName = "themeAsset"

// URLs builds public URLs for combined outputs
type URLs struct {
	prefix string
}

// NewURLs creates a URL builder for outputs served under prefix
func NewURLs(prefix string) *URLs {
	return &URLs{prefix: normalizePrefix(prefix)}
}

// Prefix returns the normalized route prefix
func (u *URLs) Prefix() string {
	return u.prefix
}

// AssetURL returns the URL of the combined output name
func (u *URLs) AssetURL(name string) string {
	segments := strings.Split(name, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return u.prefix + "/" + strings.Join(segments, "/")
}

// SourceMapURL returns the URL of the source map for an artifact
func (u *URLs) SourceMapURL(fingerprint, extension string) string {
	return u.prefix + "/" + fingerprint + "." + extension + ".map"
}

// FuncMap exposes AssetURL to html/template as themeAsset
func (u *URLs) FuncMap() template.FuncMap {
	return template.FuncMap{
		AssetFuncName: u.AssetURL,
	}
}

// normalizePrefix returns prefix with one leading slash and no trailing
// slash. The root prefix is empty.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
