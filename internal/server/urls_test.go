package server

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePrefix(t *testing.T) {
	tests := map[string]string{
		"/_/theme":  "/_/theme",
		"/_/theme/": "/_/theme",
		"_/theme":   "/_/theme",
		"/":         "",
		"":          "",
		" /assets ": "/assets",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, normalizePrefix(input), "prefix %q", input)
	}
}

func TestURLs(t *testing.T) {
	urls := NewURLs("/_/theme/")

	assert.Equal(t, "/_/theme", urls.Prefix())
	assert.Equal(t, "/_/theme/frontend.css", urls.AssetURL("frontend.css"))
	assert.Equal(t, "/_/theme/admin/app%20v2.js", urls.AssetURL("admin/app v2.js"))
	assert.Equal(t, "/_/theme/abc.css.map", urls.SourceMapURL("abc", "css"))

	root := NewURLs("")
	assert.Equal(t, "/main.css", root.AssetURL("main.css"))
}

func TestURLs_FuncMap(t *testing.T) {
	urls := NewURLs("/_/theme")

	tmpl, err := template.New("page").
		Funcs(urls.FuncMap()).
		Parse(`<link rel="stylesheet" href="{{ themeAsset "frontend.css" }}">`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, nil))
	assert.Equal(t, `<link rel="stylesheet" href="/_/theme/frontend.css">`, buf.String())
}
