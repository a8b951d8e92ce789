package sourcemap

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerator_Structure(t *testing.T) {
	g := NewGenerator()

	out, err := g.Generate([]string{"/path/to/file.css"}, []string{"body { color: red; }\n"}, "frontend.css", "")
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	for _, key := range []string{"version", "file", "sources", "sourcesContent", "mappings"} {
		assert.Contains(t, raw, key)
	}

	doc, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Version)
	assert.Equal(t, "frontend.css", doc.File)
	assert.True(t, strings.HasPrefix(out, `{"version":3,"file":"frontend.css","sources":`))
}

func TestGenerator_BaseNameWithoutProjectRoot(t *testing.T) {
	g := NewGenerator()

	out, err := g.Generate(
		[]string{"/some/long/path/to/clear.css", "/another/path/theme.css"},
		[]string{"/* clear */\n", "/* theme */\n"},
		"out.css",
		"",
	)
	require.NoError(t, err)

	doc, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"clear.css", "theme.css"}, doc.Sources)
	assert.Equal(t, []string{"/* clear */\n", "/* theme */\n"}, doc.SourcesContent)
}

func TestGenerator_RoundTrip(t *testing.T) {
	proj := t.TempDir()
	file := writeFile(t, filepath.Join(proj, "src", "a.css"), "x\ny\n")

	out, err := NewGenerator().Generate([]string{file}, []string{"x\ny\n"}, "abc.css", proj)
	require.NoError(t, err)

	doc, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Version)
	assert.Equal(t, []string{"/src/a.css"}, doc.Sources)
	assert.Equal(t, []string{"x\ny\n"}, doc.SourcesContent)

	// "x\ny\n" splits into three lines, the last one empty
	assert.Equal(t, "AAAA;AACA;AACA", doc.Mappings)
	groups, err := DecodeMappings(doc.Mappings)
	require.NoError(t, err)
	assert.Len(t, groups, 3)
	for _, group := range groups {
		require.Len(t, group, 1)
		assert.Len(t, group[0], 4)
		assert.Equal(t, 0, group[0][0])
		assert.Equal(t, 0, group[0][3])
	}
}

func TestGenerator_UnescapedSlashes(t *testing.T) {
	proj := t.TempDir()
	file := writeFile(t, filepath.Join(proj, "src", "styles", "base.css"), "a {}")

	out, err := NewGenerator().Generate([]string{file}, []string{"a > b {}"}, "out.css", proj)
	require.NoError(t, err)

	assert.Contains(t, out, `"/src/styles/base.css"`)
	assert.NotContains(t, out, `\/`)
	assert.Contains(t, out, `a > b {}`)
}

func TestGenerator_MappingsAcrossSources(t *testing.T) {
	out, err := NewGenerator().Generate(
		[]string{"/a.css", "/b.css", "/c.css"},
		[]string{"1\n2\n3", "4", "5\n6"},
		"out.css",
		"",
	)
	require.NoError(t, err)

	doc, err := Parse(out)
	require.NoError(t, err)
	// state carries over between files: (0,2) -> (1,0) -> (2,0)
	assert.Equal(t, "AAAA;AACA;AACA;ACFA;ACAA;AACA", doc.Mappings)

	groups, err := DecodeMappings(doc.Mappings)
	require.NoError(t, err)
	require.Len(t, groups, 6)

	index, line := 0, 0
	var absolute [][2]int
	for _, group := range groups {
		index += group[0][1]
		line += group[0][2]
		absolute = append(absolute, [2]int{index, line})
	}
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 0}, {2, 1}}, absolute)
}

func TestGenerator_PrivatePlaceholders(t *testing.T) {
	proj := t.TempDir()
	outside := t.TempDir()

	inside1 := writeFile(t, filepath.Join(proj, "a.css"), "a")
	external1 := writeFile(t, filepath.Join(outside, "ext1.css"), "e1")
	inside2 := writeFile(t, filepath.Join(proj, "b.css"), "b")
	missing := filepath.Join(proj, "missing.css")
	external2 := writeFile(t, filepath.Join(outside, "ext2.css"), "e2")

	out, err := NewGenerator().Generate(
		[]string{inside1, external1, inside2, missing, external2},
		[]string{"a", "e1", "b", "m", "e2"},
		"out.css",
		proj,
	)
	require.NoError(t, err)

	doc, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.css", ":private-0", "/b.css", ":private-1", ":private-2"}, doc.Sources)
	assert.Len(t, doc.SourcesContent, 5)
}

func TestGenerator_RootPrefixIsNotEnough(t *testing.T) {
	base := t.TempDir()
	proj := filepath.Join(base, "proj")
	sibling := writeFile(t, filepath.Join(base, "project-other", "a.css"), "a")
	require.NoError(t, os.MkdirAll(proj, 0755))

	out, err := NewGenerator().Generate([]string{sibling, proj}, []string{"a", ""}, "out.css", proj)
	require.NoError(t, err)

	doc, err := Parse(out)
	require.NoError(t, err)
	// a sibling sharing the prefix and the root itself are not strictly under the root
	assert.Equal(t, []string{":private-0", ":private-1"}, doc.Sources)
}

func TestGenerator_UnresolvableRoot(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "a.css"), "a")

	out, err := NewGenerator().Generate([]string{file}, []string{"a"}, "out.css", filepath.Join(dir, "nope"))
	require.NoError(t, err)

	doc, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, []string{":private-0"}, doc.Sources)
}

func TestGenerator_Symlinks(t *testing.T) {
	base := t.TempDir()
	proj := filepath.Join(base, "proj")
	file := writeFile(t, filepath.Join(proj, "css", "a.css"), "a")
	link := filepath.Join(base, "link")
	if err := os.Symlink(proj, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	out, err := NewGenerator().Generate([]string{filepath.Join(link, "css", "a.css"), file}, []string{"a", "a"}, "out.css", link)
	require.NoError(t, err)

	doc, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"/css/a.css", "/css/a.css"}, doc.Sources)
}

func TestGenerator_Empty(t *testing.T) {
	out, err := NewGenerator().Generate(nil, nil, "out.css", "")
	require.NoError(t, err)
	assert.Equal(t, `{"version":3,"file":"out.css","sources":[],"sourcesContent":[],"mappings":""}`, out)
}

func TestGenerator_MismatchedInput(t *testing.T) {
	_, err := NewGenerator().Generate([]string{"/a.css", "/b.css"}, []string{"a"}, "out.css", "")
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("not json")
	assert.Error(t, err)

	_, err = Parse(`{"version":2}`)
	assert.Error(t, err)
}
