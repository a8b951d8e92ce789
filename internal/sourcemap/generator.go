// Package sourcemap generates version 3 source maps for combined theme files.
//
// Mappings are line granular: every line of every source maps column 0 of a
// generated line to column 0 of the source line. That is enough for devtools
// to jump to the original file, not for column stepping.
package sourcemap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Version is the source map format version
const Version = 3

const privatePrefix = ":private-"

// Document is a serialized source map
type Document struct {
	Version        int      `json:"version"`
	File           string   `json:"file"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent"`
	Mappings       string   `json:"mappings"`
}

// Generator builds source maps for concatenated files
type Generator struct{}

// NewGenerator creates a new source map generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns the JSON source map for sources concatenated in order.
// contents must be aligned with paths. With an empty projectRoot sources
// are listed by base name; otherwise by their path below the root, and
// files outside the root are listed as :private-N.
func (g *Generator) Generate(paths, contents []string, generatedFile, projectRoot string) (string, error) {
	if len(paths) != len(contents) {
		return "", fmt.Errorf("source map: %d paths but %d contents", len(paths), len(contents))
	}

	doc := Document{
		Version:        Version,
		File:           generatedFile,
		Sources:        make([]string, 0, len(paths)),
		SourcesContent: make([]string, 0, len(contents)),
	}

	root := canonicalRoot(projectRoot)
	privateCount := 0

	var (
		mappings   strings.Builder
		prevIndex  int
		prevLine   int
		groupCount int
	)

	for index, path := range paths {
		doc.Sources = append(doc.Sources, displayPath(path, projectRoot, root, &privateCount))
		doc.SourcesContent = append(doc.SourcesContent, contents[index])

		lineCount := strings.Count(contents[index], "\n") + 1
		for line := 0; line < lineCount; line++ {
			if groupCount > 0 {
				mappings.WriteString(lineSeparator)
			}
			EncodeVLQ(&mappings, 0)
			EncodeVLQ(&mappings, index-prevIndex)
			EncodeVLQ(&mappings, line-prevLine)
			EncodeVLQ(&mappings, 0)

			prevIndex = index
			prevLine = line
			groupCount++
		}
	}
	doc.Mappings = mappings.String()

	return encode(doc)
}

// Parse decodes a serialized source map
func Parse(data string) (*Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("invalid source map: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("unsupported source map version %d", doc.Version)
	}
	return &doc, nil
}

func encode(doc Document) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("source map: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// canonicalRoot returns the canonical project root or "" when it cannot be
// resolved
func canonicalRoot(projectRoot string) string {
	if projectRoot == "" {
		return ""
	}
	root, err := canonicalize(projectRoot)
	if err != nil {
		return ""
	}
	return root
}

func displayPath(path, projectRoot, root string, privateCount *int) string {
	if projectRoot == "" {
		return filepath.Base(path)
	}

	if root != "" {
		if canonical, err := canonicalize(path); err == nil {
			prefix := strings.TrimSuffix(root, string(filepath.Separator)) + string(filepath.Separator)
			if strings.HasPrefix(canonical, prefix) {
				return "/" + filepath.ToSlash(strings.TrimPrefix(canonical, prefix))
			}
		}
	}

	placeholder := privatePrefix + strconv.Itoa(*privateCount)
	*privateCount++
	return placeholder
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
