package manifest

import (
	"fmt"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config represents a complete theme manifest
type Config struct {
	SourceMaps *bool          `yaml:"sourcemaps,omitempty"`
	Paths      NamespaceTable `yaml:"paths"`
	Files      OutputManifest `yaml:"files"`
}

// Validate validates the manifest configuration
func (c *Config) Validate() error {
	if c.Files.Len() == 0 {
		return ErrNoOutputs
	}
	return c.Paths.Validate()
}

// NamespaceEntry maps a base directory to a namespace name
type NamespaceEntry struct {
	BaseDir   string
	Namespace string
}

// NamespaceTable is an ordered list of namespace entries. Lookup is by
// namespace name and the first matching entry wins.
type NamespaceTable struct {
	entries []NamespaceEntry
}

// NewNamespaceTable creates a table from entries in lookup order
func NewNamespaceTable(entries ...NamespaceEntry) NamespaceTable {
	return NamespaceTable{entries: slices.Clone(entries)}
}

// Lookup returns the base directory of the first entry named namespace
func (t NamespaceTable) Lookup(namespace string) (string, bool) {
	for _, e := range t.entries {
		if e.Namespace == namespace {
			return e.BaseDir, true
		}
	}
	return "", false
}

// Entries returns a copy of the table entries
func (t NamespaceTable) Entries() []NamespaceEntry {
	return slices.Clone(t.entries)
}

// Len returns the number of entries
func (t NamespaceTable) Len() int {
	return len(t.entries)
}

// Validate checks that no entry has an empty directory or name
func (t NamespaceTable) Validate() error {
	for i, e := range t.entries {
		if e.BaseDir == "" || e.Namespace == "" {
			return fmt.Errorf("paths entry %d: %w", i, ErrEmptyNamespace)
		}
	}
	return nil
}

// Absolute returns a copy of the table with relative base directories
// joined onto root
func (t NamespaceTable) Absolute(root string) NamespaceTable {
	entries := make([]NamespaceEntry, len(t.entries))
	for i, e := range t.entries {
		if !filepath.IsAbs(e.BaseDir) {
			e.BaseDir = filepath.Join(root, e.BaseDir)
		}
		entries[i] = e
	}
	return NamespaceTable{entries: entries}
}

// UnmarshalYAML decodes a mapping of base directory to namespace,
// keeping document order
func (t *NamespaceTable) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		t.entries = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: paths must be a mapping of directory to namespace", value.Line)
	}

	entries := make([]NamespaceEntry, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var e NamespaceEntry
		if err := value.Content[i].Decode(&e.BaseDir); err != nil {
			return err
		}
		if err := value.Content[i+1].Decode(&e.Namespace); err != nil {
			return err
		}
		entries = append(entries, e)
	}
	t.entries = entries
	return nil
}

// OutputEntry is one output name and its ordered source references
type OutputEntry struct {
	Name       string
	References []string
}

// OutputManifest maps output names to ordered source references.
// Declaration order of names is kept.
type OutputManifest struct {
	names []string
	files map[string][]string
}

// NewOutputManifest creates a manifest from entries. A later entry with the
// same name replaces the earlier one.
func NewOutputManifest(entries ...OutputEntry) OutputManifest {
	m := OutputManifest{files: make(map[string][]string, len(entries))}
	for _, e := range entries {
		if _, exists := m.files[e.Name]; !exists {
			m.names = append(m.names, e.Name)
		}
		m.files[e.Name] = slices.Clone(e.References)
	}
	return m
}

// Lookup returns a copy of the references configured for name
func (m OutputManifest) Lookup(name string) ([]string, bool) {
	refs, ok := m.files[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(refs), true
}

// Names returns output names in declaration order
func (m OutputManifest) Names() []string {
	return slices.Clone(m.names)
}

// Len returns the number of outputs
func (m OutputManifest) Len() int {
	return len(m.names)
}

// UnmarshalYAML decodes a mapping of output name to reference list,
// keeping document order
func (m *OutputManifest) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*m = OutputManifest{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: files must be a mapping of output name to source list", value.Line)
	}

	out := OutputManifest{files: make(map[string][]string, len(value.Content)/2)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var name string
		if err := value.Content[i].Decode(&name); err != nil {
			return err
		}
		if _, exists := out.files[name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateOutput, name)
		}

		var refs []string
		if node := value.Content[i+1]; node.Tag != "!!null" {
			if err := node.Decode(&refs); err != nil {
				return fmt.Errorf("files.%s: %w", name, err)
			}
		}
		if refs == nil {
			refs = []string{}
		}

		out.names = append(out.names, name)
		out.files[name] = refs
	}
	*m = out
	return nil
}
