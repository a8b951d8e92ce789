package state

import "time"

// StateVersion is the schema version for state file migration
const StateVersion = 1

// BuildState records what the last build wrote into an output directory
type BuildState struct {
	Version   int                    `json:"version"`
	Manifest  string                 `json:"manifest"`
	LastBuild time.Time              `json:"last_build"`
	Outputs   map[string]OutputState `json:"outputs"`
}

// OutputState is the recorded state of one written output
type OutputState struct {
	Name        string    `json:"name"`
	Fingerprint string    `json:"fingerprint"`
	Path        string    `json:"path"`
	MapPath     string    `json:"map_path,omitempty"`
	BuiltAt     time.Time `json:"built_at"`
}

// NewBuildState creates a new empty build state
func NewBuildState(manifest string) *BuildState {
	return &BuildState{
		Version:   StateVersion,
		Manifest:  manifest,
		LastBuild: time.Now(),
		Outputs:   make(map[string]OutputState),
	}
}

// OutputCount returns the number of recorded outputs
func (s BuildState) OutputCount() int {
	return len(s.Outputs)
}

// GetOutput returns the recorded state of an output by name
func (s BuildState) GetOutput(name string) (OutputState, bool) {
	out, exists := s.Outputs[name]
	return out, exists
}
