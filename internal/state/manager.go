package state

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/quantmind-br/themebundle/internal/utils"
)

// StateFileName is written into the build output directory
const StateFileName = ".themebundle-state.json"

// Manager tracks which outputs a build has written so later builds can
// skip unchanged ones and remove outputs dropped from the manifest
type Manager struct {
	baseDir  string
	state    *BuildState
	mu       sync.RWMutex
	dirty    bool
	logger   *utils.Logger
	disabled bool
	seen     sync.Map
}

type ManagerOptions struct {
	BaseDir  string
	Manifest string
	Logger   *utils.Logger
	Disabled bool
}

func NewManager(opts ManagerOptions) *Manager {
	return &Manager{
		baseDir:  opts.BaseDir,
		logger:   opts.Logger,
		disabled: opts.Disabled,
		state:    NewBuildState(opts.Manifest),
	}
}

// Load reads the state file. On any error the manager keeps an empty
// state, so callers may log and continue.
func (m *Manager) Load(ctx context.Context) error {
	if m.disabled {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.statePath())
	if os.IsNotExist(err) {
		return ErrStateNotFound
	}
	if err != nil {
		return err
	}

	var state BuildState
	if err := json.Unmarshal(data, &state); err != nil {
		return ErrStateCorrupted
	}

	if state.Version != StateVersion {
		if m.logger != nil {
			m.logger.Warn().
				Int("file_version", state.Version).
				Int("expected_version", StateVersion).
				Msg("State version mismatch, will rebuild state")
		}
		return ErrVersionMismatch
	}
	if state.Outputs == nil {
		state.Outputs = make(map[string]OutputState)
	}

	m.state = &state
	return nil
}

// Save writes the state file when something changed since the last save
func (m *Manager) Save(ctx context.Context) error {
	if m.disabled {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.dirty {
		return nil
	}

	m.state.LastBuild = time.Now()

	data, err := json.MarshalIndent(m.state, "", "  ")
	if err != nil {
		return err
	}

	path := m.statePath()
	if err := utils.WriteFile(path, data); err != nil {
		return err
	}

	m.dirty = false
	if m.logger != nil {
		m.logger.Debug().
			Int("outputs", len(m.state.Outputs)).
			Str("path", path).
			Msg("State saved")
	}
	return nil
}

// ShouldWrite reports whether output name must be written. It is false
// only when the recorded fingerprint and map path match and the recorded
// files still exist. mapPath is empty for an output built without a map.
func (m *Manager) ShouldWrite(name, fingerprint, mapPath string) bool {
	if m.disabled {
		return true
	}

	m.mu.RLock()
	out, exists := m.state.Outputs[name]
	m.mu.RUnlock()

	if !exists || out.Fingerprint != fingerprint || out.MapPath != mapPath {
		return true
	}
	if !fileExists(out.Path) {
		return true
	}
	return out.MapPath != "" && !fileExists(out.MapPath)
}

// Update records a written output and returns the state it replaced
func (m *Manager) Update(out OutputState) (OutputState, bool) {
	if m.disabled {
		return OutputState{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev, existed := m.state.Outputs[out.Name]
	m.state.Outputs[out.Name] = out
	m.dirty = true
	return prev, existed
}

// MarkSeen marks name as still configured
func (m *Manager) MarkSeen(name string) {
	m.seen.Store(name, true)
}

// Stale returns recorded outputs that were not marked seen, sorted by name
func (m *Manager) Stale() []OutputState {
	if m.disabled {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var stale []OutputState
	for name, out := range m.state.Outputs {
		if _, seen := m.seen.Load(name); !seen {
			stale = append(stale, out)
		}
	}
	sort.Slice(stale, func(i, j int) bool { return stale[i].Name < stale[j].Name })
	return stale
}

// RemoveStale drops outputs that were not marked seen from the state
func (m *Manager) RemoveStale() {
	if m.disabled {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for name := range m.state.Outputs {
		if _, seen := m.seen.Load(name); !seen {
			delete(m.state.Outputs, name)
			m.dirty = true
		}
	}
}

// Snapshot returns a copy of the current state
func (m *Manager) Snapshot() BuildState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := *m.state
	snap.Outputs = make(map[string]OutputState, len(m.state.Outputs))
	for name, out := range m.state.Outputs {
		snap.Outputs[name] = out
	}
	return snap
}

func (m *Manager) statePath() string {
	return filepath.Join(m.baseDir, StateFileName)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
