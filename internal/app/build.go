package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/quantmind-br/themebundle/internal/state"
	"github.com/quantmind-br/themebundle/internal/utils"
)

// BuildOptions contains options for writing combined outputs to disk
type BuildOptions struct {
	domain.CommonOptions
	OutputDir string
	Workers   int
	// Outputs restricts the build to these names; empty builds everything
	Outputs      []string
	ShowProgress bool
	// Force rewrites outputs whose fingerprint is unchanged
	Force bool
	// Prune removes files of outputs no longer in the manifest
	Prune bool
}

// BuildResult is the outcome of building one output
type BuildResult struct {
	Name        string
	Path        string
	MapPath     string
	Fingerprint string
	Size        int64
	MapSize     int64
	Duration    time.Duration
	// Skipped is set when the output was already up to date on disk
	Skipped bool
	// Pruned is set for a removed output that left the manifest
	Pruned bool
	Err    error
}

// Build combines the selected outputs in parallel and writes each to
// OutputDir/<name>, with its source map next to it. Outputs whose
// fingerprint matches the last build are skipped unless Force is set.
// With DryRun nothing is written. Results are in output declaration
// order, followed by pruned outputs.
func (o *Orchestrator) Build(ctx context.Context, opts BuildOptions) ([]BuildResult, error) {
	startTime := time.Now()

	names := opts.Outputs
	if len(names) == 0 {
		names = o.combiner.Outputs()
	}
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = o.config.Build.OutputDir
	}
	outputDir = utils.ExpandPath(outputDir)
	workers := opts.Workers
	if workers <= 0 {
		workers = o.config.Build.Workers
	}

	o.logger.Info().
		Int("outputs", len(names)).
		Str("output_dir", outputDir).
		Int("workers", workers).
		Bool("dry_run", opts.DryRun).
		Msg("Starting build")

	st := state.NewManager(state.ManagerOptions{
		BaseDir:  outputDir,
		Manifest: o.config.Theme.Manifest,
		Logger:   o.logger.WithComponent("state"),
		Disabled: opts.DryRun,
	})
	if err := st.Load(ctx); err != nil && !errors.Is(err, state.ErrStateNotFound) {
		o.logger.Warn().Err(err).Msg("Ignoring build state, all outputs will be written")
	} else if prev := st.Snapshot(); prev.OutputCount() > 0 {
		o.logger.Debug().
			Int("recorded", prev.OutputCount()).
			Time("last_build", prev.LastBuild).
			Msg("Loaded build state")
	}

	bar := utils.NewSilentProgressBar(len(names))
	if opts.ShowProgress {
		bar = utils.NewProgressBar(len(names), utils.DescCombining)
	}
	defer bar.Finish()

	type job struct {
		index int
		name  string
	}
	jobs := make([]job, len(names))
	for i, name := range names {
		jobs[i] = job{index: i, name: name}
	}

	results := make([]BuildResult, len(names))
	var mu sync.Mutex

	errs := utils.ParallelForEach(ctx, jobs, workers, func(ctx context.Context, j job) error {
		result := o.buildOne(ctx, st, outputDir, j.name, opts)

		mu.Lock()
		results[j.index] = result
		mu.Unlock()
		_ = bar.Add(1)

		log := o.logger.WithOutput(j.name)
		if result.Err != nil {
			log.Error().Err(result.Err).Msg("Build failed")
			return result.Err
		}
		log.WithFingerprint(result.Fingerprint).Debug().
			Int64("size", result.Size).
			Bool("skipped", result.Skipped).
			Dur("duration", result.Duration).
			Msg("Built output")
		return nil
	})

	skipped := 0
	for i, err := range errs {
		if err != nil && results[i].Err == nil {
			results[i] = BuildResult{Name: names[i], Err: err}
		}
		if results[i].Skipped {
			skipped++
		}
	}

	for _, name := range o.combiner.Outputs() {
		st.MarkSeen(name)
	}
	if opts.Prune && !opts.DryRun {
		pruned, pruneErrs := o.prune(st)
		results = append(results, pruned...)
		errs = append(errs, pruneErrs...)
	}
	if err := st.Save(ctx); err != nil {
		errs = append(errs, fmt.Errorf("save build state: %w", err))
	}

	o.logger.Info().
		Dur("duration", time.Since(startTime)).
		Int("skipped", skipped).
		Int("failed", len(utils.CollectErrors(errs))).
		Msg("Build completed")

	return results, utils.JoinErrors(errs)
}

// prune removes the files of recorded outputs that left the manifest
func (o *Orchestrator) prune(st *state.Manager) ([]BuildResult, []error) {
	stale := st.Stale()
	results := make([]BuildResult, 0, len(stale))
	var errs []error

	for _, out := range stale {
		result := BuildResult{Name: out.Name, Path: out.Path, MapPath: out.MapPath, Fingerprint: out.Fingerprint, Pruned: true}
		for _, path := range []string{out.Path, out.MapPath} {
			if err := removeFile(path); err != nil {
				result.Err = err
				errs = append(errs, err)
			}
		}
		o.logger.WithOutput(out.Name).Info().Str("path", out.Path).Msg("Pruned output")
		results = append(results, result)
	}

	st.RemoveStale()
	return results, errs
}

func removeFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

func (o *Orchestrator) buildOne(ctx context.Context, st *state.Manager, outputDir, name string, opts BuildOptions) BuildResult {
	start := time.Now()
	result := BuildResult{Name: name}

	path, err := utils.SafeJoin(outputDir, name)
	if err != nil {
		result.Err = fmt.Errorf("output %q: %w", name, err)
		return result
	}
	result.Path = path

	artifact, err := o.combiner.GetCombinedFile(ctx, name)
	if err != nil {
		result.Err = err
		return result
	}
	result.Fingerprint = artifact.Fingerprint
	result.Size = int64(len(artifact.Content))

	if artifact.HasSourceMap() {
		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		result.MapPath = filepath.Join(filepath.Dir(path), artifact.Fingerprint+"."+ext+".map")
		result.MapSize = int64(len(artifact.SourceMap))
	}

	if !opts.Force && !st.ShouldWrite(name, artifact.Fingerprint, result.MapPath) {
		result.Skipped = true
		result.Duration = time.Since(start)
		return result
	}

	if !opts.DryRun {
		if err := utils.WriteFile(path, []byte(artifact.Content)); err != nil {
			result.Err = fmt.Errorf("write %s: %w", path, err)
			return result
		}
		if result.MapPath != "" {
			if err := utils.WriteFile(result.MapPath, []byte(artifact.SourceMap)); err != nil {
				result.Err = fmt.Errorf("write %s: %w", result.MapPath, err)
				return result
			}
		}

		prev, existed := st.Update(state.OutputState{
			Name:        name,
			Fingerprint: artifact.Fingerprint,
			Path:        path,
			MapPath:     result.MapPath,
			BuiltAt:     time.Now(),
		})
		if existed && opts.Prune && prev.MapPath != "" && prev.MapPath != result.MapPath {
			if err := removeFile(prev.MapPath); err != nil {
				o.logger.WithOutput(name).Warn().Err(err).Msg("Failed to remove previous source map")
			}
		}
	}

	result.Duration = time.Since(start)
	return result
}
