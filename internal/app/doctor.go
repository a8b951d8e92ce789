package app

import (
	"fmt"
	"os"

	"github.com/quantmind-br/themebundle/internal/cache"
	"github.com/quantmind-br/themebundle/internal/config"
	"github.com/quantmind-br/themebundle/internal/manifest"
	"github.com/quantmind-br/themebundle/internal/theme"
)

// CheckStatus is the outcome of a single doctor check
type CheckStatus string

const (
	CheckOK   CheckStatus = "OK"
	CheckWarn CheckStatus = "WARN"
	CheckFail CheckStatus = "FAILED"
)

// Check is the result of one doctor check
type Check struct {
	Name   string
	Status CheckStatus
	Detail string
}

// Doctor checks that the manifest loads, every output resolves to readable
// sources with a servable extension and the cache directory is usable.
// No artifact is combined or stored.
func Doctor(cfg *config.Config) []Check {
	var checks []Check

	manifestCfg, err := manifest.NewLoader().Load(cfg.Theme.Manifest)
	if err != nil {
		return append(checks, Check{Name: "Manifest", Status: CheckFail, Detail: err.Error()})
	}
	checks = append(checks, Check{
		Name:   "Manifest",
		Status: CheckOK,
		Detail: fmt.Sprintf("%s (%d outputs, %d namespaces)", cfg.Theme.Manifest, manifestCfg.Files.Len(), manifestCfg.Paths.Len()),
	})

	for _, e := range manifestCfg.Paths.Entries() {
		checks = append(checks, checkDir("Namespace @"+e.Namespace, e.BaseDir))
	}

	projectDir, err := ProjectDir(cfg)
	if err != nil {
		checks = append(checks, Check{Name: "Project directory", Status: CheckFail, Detail: err.Error()})
	} else {
		checks = append(checks, checkDir("Project directory", projectDir))
	}

	combiner, err := theme.NewCombiner(theme.Options{
		Paths: manifestCfg.Paths,
		Files: manifestCfg.Files,
		Store: cache.NewMemoryStore(),
	})
	if err != nil {
		return append(checks, Check{Name: "Combiner", Status: CheckFail, Detail: err.Error()})
	}

	for _, name := range combiner.Outputs() {
		checks = append(checks, checkOutput(combiner, name))
	}

	checks = append(checks, checkCache(cfg))
	return checks
}

// AllPassed reports whether no check failed
func AllPassed(checks []Check) bool {
	for _, c := range checks {
		if c.Status == CheckFail {
			return false
		}
	}
	return true
}

func checkOutput(combiner *theme.Combiner, name string) Check {
	check := Check{Name: "Output " + name}

	plan, err := combiner.Plan(name)
	if err != nil {
		check.Status = CheckFail
		check.Detail = err.Error()
		return check
	}
	if _, ok := theme.ContentTypeFor(plan.Extension); !ok {
		check.Status = CheckFail
		check.Detail = fmt.Sprintf("extension %q cannot be served", plan.Extension)
		return check
	}

	check.Status = CheckOK
	check.Detail = fmt.Sprintf("%d sources, fingerprint %.12s", len(plan.Sources), plan.Fingerprint)
	return check
}

func checkDir(name, path string) Check {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return Check{Name: name, Status: CheckWarn, Detail: err.Error()}
	case !info.IsDir():
		return Check{Name: name, Status: CheckWarn, Detail: path + " is not a directory"}
	default:
		return Check{Name: name, Status: CheckOK, Detail: path}
	}
}

func checkCache(cfg *config.Config) Check {
	check := Check{Name: "Cache"}
	if cfg.Cache.Backend != config.BackendBadger {
		check.Status = CheckOK
		check.Detail = "in-memory"
		return check
	}

	dir := cfg.Cache.Directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		check.Status = CheckFail
		check.Detail = err.Error()
		return check
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		check.Status = CheckFail
		check.Detail = fmt.Sprintf("%s is not writable: %v", dir, err)
		return check
	}
	f.Close()
	os.Remove(f.Name())

	check.Status = CheckOK
	check.Detail = "badger at " + dir
	return check
}
