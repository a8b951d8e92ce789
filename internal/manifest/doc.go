// Package manifest provides types and utilities for loading and validating
// theme manifest files. A manifest declares namespace aliases for source
// directories and the ordered list of sources combined into each output.
//
// # Manifest Format
//
// Manifests can be written in YAML, JSON or JSON with comments:
//
//	sourcemaps: true
//	paths:
//	  ./assets/core: core
//	  ./vendor/lib: lib
//	files:
//	  frontend.css:
//	    - "@core/reset.css"
//	    - "@core/site.css"
//	  app.js: ["@lib/lib.js", "@core/app.js"]
//
// Keys of paths are base directories and values are namespace names. A
// reference of the form @name/relative/path resolves against the first base
// directory whose namespace is name, in file order. Relative base directories
// are made absolute against the directory holding the manifest file.
//
// # Usage
//
//	loader := manifest.NewLoader()
//	cfg, err := loader.Load("theme.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, name := range cfg.Files.Names() {
//	    refs, _ := cfg.Files.Lookup(name)
//	    // Process references
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrNoOutputs: manifest declares no output files
//   - ErrEmptyNamespace: a base directory or namespace name is empty
//   - ErrDuplicateOutput: an output name is declared twice
//   - ErrInvalidFormat: file is not valid YAML/JSON
//   - ErrFileNotFound: manifest file does not exist
//   - ErrUnsupportedExt: unsupported file extension
package manifest
