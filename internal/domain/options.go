package domain

// CommonOptions contains shared options for the CLI commands and the application.
type CommonOptions struct {
	Verbose bool
	DryRun  bool
}
