package domain

// ConfigLoader loads the project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// CaseSource discovers and reads case files.
type CaseSource interface {
	// Discover returns case file paths relative to projectPath.
	Discover(projectPath string, cfg ProjectConfig) ([]string, error)
	Load(path string) ([]Case, error)
}

// GitInfo reports version-control metadata for a project.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// RunHistory persists run summaries.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}
