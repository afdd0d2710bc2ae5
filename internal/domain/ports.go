package domain

// RouteWalker enumerates the route-handler files of a project.
type RouteWalker interface {
	Walk(projectPath string, cfg ProjectConfig) (*WalkResult, error)
}

// WalkResult holds the files found by a RouteWalker.
type WalkResult struct {
	RootPath string       `json:"root_path"`
	Files    []SourceFile `json:"files"`
}

// FileWriter persists transformed text in apply mode.
type FileWriter interface {
	Write(path string, data []byte) error
}

// BackupStore snapshots route files before an apply-mode run.
// Snapshot returns the directory the backup was written to.
type BackupStore interface {
	Snapshot(projectPath string, files []SourceFile, commitHash string) (string, error)
}

// GitInfo exposes the repository state guarding apply mode.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	IsClean(projectPath string) (bool, error)
}

// RunEntry is one persisted run record.
type RunEntry struct {
	Timestamp  string   `json:"timestamp"`
	Mode       Mode     `json:"mode"`
	CommitHash string   `json:"commit_hash,omitempty"`
	BackupDir  string   `json:"backup_dir,omitempty"`
	Stats      RunStats `json:"stats"`
}

// RunHistory persists run records under the project directory.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// ConfigLoader reads project-level configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}
