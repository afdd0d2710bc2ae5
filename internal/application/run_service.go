package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/routeguard/routeguard/internal/domain"
)

// RunService orchestrates whole-project runs:
// load config -> walk routes -> (apply only: git check + backup) ->
// per-file pipeline -> write or diff -> history.
type RunService struct {
	walker  domain.RouteWalker
	config  domain.ConfigLoader
	writer  domain.FileWriter
	backup  domain.BackupStore
	git     domain.GitInfo
	history domain.RunHistory
}

func NewRunService(
	walker domain.RouteWalker,
	config domain.ConfigLoader,
	writer domain.FileWriter,
	backup domain.BackupStore,
	git domain.GitInfo,
	history domain.RunHistory,
) *RunService {
	return &RunService{
		walker:  walker,
		config:  config,
		writer:  writer,
		backup:  backup,
		git:     git,
		history: history,
	}
}

// RunReport is the aggregated outcome of one project run.
type RunReport struct {
	Stats      *domain.RunStats    `json:"stats"`
	Results    []domain.FileResult `json:"results"`
	CommitHash string              `json:"commit_hash,omitempty"`
	BackupDir  string              `json:"backup_dir,omitempty"`
}

// Preview computes every transformation and renders diffs without touching
// any file.
func (s *RunService) Preview(projectPath string) (*RunReport, error) {
	cfg, walk, err := s.load(projectPath)
	if err != nil {
		return nil, err
	}

	svc := NewTransformService(cfg)
	stats, results := svc.Run(walk.Files, domain.ModePreview)

	report := &RunReport{Stats: stats, Results: results}
	s.attachCommit(projectPath, report)
	s.saveHistory(projectPath, domain.ModePreview, report)
	return report, nil
}

// Apply transforms route files in place. A full backup is taken first and a
// failed backup aborts before any write; a dirty git worktree is refused
// unless force is set. Individual file failures never abort the run.
func (s *RunService) Apply(projectPath string, force bool) (*RunReport, error) {
	cfg, walk, err := s.load(projectPath)
	if err != nil {
		return nil, err
	}

	report := &RunReport{}
	s.attachCommit(projectPath, report)

	if s.git.IsGitRepo(projectPath) && !force {
		clean, err := s.git.IsClean(projectPath)
		if err != nil {
			return nil, fmt.Errorf("checking git worktree: %w", err)
		}
		if !clean {
			return nil, fmt.Errorf("git worktree is dirty; commit or stash first, or re-run with --force")
		}
	}

	backupDir, err := s.backup.Snapshot(projectPath, walk.Files, report.CommitHash)
	if err != nil {
		return nil, fmt.Errorf("backup failed, aborting before any write: %w", err)
	}
	report.BackupDir = backupDir

	svc := NewTransformService(cfg)
	stats := domain.NewRunStats()
	results := make([]domain.FileResult, 0, len(walk.Files))

	for _, f := range walk.Files {
		r := svc.ProcessFile(f.Path, f.Text, domain.ModeApply)
		if r.Status == domain.StatusSuccess {
			abs := filepath.Join(projectPath, filepath.FromSlash(f.Path))
			if err := s.writer.Write(abs, []byte(r.Output)); err != nil {
				r.Status = domain.StatusError
				r.Output = ""
				r.Reason = fmt.Sprintf("writing file: %v", err)
			}
		}
		stats.Record(r)
		results = append(results, r)
	}

	report.Stats = stats
	report.Results = results
	s.saveHistory(projectPath, domain.ModeApply, report)
	return report, nil
}

// Inspection is the classify-only view of a single file.
type Inspection struct {
	Path     string              `json:"path"`
	Pattern  domain.RoutePattern `json:"pattern"`
	Category domain.Category     `json:"category"`
	Wrapper  string              `json:"wrapper"`
}

// Inspect classifies one file and reports the category its path would be
// assigned, without transforming anything.
func (s *RunService) Inspect(projectPath, filePath, text string) (Inspection, error) {
	cfg, err := s.config.Load(projectPath)
	if err != nil {
		return Inspection{}, fmt.Errorf("loading config: %w", err)
	}

	assigner := domain.NewAssigner(cfg)
	category := assigner.Assign(filePath)
	return Inspection{
		Path:     filePath,
		Pattern:  domain.Classify(text),
		Category: category,
		Wrapper:  category.Wrapper(),
	}, nil
}

func (s *RunService) load(projectPath string) (domain.ProjectConfig, *domain.WalkResult, error) {
	cfg, err := s.config.Load(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, nil, fmt.Errorf("loading config: %w", err)
	}

	walk, err := s.walker.Walk(projectPath, cfg)
	if err != nil {
		return domain.ProjectConfig{}, nil, fmt.Errorf("walking routes: %w", err)
	}
	return cfg, walk, nil
}

func (s *RunService) attachCommit(projectPath string, report *RunReport) {
	if s.git.IsGitRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		}
	}
}

// saveHistory is best-effort; a history write never fails the run.
func (s *RunService) saveHistory(projectPath string, mode domain.Mode, report *RunReport) {
	_ = s.history.Save(projectPath, domain.RunEntry{
		Timestamp:  time.Now().Format(time.RFC3339),
		Mode:       mode,
		CommitHash: report.CommitHash,
		BackupDir:  report.BackupDir,
		Stats:      *report.Stats,
	})
}
