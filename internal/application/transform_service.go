package application

import (
	"fmt"
	"strings"

	"github.com/routeguard/routeguard/internal/domain"
)

// TransformService drives the per-file pipeline:
// classify -> assign category -> inject import -> rewrite -> verify.
type TransformService struct {
	cfg      domain.ProjectConfig
	assigner *domain.Assigner
}

func NewTransformService(cfg domain.ProjectConfig) *TransformService {
	return &TransformService{cfg: cfg, assigner: domain.NewAssigner(cfg)}
}

// ProcessFile processes a single route file. It never returns an error:
// unexpected panics during scanning are recovered into StatusError with the
// original file guaranteed untouched, so one bad file cannot abort a run.
func (s *TransformService) ProcessFile(path, text string, mode domain.Mode) (result domain.FileResult) {
	result = domain.FileResult{Path: path}

	defer func() {
		if r := recover(); r != nil {
			result.Status = domain.StatusError
			result.Output = ""
			result.Reason = fmt.Sprintf("unexpected panic during scan: %v", r)
		}
	}()

	pattern := domain.Classify(text)
	result.Pattern = pattern

	switch pattern {
	case domain.PatternAlreadyProtected:
		result.Status = domain.StatusSkipped
		result.Reason = "already protected"
		// Recover the category from the wrapper already in place so
		// per-category counts stay accurate across re-runs.
		if w, ok := domain.DetectWrapper(text); ok {
			if c, ok := domain.CategoryOfWrapper(w); ok {
				result.Category = c
			}
		}
		return result
	case domain.PatternUnknown:
		result.Status = domain.StatusSkipped
		result.Reason = "unrecognized handler shape"
		return result
	}

	category := s.assigner.Assign(path)
	result.Category = category
	wrapper := category.Wrapper()

	injected := domain.EnsureImport(text, wrapper, s.cfg.MiddlewareModule)
	transformed, matched := domain.Rewrite(injected, pattern, wrapper)

	if matched == 0 {
		// The dispatched rewriter found nothing to wrap: a no-op, not an error.
		result.Status = domain.StatusSkipped
		result.Reason = "no matching handlers for pattern " + string(pattern)
		return result
	}

	verdict := domain.Verify(text, transformed)
	if !verdict.OK {
		result.Status = domain.StatusFailed
		result.Violations = verdict.Violations
		result.Reason = strings.Join(verdict.Violations, "; ")
		return result
	}

	result.Status = domain.StatusSuccess
	if mode == domain.ModePreview {
		result.Output = domain.RenderDiff(text, transformed, path)
	} else {
		result.Output = transformed
	}
	return result
}

// Run processes files one by one, accumulating statistics. A single file's
// failure is recorded and processing continues.
func (s *TransformService) Run(files []domain.SourceFile, mode domain.Mode) (*domain.RunStats, []domain.FileResult) {
	stats := domain.NewRunStats()
	results := make([]domain.FileResult, 0, len(files))
	for _, f := range files {
		r := s.ProcessFile(f.Path, f.Text, mode)
		stats.Record(r)
		results = append(results, r)
	}
	return stats, results
}
