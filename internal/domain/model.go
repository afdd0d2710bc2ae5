package domain

// SourceFile is one route-handler file flowing through the pipeline.
// It is owned by a single pipeline invocation and never mutated after read;
// transformed text lives in the FileResult, not here.
type SourceFile struct {
	Path string `json:"path"`
	Text string `json:"-"`
}

// Mode selects whether a run mutates files or only reports what it would do.
type Mode string

const (
	ModePreview Mode = "preview"
	ModeApply   Mode = "apply"
)

// Status is the per-file outcome of a pipeline invocation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
	StatusError   Status = "error"
)

// TransformResult carries a verification verdict over one rewrite.
type TransformResult struct {
	Original    string   `json:"-"`
	Transformed string   `json:"-"`
	OK          bool     `json:"ok"`
	Violations  []string `json:"violations,omitempty"`
}

// FileResult is the outcome of processing a single route file.
type FileResult struct {
	Path       string       `json:"path"`
	Status     Status       `json:"status"`
	Pattern    RoutePattern `json:"pattern"`
	Category   Category     `json:"category,omitempty"`
	Output     string       `json:"output,omitempty"` // transformed text (apply) or rendered diff (preview)
	Violations []string     `json:"violations,omitempty"`
	Reason     string       `json:"reason,omitempty"`
}

// Failure records one file that could not be transformed safely.
type Failure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// RunStats aggregates per-status and per-category counts for one run.
// A fresh value is created per run and threaded through the orchestrator;
// it is never shared across runs.
type RunStats struct {
	Success    int              `json:"success"`
	Skipped    int              `json:"skipped"`
	Failed     int              `json:"failed"`
	Errors     int              `json:"errors"`
	ByCategory map[Category]int `json:"by_category"`
	Failures   []Failure        `json:"failures,omitempty"`
}

// NewRunStats returns an empty statistics value.
func NewRunStats() *RunStats {
	return &RunStats{ByCategory: map[Category]int{}}
}

// Record folds one file result into the statistics.
func (s *RunStats) Record(r FileResult) {
	switch r.Status {
	case StatusSuccess:
		s.Success++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
		s.Failures = append(s.Failures, Failure{Path: r.Path, Reason: r.Reason})
	case StatusError:
		s.Errors++
		s.Failures = append(s.Failures, Failure{Path: r.Path, Reason: r.Reason})
	}
	if r.Category != "" {
		s.ByCategory[r.Category]++
	}
}

// Total is the number of files the run looked at.
func (s *RunStats) Total() int {
	return s.Success + s.Skipped + s.Failed + s.Errors
}
