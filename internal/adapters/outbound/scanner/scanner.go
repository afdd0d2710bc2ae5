package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/routeguard/routeguard/internal/domain"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
	"dist":         true,
	"coverage":     true,
	".routeguard":  true,
}

// RouteScanner implements domain.RouteWalker and domain.FileWriter by
// walking the filesystem for Next.js route-handler files.
type RouteScanner struct{}

func New() *RouteScanner {
	return &RouteScanner{}
}

// Walk collects every route.ts/route.tsx under the configured API root.
// Paths in the result are relative to the project root, slash-separated.
func (s *RouteScanner) Walk(projectPath string, cfg domain.ProjectConfig) (*domain.WalkResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	result := &domain.WalkResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() != "route.ts" && d.Name() != "route.tsx" {
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)
		relSlash := filepath.ToSlash(relPath)

		if cfg.APIRoot != "" && !strings.Contains(relSlash, cfg.APIRoot) {
			return nil
		}
		for _, ex := range cfg.ExcludePaths {
			if strings.Contains(relSlash, ex) {
				return nil
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		result.Files = append(result.Files, domain.SourceFile{
			Path: relSlash,
			Text: string(data),
		})
		return nil
	})

	return result, err
}

// Write persists transformed text in apply mode.
func (s *RouteScanner) Write(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
