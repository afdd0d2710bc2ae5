package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/routeguard/routeguard/internal/domain"
)

const backupRoot = ".routeguard/backups"

// Store implements domain.BackupStore with timestamped directory snapshots.
// Apply-mode runs depend on a snapshot existing before the first write; any
// failure here must abort the run.
type Store struct{}

func New() *Store {
	return &Store{}
}

// manifest records what a snapshot contains.
type manifest struct {
	Timestamp  string   `json:"timestamp"`
	CommitHash string   `json:"commit_hash,omitempty"`
	Files      []string `json:"files"`
}

// Snapshot copies every candidate file into a fresh timestamped directory
// under .routeguard/backups, preserving relative paths, and writes a
// manifest.json alongside. Returns the snapshot directory.
func (s *Store) Snapshot(projectPath string, files []domain.SourceFile, commitHash string) (string, error) {
	stamp := time.Now().UTC().Format("20060102T150405Z")
	dir := filepath.Join(projectPath, filepath.FromSlash(backupRoot), stamp)

	m := manifest{Timestamp: stamp, CommitHash: commitHash}
	for _, f := range files {
		dst := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return "", fmt.Errorf("creating backup dir for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(dst, []byte(f.Text), 0644); err != nil {
			return "", fmt.Errorf("backing up %s: %w", f.Path, err)
		}
		m.Files = append(m.Files, f.Path)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0644); err != nil {
		return "", fmt.Errorf("writing backup manifest: %w", err)
	}

	return dir, nil
}
