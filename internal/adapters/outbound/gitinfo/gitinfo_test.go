package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/routeguard/routeguard/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitInfo_IsGitRepo_True(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")

	gi := gitinfo.New()
	assert.True(t, gi.IsGitRepo(dir))
}

func TestGitInfo_IsGitRepo_False(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	assert.False(t, gi.IsGitRepo(dir))
}

func TestGitInfo_CommitHash_ReturnsHash(t *testing.T) {
	dir := newCommittedRepo(t)

	gi := gitinfo.New()
	hash, err := gi.CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40, "should be a full SHA-1 hash")
}

func TestGitInfo_CommitHash_NotGitRepo(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	_, err := gi.CommitHash(dir)
	assert.Error(t, err)
}

func TestGitInfo_IsClean_CommittedRepo(t *testing.T) {
	dir := newCommittedRepo(t)

	gi := gitinfo.New()
	clean, err := gi.IsClean(dir)
	require.NoError(t, err)
	assert.True(t, clean)
}

func TestGitInfo_IsClean_IgnoresToolDir(t *testing.T) {
	// Backups and run history from a previous apply are untracked files
	// under .routeguard/; they must not block the next apply.
	dir := newCommittedRepo(t)
	historyPath := filepath.Join(dir, ".routeguard", "history", "runs.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(historyPath), 0755))
	require.NoError(t, os.WriteFile(historyPath, []byte("[]"), 0644))

	gi := gitinfo.New()
	clean, err := gi.IsClean(dir)
	require.NoError(t, err)
	assert.True(t, clean, "tool state must not count as dirty")
}

func TestGitInfo_IsClean_UntrackedFileIsDirty(t *testing.T) {
	dir := newCommittedRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644))

	gi := gitinfo.New()
	clean, err := gi.IsClean(dir)
	require.NoError(t, err)
	assert.False(t, clean)
}

func TestGitInfo_IsClean_ModifiedFileIsDirty(t *testing.T) {
	dir := newCommittedRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("changed"), 0644))

	gi := gitinfo.New()
	clean, err := gi.IsClean(dir)
	require.NoError(t, err)
	assert.False(t, clean)
}

// newCommittedRepo creates a temp git repo with one committed file.
func newCommittedRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	f := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("hello"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")
	return dir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}
