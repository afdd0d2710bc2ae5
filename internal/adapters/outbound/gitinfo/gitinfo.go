package gitinfo

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
)

// toolDirPrefix is the tool's own state directory. Backups and run history
// written there are untracked by nature and must not make a worktree count
// as dirty, or the second apply on the same repository would be refused.
const toolDirPrefix = ".routeguard/"

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(projectPath string) (string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// IsClean reports whether the worktree has no uncommitted changes outside
// the tool's own state directory. Apply mode refuses dirty worktrees so a
// botched run can always be reverted.
func (g *GitInfoAdapter) IsClean(projectPath string) (bool, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return false, fmt.Errorf("opening git repo: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting worktree status: %w", err)
	}

	for path, st := range status {
		if strings.HasPrefix(path, toolDirPrefix) {
			continue
		}
		if st.Staging != git.Unmodified || st.Worktree != git.Unmodified {
			return false, nil
		}
	}
	return true, nil
}
