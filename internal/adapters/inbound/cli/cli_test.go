package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/routeguard/routeguard/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactsRoute = `import { NextRequest, NextResponse } from 'next/server';

export async function GET(request: NextRequest) {
  return NextResponse.json({});
}
`

func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "app", "api", "contacts", "route.ts")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contactsRoute), 0644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestPreviewCommand_PrintsDiffWithoutWriting(t *testing.T) {
	dir := newProject(t)
	routePath := filepath.Join(dir, "app", "api", "contacts", "route.ts")

	out, err := run(t, "preview", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "--- ORIGINAL")
	assert.Contains(t, out, "+++ TRANSFORMED")
	assert.Contains(t, out, "withHighRateLimit")

	data, readErr := os.ReadFile(routePath)
	require.NoError(t, readErr)
	assert.Equal(t, contactsRoute, string(data), "preview never mutates files")
}

func TestPreviewCommand_JSON(t *testing.T) {
	dir := newProject(t)

	out, err := run(t, "preview", dir, "--json")
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &report), "output should be valid JSON")
	assert.Contains(t, report, "stats")
	assert.Contains(t, report, "results")
}

func TestApplyCommand_RewritesAndBacksUp(t *testing.T) {
	dir := newProject(t)
	routePath := filepath.Join(dir, "app", "api", "contacts", "route.ts")

	out, err := run(t, "apply", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 transformed")

	data, readErr := os.ReadFile(routePath)
	require.NoError(t, readErr)
	text := string(data)
	assert.Contains(t, text, "export const GET = withHighRateLimit(handleGet);")
	assert.Contains(t, text, "import { withHighRateLimit } from '@/lib/rate-limit';")

	// Original content preserved in the backup snapshot.
	backups, globErr := filepath.Glob(filepath.Join(dir, ".routeguard", "backups", "*", "app", "api", "contacts", "route.ts"))
	require.NoError(t, globErr)
	require.Len(t, backups, 1)
	backupData, readErr := os.ReadFile(backups[0])
	require.NoError(t, readErr)
	assert.Equal(t, contactsRoute, string(backupData))
}

func TestApplyCommand_SecondRunIsNoOp(t *testing.T) {
	dir := newProject(t)
	routePath := filepath.Join(dir, "app", "api", "contacts", "route.ts")

	_, err := run(t, "apply", dir)
	require.NoError(t, err)
	first, err := os.ReadFile(routePath)
	require.NoError(t, err)

	out, err := run(t, "apply", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 skipped")

	second, err := os.ReadFile(routePath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second), "re-running converges to the same fixed point")
}

func TestApplyCommand_SecondRunOnGitRepoNotRefused(t *testing.T) {
	// The first apply leaves backups and history under .routeguard/; those
	// untracked files must not make the next apply fail the worktree check.
	dir := newProject(t)
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")

	_, err := run(t, "apply", dir)
	require.NoError(t, err)
	// Commit the rewritten routes; .routeguard/ stays untracked.
	runGit(t, dir, "add", "app")
	runGit(t, dir, "commit", "-m", "rate limits")

	out, err := run(t, "apply", dir)
	require.NoError(t, err, "second apply must not be refused as dirty")
	assert.Contains(t, out, "1 skipped")
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}

func TestApplyCommand_FailedFileLeftUntouchedAndExitNonzero(t *testing.T) {
	dir := newProject(t)
	stray := "export async function GET(request: NextRequest) {\n" +
		"  const msg = `open { brace`;\n" +
		"  return new Response(msg);\n" +
		"}\n"
	strayPath := filepath.Join(dir, "app", "api", "status", "route.ts")
	require.NoError(t, os.MkdirAll(filepath.Dir(strayPath), 0755))
	require.NoError(t, os.WriteFile(strayPath, []byte(stray), 0644))

	out, err := run(t, "apply", dir)
	require.Error(t, err, "per-file failures surface as a nonzero exit")
	assert.Contains(t, err.Error(), "failed")
	assert.Contains(t, out, "brace imbalance")

	data, readErr := os.ReadFile(strayPath)
	require.NoError(t, readErr)
	assert.Equal(t, stray, string(data), "failed file left untouched")

	// The healthy file in the same run is still transformed.
	healthy, readErr := os.ReadFile(filepath.Join(dir, "app", "api", "contacts", "route.ts"))
	require.NoError(t, readErr)
	assert.Contains(t, string(healthy), "withHighRateLimit")
}

func TestApplyCommand_WritesHistory(t *testing.T) {
	dir := newProject(t)

	_, err := run(t, "apply", dir)
	require.NoError(t, err)

	data, readErr := os.ReadFile(filepath.Join(dir, ".routeguard", "history", "runs.json"))
	require.NoError(t, readErr)
	assert.Contains(t, string(data), `"mode": "apply"`)
}

func TestClassifyCommand(t *testing.T) {
	dir := newProject(t)
	routePath := filepath.Join(dir, "app", "api", "contacts", "route.ts")

	out, err := run(t, "classify", routePath, "--path", dir, "--json")
	require.NoError(t, err)

	var ins map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &ins))
	assert.Equal(t, "plain_async", ins["pattern"])
	assert.Equal(t, "high", ins["category"])
	assert.Equal(t, "withHighRateLimit", ins["wrapper"])
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "routeguard "))
}
