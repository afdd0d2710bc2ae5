package domain_test

import (
	"strings"
	"testing"

	"github.com/routeguard/routeguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite_PlainAsync(t *testing.T) {
	got, matched := domain.Rewrite(plainGet, domain.PatternPlainAsync, "withHighRateLimit")

	assert.Equal(t, 1, matched)
	assert.Contains(t, got, "async function handleGet(request: NextRequest) {")
	assert.Contains(t, got, "export const GET = withHighRateLimit(handleGet);")
	assert.NotContains(t, got, "export async function GET")
	// Body carried over verbatim.
	assert.Contains(t, got, "return NextResponse.json({});")
}

func TestRewrite_MultipleMethods(t *testing.T) {
	got, matched := domain.Rewrite(multiMethod, domain.PatternMultipleMethods, "withStandardRateLimit")

	assert.Equal(t, 2, matched)
	assert.Contains(t, got, "export const GET = withStandardRateLimit(handleGet);")
	assert.Contains(t, got, "export const POST = withStandardRateLimit(handlePost);")
	assert.Contains(t, got, "const body = await request.json();")
}

func TestRewrite_WithAuth_KeepsEntireCall(t *testing.T) {
	got, matched := domain.Rewrite(withAuthRoute, domain.PatternWithAuth, "withSensitiveRateLimit")

	assert.Equal(t, 1, matched)
	assert.Contains(t, got,
		"export const POST = withSensitiveRateLimit(withAuth(async (request) => {\n  return new Response('ok');\n}, { roles: ['admin'] }));")
}

func TestRewrite_DynamicRoute_ParamsUntouched(t *testing.T) {
	got, matched := domain.Rewrite(dynamicRoute, domain.PatternDynamicRoute, "withStandardRateLimit")

	assert.Equal(t, 1, matched)
	assert.Contains(t, got,
		"async function handleGet(request: NextRequest, { params }: { params: Promise<{ id: string }> }) {")
	assert.Contains(t, got, "export const GET = withStandardRateLimit(handleGet);")
}

func TestRewrite_MixedShapes(t *testing.T) {
	text := withAuthRoute + `
export async function GET(request: NextRequest) {
  return NextResponse.json([]);
}
`
	got, matched := domain.Rewrite(text, domain.PatternMultipleMethods, "withStandardRateLimit")

	assert.Equal(t, 2, matched)
	assert.Contains(t, got, "withStandardRateLimit(withAuth(")
	assert.Contains(t, got, "export const GET = withStandardRateLimit(handleGet);")
}

func TestRewrite_ZeroMatchesIsNoOp(t *testing.T) {
	text := "export const revalidate = 60;\n"
	got, matched := domain.Rewrite(text, domain.PatternPlainAsync, "withStandardRateLimit")

	assert.Equal(t, 0, matched)
	assert.Equal(t, text, got)
}

func TestRewrite_UnknownPatternIsNoOp(t *testing.T) {
	got, matched := domain.Rewrite(plainGet, domain.PatternUnknown, "withHighRateLimit")
	assert.Equal(t, 0, matched)
	assert.Equal(t, plainGet, got)
}

func TestRewrite_StrayBraceLeavesTextUnchangedButMatched(t *testing.T) {
	text := "export async function GET(request: NextRequest) {\n" +
		"  const msg = `open { brace`;\n" +
		"  return new Response(msg);\n" +
		"}\n"
	got, matched := domain.Rewrite(text, domain.PatternPlainAsync, "withHighRateLimit")

	// The body's closing brace is swallowed by the stray one, so the scan
	// never closes; the match is still reported so the caller verifies
	// instead of skipping.
	assert.Equal(t, 1, matched)
	assert.Equal(t, text, got)
}

func TestRewrite_BraceBalancePreserved(t *testing.T) {
	for _, text := range []string{plainGet, multiMethod, dynamicRoute, withAuthRoute} {
		pattern := domain.Classify(text)
		got, matched := domain.Rewrite(text, pattern, "withStandardRateLimit")
		require.Positive(t, matched)
		assert.Equal(t, strings.Count(got, "{"), strings.Count(got, "}"))
	}
}
