package domain

import (
	"path"
	"strings"
)

// sensitiveKeywords mark path segments handling privileged or destructive
// operations. Matched as whole segments or hyphen/underscore prefixes
// ("admin", "fix-duplicates", "audit_log").
var sensitiveKeywords = []string{"admin", "auth", "pricing", "setup", "fix", "audit"}

// heavyKeywords mark expensive long-running endpoints.
var heavyKeywords = []string{"report", "export", "analytics", "seed", "migrate", "cleanup"}

// telegramWebhookPath is the one bot endpoint with its own policy.
const telegramWebhookPath = "/api/telegram/webhook"

// highTrafficRoots are collection-root endpoints hit on nearly every page load.
var highTrafficRoots = []string{
	"/api/contacts",
	"/api/deals",
	"/api/tasks",
	"/api/organizations",
	"/api/activities",
	"/api/notes",
}

// categoryRule pairs a predicate with the category it assigns. Rules are
// ordered most specific and most dangerous first; the first match wins.
type categoryRule struct {
	category Category
	match    func(p pathInfo) bool
}

type pathInfo struct {
	normalized string
	segments   []string
}

// Assigner maps normalized route paths to rate-limit categories. The rule
// table is fixed; configuration may only append extra SENSITIVE prefixes and
// extend the HIGH allowlist, so assignment stays deterministic per instance.
type Assigner struct {
	rules []categoryRule
}

// NewAssigner builds an assigner from project configuration.
func NewAssigner(cfg ProjectConfig) *Assigner {
	sensitivePrefixes := append([]string{}, cfg.SensitivePrefixes...)
	highRoots := append(append([]string{}, highTrafficRoots...), cfg.HighTrafficRoots...)

	rules := []categoryRule{
		{CategorySensitive, func(p pathInfo) bool {
			for _, prefix := range sensitivePrefixes {
				if strings.HasPrefix(p.normalized, prefix) {
					return true
				}
			}
			return anySegmentMatches(p.segments, sensitiveKeywords, segmentEqualsOrPrefixed)
		}},
		{CategoryTelegram, func(p pathInfo) bool {
			return p.normalized == telegramWebhookPath
		}},
		{CategoryWebhook, func(p pathInfo) bool {
			for _, seg := range p.segments {
				if strings.Contains(seg, "webhook") {
					return true
				}
			}
			return false
		}},
		{CategoryHeavy, func(p pathInfo) bool {
			return anySegmentMatches(p.segments, heavyKeywords, strings.Contains)
		}},
		{CategoryHigh, func(p pathInfo) bool {
			for _, root := range highRoots {
				if p.normalized == root {
					return true
				}
			}
			return false
		}},
	}

	return &Assigner{rules: rules}
}

// Assign maps a route path to its rate-limit category. Deterministic and
// total: the same path always yields the same category, unknown paths fall
// through to CategoryStandard.
func (a *Assigner) Assign(routePath string) Category {
	p := normalizeRoutePath(routePath)
	for _, rule := range a.rules {
		if rule.match(p) {
			return rule.category
		}
	}
	return CategoryStandard
}

// normalizeRoutePath reduces a filesystem path to its canonical route form:
// forward slashes, lowercase, no route-file suffix, no src/app prefixes,
// one leading slash. "src/app/api/Admin/users/route.ts" -> "/api/admin/users".
func normalizeRoutePath(routePath string) pathInfo {
	p := strings.ToLower(strings.ReplaceAll(routePath, "\\", "/"))
	p = strings.TrimSuffix(p, "/route.tsx")
	p = strings.TrimSuffix(p, "/route.ts")
	p = path.Clean("/" + p)
	// Cut any project or src/app prefix so only the route itself is matched.
	if idx := strings.Index(p, "/api/"); idx > 0 {
		p = p[idx:]
	}
	segments := strings.Split(strings.Trim(p, "/"), "/")
	return pathInfo{normalized: p, segments: segments}
}

func anySegmentMatches(segments, keywords []string, match func(seg, kw string) bool) bool {
	for _, seg := range segments {
		for _, kw := range keywords {
			if match(seg, kw) {
				return true
			}
		}
	}
	return false
}

// segmentEqualsOrPrefixed matches "fix" against "fix", "fix-duplicates" and
// "fix_contacts" but not "prefix".
func segmentEqualsOrPrefixed(seg, kw string) bool {
	return seg == kw || strings.HasPrefix(seg, kw+"-") || strings.HasPrefix(seg, kw+"_")
}
