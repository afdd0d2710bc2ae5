package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// RoutePattern describes the code shape of a route-handler file.
type RoutePattern string

const (
	PatternAlreadyProtected RoutePattern = "already_protected"
	PatternMultipleMethods  RoutePattern = "multiple_methods"
	PatternDynamicRoute     RoutePattern = "dynamic_route"
	PatternWithAuth         RoutePattern = "with_auth"
	PatternPlainAsync       RoutePattern = "plain_async"
	PatternUnknown          RoutePattern = "unknown"
)

// Category is the rate-limit policy class assigned to a route path.
type Category string

const (
	CategorySensitive Category = "sensitive"
	CategoryTelegram  Category = "telegram"
	CategoryWebhook   Category = "webhook"
	CategoryHeavy     Category = "heavy"
	CategoryHigh      Category = "high"
	CategoryStandard  Category = "standard"
)

// DefaultMiddlewareModule is the import path of the rate-limit middleware.
const DefaultMiddlewareModule = "@/lib/rate-limit"

// HTTPVerbs are the handler exports Next.js recognizes in a route file.
var HTTPVerbs = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// wrapperByCategory binds each category to its canonical wrapper identifier.
var wrapperByCategory = map[Category]string{
	CategorySensitive: "withSensitiveRateLimit",
	CategoryTelegram:  "withTelegramRateLimit",
	CategoryWebhook:   "withWebhookRateLimit",
	CategoryHeavy:     "withHeavyRateLimit",
	CategoryHigh:      "withHighRateLimit",
	CategoryStandard:  "withStandardRateLimit",
}

// Wrapper returns the canonical wrapper identifier for the category.
func (c Category) Wrapper() string { return wrapperByCategory[c] }

// AllCategories lists every category in rule-table order.
var AllCategories = []Category{
	CategorySensitive, CategoryTelegram, CategoryWebhook,
	CategoryHeavy, CategoryHigh, CategoryStandard,
}

// RecognizedWrappers lists the six wrapper identifiers the classifier and
// verifier treat as proof of protection.
func RecognizedWrappers() []string {
	wrappers := make([]string, 0, len(AllCategories))
	for _, c := range AllCategories {
		wrappers = append(wrappers, c.Wrapper())
	}
	return wrappers
}

// DetectWrapper returns the first recognized wrapper identifier invoked in
// text, or false when none is called.
func DetectWrapper(text string) (string, bool) {
	for _, w := range RecognizedWrappers() {
		if strings.Contains(text, w+"(") {
			return w, true
		}
	}
	return "", false
}

// CategoryOfWrapper recovers the category from a wrapper identifier by
// splitting it into CamelCase words and matching the qualifier word
// (e.g. "withHighRateLimit" -> "with", "High", "Rate", "Limit" -> high).
// Keeps per-category counts accurate for already-protected files.
func CategoryOfWrapper(id string) (Category, bool) {
	words := camelcase.Split(id)
	if len(words) < 2 || words[0] != "with" {
		return "", false
	}
	qualifier := strings.ToLower(words[1])
	for _, c := range AllCategories {
		if string(c) == qualifier {
			return c, true
		}
	}
	return "", false
}
