package foundation

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// TextPolicy returns the default policy applied to labels and descriptions.
// It keeps inline formatting and links; everything else is stripped and text
// is escaped.
func TextPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("a", "abbr", "b", "br", "code", "em", "i", "small", "span", "strong")
		policy.AllowAttrs("href", "title", "target", "rel").OnElements("a")
		policy.AllowAttrs("title").OnElements("abbr")
		policy.AllowAttrs("class").OnElements("span", "code")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(false)
		textPolicy = policy
	})
	return textPolicy
}

func sanitizeText(policy *bluemonday.Policy, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if policy == nil {
		policy = TextPolicy()
	}
	return policy.Sanitize(trimmed)
}
