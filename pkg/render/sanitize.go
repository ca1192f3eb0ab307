package render

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	feedbackPolicyOnce sync.Once
	feedbackPolicy     *bluemonday.Policy
)

// SanitizeFeedback strips everything but the element set feedback markup is
// built from: div, p, span, small, ul, li, code with class/id/role/aria-live
// and data-* attributes.
func SanitizeFeedback(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(feedbackSanitizer().Sanitize(trimmed))
}

func feedbackSanitizer() *bluemonday.Policy {
	feedbackPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("div", "p", "span", "small", "ul", "li", "code")
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowAttrs("role").Matching(regexp.MustCompile(`^(alert|status|note)$`)).Globally()
		policy.AllowAttrs("aria-live").Matching(regexp.MustCompile(`^(polite|assertive|off)$`)).Globally()
		policy.AllowDataAttributes()
		feedbackPolicy = policy
	})
	return feedbackPolicy
}
