package qualform

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	formattedPolicyOnce sync.Once
	formattedPolicy     *bluemonday.Policy
)

// AddSafeFormattedText sanitizes markup against the XHTML element set the
// qualification-form schema permits inside FormattedContent, then embeds the
// result the same way AddFormattedText does.
func (c *Content) AddSafeFormattedText(markup string) *Content {
	return c.AddFormattedText(SanitizeFormatted(markup))
}

// SanitizeFormatted strips everything outside the XHTML subset allowed in
// FormattedContent blocks. Disallowed elements are removed along with any
// scriptable attributes.
func SanitizeFormatted(markup string) string {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(formattedSanitizer().Sanitize(trimmed))
}

func formattedSanitizer() *bluemonday.Policy {
	formattedPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"a", "b", "big", "blockquote", "br", "caption", "center", "cite",
			"code", "col", "colgroup", "dd", "del", "dfn", "div", "dl", "dt",
			"em", "font", "h1", "h2", "h3", "h4", "h5", "h6", "hr", "i",
			"img", "ins", "kbd", "li", "ol", "p", "pre", "q", "s", "samp",
			"small", "span", "strike", "strong", "sub", "sup", "table",
			"tbody", "td", "tfoot", "th", "thead", "tr", "tt", "u", "ul",
			"var",
		)
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
		policy.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
		policy.AllowAttrs("span", "width").OnElements("col", "colgroup")
		policy.AllowAttrs("size", "color", "face").OnElements("font")
		formattedPolicy = policy
	})
	return formattedPolicy
}
