package clean

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// articlePolicy is a defense-in-depth pass applied after the rule-based
// removals above: it strips any <script>/event-handler content that
// slipped past the DOM-level steps (e.g. content pulled in by the sibling
// appender, C8, after the preprocessor's script/style strip already ran).
// It does not implement spec §4.9's removal rules itself; those are the
// functions above. Grounded on the teacher's
// pkg/utils/security/sanitizer.go ArticleSanitizer, widened to allow the
// iframe hosts the caller already allow-listed via removeEmbeds.
var articlePolicy = buildArticlePolicy()

func buildArticlePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements("p", "br", "strong", "b", "em", "i", "u", "s", "mark", "small", "sub", "sup")
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowElements("ul", "ol", "li", "dl", "dt", "dd", "blockquote", "pre", "code", "figure", "figcaption")
	p.AllowElements("img", "a", "span", "div", "table", "thead", "tbody", "tr", "th", "td", "iframe", "hr")
	p.AllowElements("section", "article")

	// A form survives clean.go when it is keep-marked (isKept) or form
	// cleanup is disabled, and the other controls are never removed there;
	// allow them here so the sanitizer doesn't silently undo those rules.
	p.AllowElements("form", "input", "button", "textarea", "select", "option")

	p.AllowAttrs("href").OnElements("a")
	p.RequireNoReferrerOnLinks(true)
	// RequireNoReferrerOnLinks turns on URL checking, which drops any
	// src/href whose scheme is not allowed; resolveURLs has already made
	// them absolute.
	p.AllowURLSchemes("http", "https")

	p.AllowAttrs("src", "alt", "width", "height", "srcset", "sizes").OnElements("img")
	p.AllowAttrs("src", "allowfullscreen", "frameborder").OnElements("iframe")
	p.AllowAttrs("action", "method").OnElements("form")
	p.AllowAttrs("type", "name", "value", "placeholder").OnElements("input", "button", "textarea", "select", "option")
	p.AllowAttrs("class", "id", keepAttr).OnElements(
		"div", "span", "p", "img", "a", "h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "table", "figure", "figcaption", "form", "input",
		"section", "article",
	)

	return p
}

// sanitizeContent rewrites top's inner HTML through articlePolicy,
// preserving top's own tag and attributes (C10 still needs to set
// id="article" on it and insert metadata children).
func sanitizeContent(top *goquery.Selection) {
	inner, err := top.Html()
	if err != nil {
		return
	}
	top.SetHtml(articlePolicy.Sanitize(inner))
}
