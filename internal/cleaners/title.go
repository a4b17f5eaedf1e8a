package cleaners

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanTitle normalizes a raw title string by stripping site-suffix
// patterns, following the first-matching-rule-wins order of spec §4.2.
// doc is consulted only by the colon rule, to check for a matching
// <h1>/<h2>. A faithful port of the rule list; unlike the teacher's
// CleanTitle (pkg/cleaners/title.go), which fuzzy-matches the title
// against the page's domain via Levenshtein, this follows the simpler
// separator/dash/colon rule set spec.md specifies.
func CleanTitle(title string, doc *goquery.Selection) string {
	if idx := TITLE_SEPARATOR_RE.FindStringIndex(title); idx != nil {
		left := title[:idx[0]]
		if wordCount(left) >= 3 {
			return strings.TrimSpace(left)
		}
		return strings.TrimSpace(title[idx[1]:])
	}

	if idx := TITLE_TRAILING_DASH_RE.FindStringIndex(title); idx != nil {
		trailing := title[idx[0]:]
		if wordCount(trailing) <= 4 {
			return title[:idx[0]]
		}
		return title
	}

	if strings.Contains(title, ": ") {
		trimmed := strings.TrimSpace(title)
		if doc != nil && hasMatchingHeading(doc, trimmed) {
			return title
		}

		lastColon := strings.LastIndex(title, ":")
		firstColon := strings.Index(title, ":")

		afterLast := title[lastColon+1:]
		if wordCount(afterLast) >= 3 {
			if wordCount(title[:firstColon]) > 5 {
				return title
			}
			return strings.TrimSpace(afterLast)
		}

		afterFirst := title[firstColon+1:]
		return strings.TrimSpace(afterFirst)
	}

	return title
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// hasMatchingHeading reports whether any <h1>/<h2> in doc has text equal to
// title after trimming, per spec §4.2 rule 3a.
func hasMatchingHeading(doc *goquery.Selection, title string) bool {
	found := false
	doc.Find("h1, h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.TrimSpace(h.Text()) == title {
			found = true
			return false
		}
		return true
	})
	return found
}
