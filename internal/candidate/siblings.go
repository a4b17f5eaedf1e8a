package candidate

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fernlight/readably/internal/dom"
	"github.com/fernlight/readably/internal/score"
)

// AppendSiblings implements spec §4.8: expand top by merging in adjoining
// siblings (from top's original parent) that likely belong to the same
// article, appending them as children of top in their original order.
// Grounded on the teacher's MergeSiblings (pkg/utils/dom/scoring.go),
// adapted from its sibling-relative contentBonus heuristic to the
// explicit score/link-density/trailing-punctuation rules spec.md gives.
func AppendSiblings(top *goquery.Selection, scores *score.Scores) {
	parent := top.Parent()
	if parent.Length() == 0 {
		return
	}

	topScore, _ := scores.Get(top)
	threshold := 10.0
	if alt := topScore * 0.2; alt > threshold {
		threshold = alt
	}

	topTag := dom.TagName(top)

	var toAppend []*goquery.Selection
	parent.Children().Each(func(_ int, sibling *goquery.Selection) {
		if sameNode(sibling, top) {
			return
		}
		if shouldIncludeSibling(sibling, top, topTag, threshold, scores) {
			toAppend = append(toAppend, sibling)
		}
	})

	for _, sibling := range toAppend {
		sibling.Remove()
		top.AppendSelection(sibling)
	}
}

func shouldIncludeSibling(sibling, top *goquery.Selection, topTag string, threshold float64, scores *score.Scores) bool {
	tag := dom.TagName(sibling)

	if tag == topTag {
		if siblingScore, ok := scores.Get(sibling); ok && siblingScore >= threshold {
			return true
		}
	}

	if tag != "p" {
		return false
	}

	density := score.LinkDensity(sibling)
	text := dom.ExtractText(sibling, true)
	textLen := len(text)

	if density < 0.25 && textLen > 80 {
		return true
	}
	if density == 0 && hasTrailingPunctuation(text) {
		return true
	}
	return false
}

func hasTrailingPunctuation(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	last := trimmed[len(trimmed)-1]
	return last == '.' || last == '!' || last == '?'
}
