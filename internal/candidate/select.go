// Package candidate implements the top-candidate selector (C7) and the
// sibling appender (C8): choosing the article root from the scorer's
// output, then expanding it with adjoining sibling content.
package candidate

import (
	"errors"

	"github.com/PuerkitoBio/goquery"

	"github.com/fernlight/readably/internal/dom"
	"github.com/fernlight/readably/internal/score"
)

// ErrNoCandidates is returned when the scorer produced no candidates at
// all, per spec §4.7/§7 (input-kind failure "NoCandidates").
var ErrNoCandidates = errors.New("readably: no candidates found")

// Select runs the C7 top-candidate selection over scores, grounded on the
// teacher's FindTopCandidate (pkg/utils/dom/scoring.go): maintain a
// running top-5 set, take the single maximum, then search its ancestor
// chain for a stronger aggregate root.
func Select(scores *score.Scores) (*goquery.Selection, error) {
	top5 := runningTop5(scores.Candidates())
	if len(top5) == 0 {
		return nil, ErrNoCandidates
	}

	top := top5[0]
	for _, c := range top5[1:] {
		if c.Score > top.Score {
			top = c
		}
	}

	return alternativeAncestor(top, top5), nil
}

// runningTop5 implements spec §4.7's running set: append while under 5
// members, else replace the minimum if the new score beats it, keeping the
// earlier entry on ties.
func runningTop5(candidates []score.Candidate) []score.Candidate {
	var top5 []score.Candidate
	for _, c := range candidates {
		if len(top5) < 5 {
			top5 = append(top5, c)
			continue
		}
		minIdx := 0
		for i, existing := range top5 {
			if existing.Score < top5[minIdx].Score {
				minIdx = i
			}
		}
		if c.Score > top5[minIdx].Score {
			top5[minIdx] = c
		}
	}
	return top5
}

// alternativeAncestor implements spec §4.7's alternative-candidate search:
// walk top's ancestor chain up to body; for each ancestor, count how many
// of the other top-5 members are descendants scoring at least 75% of
// top's score, and promote to that ancestor once 3 or more qualify,
// continuing to walk upward to the highest qualifying ancestor.
func alternativeAncestor(top score.Candidate, top5 []score.Candidate) *goquery.Selection {
	best := top.Node
	threshold := top.Score * 0.75

	ancestor := top.Node.Parent()
	for ancestor.Length() > 0 {
		qualifying := 0
		for _, c := range top5 {
			if sameNode(c.Node, top.Node) {
				continue
			}
			if c.Score >= threshold && isDescendant(ancestor, c.Node) {
				qualifying++
			}
		}
		if qualifying >= 3 {
			best = ancestor
		}
		if dom.TagName(ancestor) == "body" {
			break
		}
		ancestor = ancestor.Parent()
	}

	return best
}

func sameNode(a, b *goquery.Selection) bool {
	return a.Length() > 0 && b.Length() > 0 && a.Get(0) == b.Get(0)
}

func isDescendant(ancestor, node *goquery.Selection) bool {
	if ancestor.Length() == 0 || node.Length() == 0 {
		return false
	}
	target := ancestor.Get(0)
	for n := node.Get(0).Parent; n != nil; n = n.Parent {
		if n == target {
			return true
		}
	}
	return false
}
