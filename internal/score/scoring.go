// Package score implements the node scorer (C6): it assigns a content
// score to block ancestors of paragraph-like elements, so the selector
// (internal/candidate) can pick the article root.
package score

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fernlight/readably/internal/dom"
)

type nodeState struct {
	score       float64
	isCandidate bool
}

// Scores is the per-element scoring state produced by Compute, keyed by
// node identity as spec §2's "Scoring state" note allows.
type Scores struct {
	states map[*html.Node]*nodeState
	order  []*html.Node
}

// Candidate pairs a scored element with its final score.
type Candidate struct {
	Node  *goquery.Selection
	Score float64
}

// Compute runs the per-paragraph scoring pass of spec §4.6 over doc and
// returns the resulting scoring state. Grounded on the teacher's
// pkg/utils/dom/scoring.go (scoreParagraph/addScore/addToParent), adapted
// from the teacher's own-node-plus-quarter-to-parent scheme to the
// multi-level ancestor propagation spec.md specifies.
func Compute(doc *goquery.Document) *Scores {
	s := &Scores{states: map[*html.Node]*nodeState{}}

	doc.Find("p, pre, td").Each(func(_ int, el *goquery.Selection) {
		text := dom.ExtractText(el, true)
		if len(text) < 25 {
			return
		}

		base := 1 + strings.Count(text, ",") + minInt(len(text)/100, 3)
		s.propagate(el, float64(base))
	})

	for _, node := range s.order {
		st := s.states[node]
		if !st.isCandidate {
			continue
		}
		sel := goquery.NewDocumentFromNode(node).Selection
		st.score *= 1 - LinkDensity(sel)
	}

	return s
}

func (s *Scores) propagate(el *goquery.Selection, base float64) {
	ancestor := el.Parent()
	for level := 1; level <= 5 && ancestor.Length() > 0; level++ {
		st := s.ensureSeeded(ancestor)

		var contribution float64
		switch level {
		case 1:
			contribution = base
		case 2:
			contribution = base / 2
		default:
			contribution = base / float64(level*3)
		}
		st.score += contribution

		ancestor = ancestor.Parent()
	}
}

func (s *Scores) ensureSeeded(el *goquery.Selection) *nodeState {
	node := el.Get(0)
	if st, ok := s.states[node]; ok {
		return st
	}

	tag := dom.TagName(el)
	st := &nodeState{
		score:       seedFor(tag) + classIDPenalty(el),
		isCandidate: true,
	}
	s.states[node] = st
	s.order = append(s.order, node)
	return st
}

// classIDPenalty implements the "add class/id penalty" half of spec §4.6's
// seeding rule, using the richer positive/negative/photo-hint tables of
// SPEC_FULL.md §C.
func classIDPenalty(el *goquery.Selection) float64 {
	classAndID := strings.TrimSpace(dom.AttrOr(el, "class", "") + " " + dom.AttrOr(el, "id", ""))
	if classAndID == "" {
		return 0
	}

	if entryContentAsset.MatchString(classAndID) {
		return classIDPenaltyWeight
	}

	var penalty float64
	if classIDNegative.MatchString(classAndID) {
		penalty -= classIDPenaltyWeight
	}
	if classIDPositive.MatchString(classAndID) {
		penalty += classIDPenaltyWeight
	}
	if photoHints.MatchString(classAndID) {
		penalty += photoHintBonus
	}
	return penalty
}

// LinkDensity is the sum of text-length of <a> descendants over the
// element's own total text-length, per spec §4.6; an element with no text
// has density 0. Exported for reuse by the sibling appender (C8) and
// cleaner (C9), which apply the same metric.
func LinkDensity(el *goquery.Selection) float64 {
	total := len(dom.ExtractText(el, false))
	if total == 0 {
		return 0
	}

	var linkLen int
	el.Find("a").Each(func(_ int, a *goquery.Selection) {
		linkLen += len(dom.ExtractText(a, false))
	})

	return float64(linkLen) / float64(total)
}

// Get returns el's final score and whether it was ever marked a candidate.
func (s *Scores) Get(el *goquery.Selection) (float64, bool) {
	if el == nil || el.Length() == 0 {
		return 0, false
	}
	st, ok := s.states[el.Get(0)]
	if !ok {
		return 0, false
	}
	return st.score, st.isCandidate
}

// Candidates returns every element marked is_candidate = true during
// Compute, in the order each was first seeded.
func (s *Scores) Candidates() []Candidate {
	out := make([]Candidate, 0, len(s.order))
	for _, node := range s.order {
		st := s.states[node]
		if !st.isCandidate {
			continue
		}
		out = append(out, Candidate{
			Node:  goquery.NewDocumentFromNode(node).Selection,
			Score: st.score,
		})
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
