package score

import "regexp"

// tagSeed is the tag-dependent seed an ancestor gets the first time it
// receives any score, per spec §4.6. Grounded on the teacher's scoreNode
// (pkg/utils/dom/scoring.go) tag-type switch, narrowed to the ancestor-seed
// semantics spec.md describes rather than the teacher's own per-node score.
var tagSeed = map[string]float64{
	"div":       5,
	"section":   0,
	"article":   0,
	"blockquote": 0,
	"pre":       0,
	"td":        0,
	"form":      -3,
	"ol":        -3,
	"ul":        -3,
	"dl":        -3,
	"dd":        -3,
	"dt":        -3,
	"li":        -3,
	"address":   -3,
	"th":        -5,
	"h1":        -5,
	"h2":        -5,
	"h3":        -5,
	"h4":        -5,
	"h5":        -5,
	"h6":        -5,
}

func seedFor(tag string) float64 {
	if s, ok := tagSeed[tag]; ok {
		return s
	}
	return 0
}

// paragraphTags are the elements that contribute the per-paragraph score in
// spec §4.6: <p>, <pre>, <td>, and phrasing-only <div> (the last already
// rewritten to <p> by the preprocessor, so in practice this set is checked
// post-preprocessing).
var paragraphTags = map[string]bool{
	"p": true, "pre": true, "td": true,
}

// classIDPositive and classIDNegative extend spec §4.6's "etc." with the
// richer table from SPEC_FULL.md §C, grounded on the teacher's
// POSITIVE_SCORE_RE/NEGATIVE_SCORE_RE (internal/utils/dom/constants.go).
var classIDPositive = regexp.MustCompile(`(?i)article|articlecontent|instapaper_body|blog|body|content|entry-content-asset|entry|hentry|main|page|pagination|permalink|post|story|text`)

var classIDNegative = regexp.MustCompile(`(?i)adbox|advert|author|bio|bookmark|bottom|byline|clear|combx|comment|contact|copy|credit|crumb|date|deck|disqus|excerpt|extra|featured|foot|footer|footnote|graf|head|info|infotext|instapaper_ignore|jump|linebreak|link|masthead|media|menu|meta|modal|outbrain|promo|related|respond|scroll|secondary|share|shopping|shoutbox|side|sidebar|sponsor|stamp|sub|summary|tags|tools|widget`)

// photoHints carries a bonus for figure/caption-style containers, per
// SPEC_FULL.md §C, grounded on the teacher's PHOTO_HINTS_RE.
var photoHints = regexp.MustCompile(`(?i)figure|photo|image|caption`)

// entryContentAsset is carved out of the positive/negative tables the way
// the teacher's READABILITY_ASSET regex does: a class/id containing
// "entry-content-asset" gets the fixed bonus and is never penalized, even
// when other words in the same class/id match classIDNegative.
var entryContentAsset = regexp.MustCompile(`(?i)entry-content-asset`)

const (
	classIDPenaltyWeight = 25
	photoHintBonus       = 10
)
