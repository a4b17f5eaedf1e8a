package score_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight/readably/internal/score"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestShortParagraphsDoNotScore(t *testing.T) {
	doc := parse(t, `<html><body><div class="content"><p>too short</p></div></body></html>`)
	scores := score.Compute(doc)

	div := doc.Find("div.content")
	_, isCandidate := scores.Get(div)
	assert.False(t, isCandidate, "a paragraph under 25 chars should contribute nothing, leaving its parent unseeded")
}

func TestParagraphPropagatesToAncestors(t *testing.T) {
	text := strings.Repeat("word ", 20) + "with, some, commas, here"
	doc := parse(t, `<html><body><article><div class="content"><p>`+text+`</p></div></article></body></html>`)
	scores := score.Compute(doc)

	div := doc.Find("div.content")
	divScore, ok := scores.Get(div)
	require.True(t, ok)
	assert.Greater(t, divScore, 0.0)

	article := doc.Find("article")
	articleScore, ok := scores.Get(article)
	require.True(t, ok)
	assert.Greater(t, articleScore, 0.0)
	assert.Less(t, articleScore, divScore, "grandparent contribution should be smaller than parent's")
}

func TestPositiveClassBoostsSeed(t *testing.T) {
	text := strings.Repeat("word ", 20)
	doc := parse(t, `<html><body>
		<div class="article-content"><p>`+text+`</p></div>
		<div class="sidebar"><p>`+text+`</p></div>
	</body></html>`)
	scores := score.Compute(doc)

	good := doc.Find("div.article-content")
	bad := doc.Find("div.sidebar")

	goodScore, _ := scores.Get(good)
	badScore, _ := scores.Get(bad)
	assert.Greater(t, goodScore, badScore)
}

func TestLinkDensityReducesScore(t *testing.T) {
	plain := strings.Repeat("word ", 30)
	linky := `<a href="/a">` + strings.Repeat("word ", 30) + `</a>`

	doc := parse(t, `<html><body>
		<div class="content-a"><p>`+plain+`</p></div>
		<div class="content-b"><p>`+linky+`</p></div>
	</body></html>`)
	scores := score.Compute(doc)

	a := doc.Find("div.content-a")
	b := doc.Find("div.content-b")

	aScore, _ := scores.Get(a)
	bScore, _ := scores.Get(b)
	assert.Greater(t, aScore, bScore)
}

func TestCandidatesOnlyIncludesSeededElements(t *testing.T) {
	text := strings.Repeat("word ", 20)
	doc := parse(t, `<html><body><div><p>`+text+`</p></div></body></html>`)
	scores := score.Compute(doc)

	candidates := scores.Candidates()
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.NotEmpty(t, goquery.NodeName(c.Node))
	}
}
