package preprocess_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight/readably/internal/preprocess"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRunStripsScriptStyleAndComments(t *testing.T) {
	doc := parse(t, `<html><body>
		<script>alert(1)</script>
		<style>body{color:red}</style>
		<link rel="stylesheet" href="a.css">
		<!-- a comment -->
		<p>content</p>
	</body></html>`)

	preprocess.Run(doc)

	html, err := doc.Html()
	require.NoError(t, err)
	assert.NotContains(t, html, "alert(1)")
	assert.NotContains(t, html, "color:red")
	assert.NotContains(t, html, "stylesheet")
	assert.NotContains(t, html, "a comment")
	assert.Contains(t, html, "content")
}

func TestUnwrapNoscriptImageDedupsPrecedingSibling(t *testing.T) {
	doc := parse(t, `<html><body>
		<img src="real.jpg" class="lazyload">
		<noscript><img src="real.jpg"></noscript>
	</body></html>`)

	preprocess.Run(doc)

	html, err := doc.Html()
	require.NoError(t, err)
	assert.NotContains(t, html, "lazyload")
	assert.Contains(t, html, "real.jpg")
	assert.NotContains(t, html, "noscript")
}

func TestUnwrapNoscriptImageThroughTransparentWrapper(t *testing.T) {
	doc := parse(t, `<html><body>
		<noscript><figure><img src="real.jpg"></figure></noscript>
	</body></html>`)

	preprocess.Run(doc)

	html, err := doc.Html()
	require.NoError(t, err)
	assert.Contains(t, html, "real.jpg")
	assert.NotContains(t, html, "noscript")
}

func TestNoscriptWithoutSingleImageIsDropped(t *testing.T) {
	doc := parse(t, `<html><body>
		<noscript><p>enable javascript</p></noscript>
		<p>content</p>
	</body></html>`)

	preprocess.Run(doc)

	html, err := doc.Html()
	require.NoError(t, err)
	assert.NotContains(t, html, "enable javascript")
	assert.Contains(t, html, "content")
}

func TestRewriteSingleParagraphDiv(t *testing.T) {
	doc := parse(t, `<html><body><div class="wrap"> <p>hello world</p> </div></body></html>`)

	preprocess.Run(doc)

	sel := doc.Find("div.wrap")
	assert.Equal(t, 0, sel.Length())
	p := doc.Find("p")
	require.Equal(t, 1, p.Length())
	assert.Equal(t, "hello world", strings.TrimSpace(p.Text()))
}

func TestRewritePhrasingOnlyDivToParagraph(t *testing.T) {
	doc := parse(t, `<html><body><div>Some <b>bold</b> text<br><br></div></body></html>`)

	preprocess.Run(doc)

	assert.Equal(t, 0, doc.Find("div").Length())
	p := doc.Find("p")
	require.Equal(t, 1, p.Length())
	assert.Equal(t, "Some bold text", p.Text())
	html, err := p.Html()
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(strings.TrimSpace(html), "<br/>"))
}

func TestPhrasingOnlyDivIsUntouchedWhenBlockChildPresent(t *testing.T) {
	doc := parse(t, `<html><body><div>text<div>nested block</div></div></body></html>`)

	preprocess.Run(doc)

	assert.True(t, doc.Find("div").Length() > 0)
}

func TestBrChainBecomesParagraphBoundary(t *testing.T) {
	doc := parse(t, `<html><body><div>First part<br><br>Second part<p>already a paragraph</p></div></body></html>`)

	preprocess.Run(doc)

	html, err := doc.Html()
	require.NoError(t, err)
	assert.Contains(t, html, "Second part")
	paragraphs := doc.Find("p")
	found := false
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		if strings.Contains(p.Text(), "Second part") {
			found = true
		}
	})
	assert.True(t, found, "expected a <p> containing the post-br-chain content")
}

func TestSingleBrIsNotTreatedAsChain(t *testing.T) {
	doc := parse(t, `<html><body><p>line one<br>line two</p></body></html>`)

	preprocess.Run(doc)

	html, err := doc.Html()
	require.NoError(t, err)
	assert.Contains(t, html, "line one")
	assert.Contains(t, html, "line two")
	assert.Contains(t, html, "<br/>")
}

func TestRunIsIdempotent(t *testing.T) {
	doc := parse(t, `<html><body>
		<script>x()</script>
		<div><p>only child</p></div>
		<div>phrasing <i>text</i><br><br></div>
		<p>a<br><br>b</p>
	</body></html>`)

	preprocess.Run(doc)
	first, err := doc.Html()
	require.NoError(t, err)

	preprocess.Run(doc)
	second, err := doc.Html()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
