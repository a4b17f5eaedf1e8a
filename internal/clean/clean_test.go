package clean_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight/readably/internal/clean"
	"github.com/fernlight/readably/internal/score"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRunRemovesFormsObjectsEmbedsIframes(t *testing.T) {
	doc := parse(t, `<html><body><article>
		<form><input></form>
		<object></object>
		<embed src="x">
		<iframe src="https://ads.example.com/frame"></iframe>
		<p>content</p>
	</article></body></html>`)

	article := doc.Find("article")
	scores := score.Compute(doc)
	clean.Run(article, "a title", scores, nil, "")

	assert.Equal(t, 0, article.Find("form").Length())
	assert.Equal(t, 0, article.Find("object").Length())
	assert.Equal(t, 0, article.Find("embed").Length())
	assert.Equal(t, 0, article.Find("iframe").Length())
}

func TestRunKeepsAllowListedIframeHost(t *testing.T) {
	doc := parse(t, `<html><body><article>
		<iframe src="https://www.youtube.com/embed/xyz"></iframe>
		<p>content</p>
	</article></body></html>`)

	article := doc.Find("article")
	scores := score.Compute(doc)
	features := map[string]int{"allow-iframe:www.youtube.com": 1}
	clean.Run(article, "a title", scores, features, "")

	assert.Equal(t, 1, article.Find("iframe").Length())
}

func TestRunRemovesDuplicateH1(t *testing.T) {
	title := "Cats Can Save The Planet"
	doc := parse(t, `<html><body><article>
		<h1>Cats Can Save The Planet</h1>
		<p>body text here.</p>
	</article></body></html>`)

	article := doc.Find("article")
	scores := score.Compute(doc)
	clean.Run(article, title, scores, nil, "")

	assert.Equal(t, 0, article.Find("h1").Length())
}

func TestRunKeepsMarkedElement(t *testing.T) {
	doc := parse(t, `<html><body><article>
		<form data-readably-keep="1"><input></form>
		<p>content</p>
	</article></body></html>`)

	article := doc.Find("article")
	scores := score.Compute(doc)
	features := map[string]int{"enable-keep-class": 1}
	clean.Run(article, "a title", scores, features, "")

	assert.Equal(t, 1, article.Find("form").Length())
}

func TestRunResolvesRelativeURLs(t *testing.T) {
	doc := parse(t, `<html><body><article>
		<img src="/images/a.jpg">
		<a href="relative/page.html">link</a>
		<p>content</p>
	</article></body></html>`)

	article := doc.Find("article")
	scores := score.Compute(doc)
	clean.Run(article, "a title", scores, nil, "https://news.example.com/story/1")

	img := article.Find("img")
	src, _ := img.Attr("src")
	assert.Equal(t, "https://news.example.com/images/a.jpg", src)

	a := article.Find("a")
	href, _ := a.Attr("href")
	assert.Equal(t, "https://news.example.com/story/relative/page.html", href)
}

func TestRunResolvesURLsAgainstDefaultBase(t *testing.T) {
	doc := parse(t, `<html><body><article><img src="/a.jpg"><p>x</p></article></body></html>`)
	article := doc.Find("article")
	scores := score.Compute(doc)
	clean.Run(article, "", scores, nil, "")

	img := article.Find("img")
	src, _ := img.Attr("src")
	assert.Equal(t, "https://example.com/a.jpg", src)
}
