package postprocess_test

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight/readably/internal/cleaners"
	"github.com/fernlight/readably/internal/postprocess"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRunInsertsFullBanner(t *testing.T) {
	doc := parse(t, `<html><body><article><p>body</p></article></body></html>`)
	top := doc.Find("article")

	lastMod := time.Date(2026, time.July, 31, 14, 5, 0, 0, time.UTC)
	meta := cleaners.TagMeta{
		Title:        "How Cats Can Save the Planet",
		Description:  "A deep dive",
		Author:       "Jane Doe",
		LastModified: &lastMod,
		Charset:      "utf-8",
	}

	html := postprocess.Run(top, meta)

	assert.True(t, strings.HasPrefix(html, `<meta charset="utf-8"/>`))
	assert.Contains(t, html, `id="article"`)
	assert.Contains(t, html, `class="title metadata"`)
	assert.Contains(t, html, "How Cats Can Save the Planet")
	assert.Contains(t, html, `class="subhead metadata"`)
	assert.Contains(t, html, "By Jane Doe")
	assert.Contains(t, html, `class="metadata date"`)
	assert.Contains(t, html, "Updated Jul. 31, 2026")
	assert.Contains(t, html, "<hr")
}

func TestRunOmitsHrWhenNoMetaFields(t *testing.T) {
	doc := parse(t, `<html><body><article><p>body</p></article></body></html>`)
	top := doc.Find("article")

	html := postprocess.Run(top, cleaners.TagMeta{})

	assert.NotContains(t, html, "<hr")
	assert.Contains(t, html, `id="article"`)
}

func TestRunOmitsMetaCharsetWhenAbsent(t *testing.T) {
	doc := parse(t, `<html><body><article><p>body</p></article></body></html>`)
	top := doc.Find("article")

	html := postprocess.Run(top, cleaners.TagMeta{Title: "T"})

	assert.False(t, strings.HasPrefix(html, "<meta charset"))
}
