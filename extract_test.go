package readably_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight/readably"
)

func TestExtractRejectsEmptyInput(t *testing.T) {
	_, err := readably.Extract(nil, "https://example.com", nil)
	require.Error(t, err)

	var extractErr *readably.ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.True(t, extractErr.IsInvalidInput())
}

func TestExtractReturnsNoCandidatesForContentlessDocument(t *testing.T) {
	html := `<html><head><title>Empty</title></head><body></body></html>`

	_, err := readably.Extract([]byte(html), "https://example.com", nil)
	require.Error(t, err)

	var extractErr *readably.ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.True(t, extractErr.IsNoCandidates())
}

func TestExtractFullArticlePipeline(t *testing.T) {
	html := `<html>
<head>
	<title>How Cats Can Save The Planet | Example News</title>
	<meta property="author" content="Jane Doe">
	<meta property="description" content="A deep dive into feline-led climate policy.">
	<meta charset="utf-8">
</head>
<body>
	<nav><ul><li><a href="/a">A</a></li><li><a href="/b">B</a></li></ul></nav>
	<article>
		<h1>How Cats Can Save The Planet</h1>
		<p>Cats have quietly been shaping environmental policy for decades, and few people outside the
		feline-advocacy community have noticed the scale of their influence on modern climate debate.</p>
		<p>This report walks through three separate case studies, each one illustrating a different way
		that household cats have nudged regulators toward greener outcomes without a single headline.</p>
		<div class="ad-banner"><script>loadAd();</script></div>
		<p>By the end of the third case study, the pattern becomes impossible to ignore: every major
		policy shift traces back to a surprisingly well-organized network of very persuasive cats.</p>
	</article>
	<footer><p>Copyright notice and unrelated short boilerplate text.</p></footer>
</body>
</html>`

	product, err := readably.Extract([]byte(html), "https://news.example.com/cats", nil)
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, "Jane Doe", product.Meta.Author)
	assert.Contains(t, product.Meta.Description, "feline-led climate policy")
	assert.Contains(t, product.Content, "feline-advocacy community")
	assert.Contains(t, product.Content, "persuasive cats")
	assert.NotContains(t, product.Content, "loadAd")
}

func TestExtractPrefersJSONLDMetadataOverTags(t *testing.T) {
	html := `<html>
<head>
	<title>Fallback Title</title>
	<meta property="author" content="Tag Author">
	<script type="application/ld+json">
	{
		"@context": "https://schema.org",
		"@type": "NewsArticle",
		"headline": "The JSON-LD Headline",
		"author": {"@type": "Person", "name": "Structured Author"}
	}
	</script>
</head>
<body>
	<article>
		<p>This paragraph exists purely to give the scorer enough text content to treat this div as
		the winning candidate subtree during the selection phase of extraction.</p>
		<p>A second supporting paragraph keeps the link density low and the total character count
		comfortably above every cleaning threshold enforced later in the pipeline.</p>
	</article>
</body>
</html>`

	product, err := readably.Extract([]byte(html), "https://example.com/article", nil)
	require.NoError(t, err)
	assert.Equal(t, "Structured Author", product.Meta.Author)
}

func TestExtractDefaultsToExampleBaseWhenURLMissing(t *testing.T) {
	html := `<html><body><article>
		<p>A relative image link should resolve against the default base when no URL is supplied
		to the extractor, exercising the fallback path spec describes for missing URLs.</p>
		<p>A second paragraph pads out the content length so this subtree clears the candidate
		selection and conditional-cleaning thresholds reliably.</p>
		<img src="/cover.jpg">
	</article></body></html>`

	product, err := readably.Extract([]byte(html), "", nil)
	require.NoError(t, err)
	assert.Contains(t, product.Content, "https://example.com/cover.jpg")
}
