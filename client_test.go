package readably_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight/readably"
)

func TestNewAppliesOptions(t *testing.T) {
	client := readably.New(
		readably.WithUserAgent("testagent/1.0"),
		readably.WithTimeout(5*time.Second),
	)
	require.NotNil(t, client)
}

func TestParseHTMLReturnsProduct(t *testing.T) {
	client := readably.New()

	html := `<html><head><title>Sample Article</title></head><body>
		<article>
			<p>This is the first paragraph of a reasonably long article body, written to score well above the noise floor that the extractor uses to discard boilerplate text nodes during candidate selection.</p>
			<p>This is the second paragraph, continuing the same thought with enough additional sentences to keep the link density low and the overall content length comfortably past the cleaning thresholds.</p>
		</article>
	</body></html>`

	product, err := client.ParseHTML(context.Background(), html, "https://example.com/article")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Contains(t, product.Content, "first paragraph")
}

func TestParseHTMLRejectsEmptyURL(t *testing.T) {
	client := readably.New()

	_, err := client.ParseHTML(context.Background(), "<html></html>", "")
	require.Error(t, err)

	var extractErr *readably.ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.True(t, extractErr.IsInvalidInput())
}

func TestParseHTMLRejectsEmptyHTML(t *testing.T) {
	client := readably.New()

	_, err := client.ParseHTML(context.Background(), "", "https://example.com")
	require.Error(t, err)

	var extractErr *readably.ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.True(t, extractErr.IsInvalidInput())
}

func TestParseFetchesAndExtracts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Served Article</title></head><body>
			<article>
				<p>The server returned this paragraph, which needs to be long enough in characters and sentence structure to clear the scoring thresholds used by the candidate selector during extraction.</p>
				<p>A second paragraph follows, repeating the same pattern so the combined text comfortably exceeds the minimum content length the cleaner enforces before it will keep a conditionally cleaned element.</p>
			</article>
		</body></html>`))
	}))
	defer server.Close()

	client := readably.New(readably.WithAllowPrivateNetworks(true))

	product, err := client.Parse(context.Background(), server.URL)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Contains(t, product.Content, "server returned this paragraph")
}

func TestParseRejectsPrivateNetworkByDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><article><p>blocked</p></article></body></html>`))
	}))
	defer server.Close()

	client := readably.New()

	_, err := client.Parse(context.Background(), server.URL)
	require.Error(t, err)

	var extractErr *readably.ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.True(t, extractErr.IsInvalidInput())
}

func TestClientImplementsParserInterface(t *testing.T) {
	var _ readably.Parser = readably.New()
}
