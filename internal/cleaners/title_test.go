package cleaners_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight/readably/internal/cleaners"
)

func TestCleanTitleSeparator(t *testing.T) {
	got := cleaners.CleanTitle("Short Title | How Cats Can Save the Planet", nil)
	assert.Equal(t, "How Cats Can Save the Planet", got)
}

func TestCleanTitleTrailingDash(t *testing.T) {
	got := cleaners.CleanTitle(
		"House committee votes to approve bill that would grant DC statehood - CNNPolitics",
		nil,
	)
	assert.Equal(t, "House committee votes to approve bill that would grant DC statehood", got)
}

func TestCleanTitlePreservesColonWithMatchingHeading(t *testing.T) {
	title := "Watch Dogs: Legion Will Be Free To Play This Weekend"
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<html><body><h1>" + title + "</h1></body></html>",
	))
	require.NoError(t, err)

	got := cleaners.CleanTitle(title, doc.Selection)
	assert.Equal(t, title, got)
}

func TestCleanTitleColonNoHeading(t *testing.T) {
	title := "Editor's note: a very long preamble with plenty of words: the real headline here"
	got := cleaners.CleanTitle(title, nil)
	assert.Equal(t, "the real headline here", got)
}

func TestCleanTitleUnchanged(t *testing.T) {
	got := cleaners.CleanTitle("Just A Plain Title", nil)
	assert.Equal(t, "Just A Plain Title", got)
}
