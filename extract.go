package readably

import (
	"errors"

	"github.com/fernlight/readably/internal/candidate"
	"github.com/fernlight/readably/internal/cleaners"
	"github.com/fernlight/readably/internal/clean"
	"github.com/fernlight/readably/internal/dom"
	"github.com/fernlight/readably/internal/postprocess"
	"github.com/fernlight/readably/internal/preprocess"
	"github.com/fernlight/readably/internal/score"
)

// Extract is the core entry point of spec §6:
// extract(input_bytes, optional_url, features) -> Result<Product, Error>.
//
// input is the raw HTML byte stream (UTF-8 is assumed; callers fetching
// from the network should decode to UTF-8 first — see Client.Parse).
// rawURL, if empty or unparseable, defaults to https://example.com (spec
// §6). features enables/disables individual C9 cleaning rules by name; a
// value of 0 disables the corresponding rule, non-zero enables it, and
// unknown keys are ignored.
//
// The pipeline runs strictly sequentially, per spec §5: C3 metadata
// extraction, C2 title cleanup, C5 preprocessing, C6 scoring, C7
// selection, C8 sibling merge, C9 cleaning, C10 post-processing.
func Extract(input []byte, rawURL string, features map[string]int) (*Product, error) {
	if len(input) == 0 {
		return nil, &ExtractError{Code: ErrInvalidInput, Op: "Extract", URL: rawURL, Err: errEmptyInput}
	}

	doc, err := dom.Parse(input)
	if err != nil {
		return nil, &ExtractError{Code: ErrIO, Op: "Extract", URL: rawURL, Err: err}
	}

	meta := cleaners.ExtractMeta(doc)
	meta.Title = cleaners.CleanTitle(meta.Title, doc.Selection)

	preprocess.Run(doc)

	scores := score.Compute(doc)

	top, err := candidate.Select(scores)
	if err != nil {
		return nil, &ExtractError{Code: ErrNoCandidates, Op: "Extract", URL: rawURL, Err: err}
	}

	candidate.AppendSiblings(top, scores)

	clean.Run(top, meta.Title, scores, features, rawURL)

	content := postprocess.Run(top, meta)

	return &Product{
		Meta:    toResultMeta(meta),
		Content: content,
	}, nil
}

func toResultMeta(m cleaners.TagMeta) Meta {
	return Meta{
		Title:        m.Title,
		Author:       m.Author,
		Description:  m.Description,
		Charset:      m.Charset,
		LastModified: m.LastModified,
	}
}

var errEmptyInput = errors.New("empty input")
