// Package cleaners implements the title cleaner (C2), metadata extractor
// (C3) and JSON-LD parser (C4) of the extraction pipeline.
package cleaners

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-dateparser"

	"github.com/fernlight/readably/internal/dom"
)

// TagMeta mirrors the spec §3 Meta record. Title/Author/Description/
// Charset use "" as their absent sentinel, since the empty string is
// never itself a meaningful value for any of them; LastModified is a
// pointer instead, since the zero time.Time is a valid, distinguishable
// date and can't double as a sentinel for "absent".
type TagMeta struct {
	Title        string
	Author       string
	Description  string
	Charset      string
	LastModified *time.Time
}

// Merge implements spec §3's merge law: for each field of the receiver
// (the primary, i.e. JSON-LD-derived meta), keep it if present/non-empty,
// else take it from other (the secondary, tag-derived meta).
func (primary TagMeta) Merge(secondary TagMeta) TagMeta {
	result := primary
	if result.Title == "" {
		result.Title = secondary.Title
	}
	if result.Author == "" {
		result.Author = secondary.Author
	}
	if result.Description == "" {
		result.Description = secondary.Description
	}
	if result.Charset == "" {
		result.Charset = secondary.Charset
	}
	if result.LastModified == nil {
		result.LastModified = secondary.LastModified
	}
	return result
}

// ExtractMeta walks doc's meta/title/JSON-LD nodes and produces a TagMeta,
// per spec §4.3. Grounded on the teacher's
// pkg/extractors/generic/description.go priority-ordered meta-tag scan and
// pkg/cleaners/author.go's prefix-stripping author cleanup.
func ExtractMeta(doc *goquery.Document) TagMeta {
	jsonldMeta := extractJSONLDMeta(doc)
	tagMeta := extractTagMeta(doc)

	result := jsonldMeta.Merge(tagMeta)

	if result.Title == "" {
		if title := doc.Find("title").First(); title.Length() > 0 {
			result.Title = title.Text()
		}
	}

	if result.Title != "" {
		result.Title = decodeHTMLText(result.Title)
	}
	if result.Description != "" {
		result.Description = decodeHTMLText(result.Description)
	}

	return result
}

func extractJSONLDMeta(doc *goquery.Document) TagMeta {
	var meta TagMeta
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return true
		}
		parsed, err := ParseJSONLD(text)
		if err != nil {
			return true // keep looking at subsequent blocks
		}
		meta = parsed
		return false // stop at the first success
	})
	return meta
}

func extractTagMeta(doc *goquery.Document) TagMeta {
	var meta TagMeta
	doc.Find("meta").Each(func(_ int, m *goquery.Selection) {
		if property, ok := dom.Attr(m, "property"); ok {
			applyMetaProperty(&meta, property, dom.AttrOr(m, "content", ""))
			return
		}
		if charset, ok := dom.Attr(m, "charset"); ok && charset != "" {
			meta.Charset = charset
			return
		}
		if httpEquiv, ok := dom.Attr(m, "http-equiv"); ok && strings.EqualFold(httpEquiv, "content-type") {
			if charset := charsetFromContentType(dom.AttrOr(m, "content", "")); charset != "" {
				meta.Charset = charset
			}
		}
	})

	if meta.LastModified == nil {
		meta.LastModified = fallbackDate(doc)
	}

	return meta
}

func applyMetaProperty(meta *TagMeta, property, content string) {
	if content == "" {
		return
	}
	switch metaPropertyFields[strings.ToLower(property)] {
	case fieldTitle:
		if meta.Title == "" {
			meta.Title = content
		}
	case fieldDescription:
		if meta.Description == "" {
			meta.Description = truncateAtFirstSentence(content)
		}
	case fieldAuthor:
		if meta.Author == "" {
			meta.Author = content
		}
	}
}

// truncateAtFirstSentence truncates at the first ". ", keeping the prefix,
// per spec §4.3's description rule (and the Open Question in spec §9: the
// truncation happens on the raw, HTML-bearing content, before tag-strip).
func truncateAtFirstSentence(s string) string {
	if idx := strings.Index(s, ". "); idx != -1 {
		return s[:idx]
	}
	return s
}

func charsetFromContentType(content string) string {
	const marker = "charset="
	idx := strings.Index(strings.ToLower(content), marker)
	if idx == -1 {
		return ""
	}
	rest := content[idx+len(marker):]
	rest = strings.Trim(rest, `"' `)
	if end := strings.IndexAny(rest, "; \t"); end != -1 {
		rest = rest[:end]
	}
	return rest
}

// decodeHTMLText re-parses s as an HTML fragment and returns its decoded
// text, dropping stray tags and decoding entities, per spec §4.3.
func decodeHTMLText(s string) string {
	return dom.ExtractText(dom.ParseInner(s), true)
}

// fallbackDate looks for <meta property="article:modified_time"> and
// similar, human-readable tag-derived dates, and parses them with
// go-dateparser. JSON-LD's own date field stays strict RFC 3339 per
// spec §4.4; this only supplements the tag-derived half of the merge,
// per SPEC_FULL.md §B.
func fallbackDate(doc *goquery.Document) *time.Time {
	candidates := []string{
		`meta[property="article:modified_time"]`,
		`meta[property="og:updated_time"]`,
		`meta[name="last-modified"]`,
		`time[datetime]`,
	}
	for _, sel := range candidates {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		raw := dom.AttrOr(node, "content", "")
		if raw == "" {
			raw = dom.AttrOr(node, "datetime", "")
		}
		if raw == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return &t
		}
		cfg := &dateparser.Configuration{CurrentTime: time.Now(), StrictParsing: false}
		if parsed, err := dateparser.Parse(cfg, raw); err == nil {
			return &parsed.Time
		}
	}
	return nil
}
