// Package postprocess implements the post-processor (C10): stamping the
// assembled article subtree with a metadata banner and serializing the
// final HTML fragment.
package postprocess

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/fernlight/readably/internal/cleaners"
	"github.com/fernlight/readably/internal/dom"
)

// dateLayout mirrors spec §4.10's `Updated %b. %d, %Y %H:%M %p` pattern:
// an abbreviated English month, a 24-hour clock, and a lowercase am/pm
// suffix together (Go's "pm" verb resolves correctly regardless of
// whether the hour verb used alongside it is 12- or 24-hour).
const dateLayout = "Jan. 02, 2006 15:04 pm"

// Run implements spec §4.10: set id="article" on top, prepend a metadata
// banner built from meta (title/description/author/date, each only if
// present, with a trailing <hr> if anything was emitted), then serialize
// top, prefixing a <meta charset> tag if meta.Charset is set.
func Run(top *goquery.Selection, meta cleaners.TagMeta) string {
	dom.SetAttr(top, "id", "article")

	var banner []*goquery.Selection

	if meta.Title != "" {
		h1 := dom.CreateElement("h1", "title metadata")
		dom.SetText(h1, meta.Title)
		banner = append(banner, h1)
	}
	if meta.Description != "" {
		p := dom.CreateElement("p", "subhead metadata")
		dom.SetText(p, meta.Description)
		banner = append(banner, p)
	}
	if meta.Author != "" {
		p := dom.CreateElement("p", "metadata")
		dom.SetText(p, "By "+meta.Author)
		banner = append(banner, p)
	}
	if meta.LastModified != nil {
		p := dom.CreateElement("p", "metadata date")
		dom.SetText(p, "Updated "+meta.LastModified.Format(dateLayout))
		banner = append(banner, p)
	}

	if len(banner) > 0 {
		banner = append(banner, dom.CreateElement("hr", ""))
	}

	for i := len(banner) - 1; i >= 0; i-- {
		dom.PrependChild(top, banner[i])
	}

	html := dom.Serialize(top)
	if meta.Charset != "" {
		html = `<meta charset="` + meta.Charset + `"/>` + html
	}
	return html
}
