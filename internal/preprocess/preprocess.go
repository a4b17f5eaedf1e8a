// Package preprocess implements the DOM preprocessor (C5): it strips
// non-content nodes and rewrites a handful of structural shapes so the
// scorer (internal/score) has a cleaner tree to work with.
package preprocess

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fernlight/readably/internal/dom"
)

// blockLevelTags mirrors the teacher's BLOCK_LEVEL_TAGS_RE
// (pkg/utils/dom/constants.go), used by the br-chain-to-paragraph rule to
// know where a trailing run of inline content ends.
var blockLevelTags = map[string]bool{
	"article": true, "aside": true, "blockquote": true, "body": true,
	"br": true, "button": true, "canvas": true, "caption": true, "col": true,
	"colgroup": true, "dd": true, "div": true, "dl": true, "dt": true,
	"embed": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hgroup": true,
	"hr": true, "li": true, "map": true, "object": true, "ol": true,
	"output": true, "p": true, "pre": true, "progress": true, "section": true,
	"table": true, "tbody": true, "textarea": true, "tfoot": true, "th": true,
	"thead": true, "tr": true, "ul": true, "video": true,
}

// phrasingInlineTags are the inline elements phrasing content may contain.
// No rule reads this set: the phrasing-only-div detection (rule 4) treats
// any element outside blockLevelTags as phrasing, and the noscript-image
// rule uses transparentWrapperTags.
var phrasingInlineTags = map[string]bool{
	"a": true, "span": true, "b": true, "i": true, "em": true,
	"strong": true, "br": true, "img": true, "small": true, "sub": true,
	"sup": true, "u": true, "s": true, "mark": true, "abbr": true,
	"cite": true, "q": true, "time": true, "code": true, "wbr": true,
}

// transparentWrapperTags are looked through when deciding whether a
// <noscript> contains "at most one <img>" (spec §9 Open Question: span,
// picture and figure wrappers are treated as transparent).
var transparentWrapperTags = map[string]bool{
	"span": true, "picture": true, "figure": true,
}

// Run applies the five preprocessing rules of spec §4.5, in order. It is
// idempotent on its own output: each rule only fires on shapes its
// predecessors leave behind, and running Run again finds nothing left to
// rewrite.
func Run(doc *goquery.Document) {
	stripNonContent(doc)
	unwrapNoscriptImages(doc)
	rewriteSingleParagraphDivs(doc)
	rewritePhrasingOnlyDivs(doc)
	brChainsToParagraphs(doc)
}

// stripNonContent removes script/style/link[rel=stylesheet] and comment
// nodes, and every <noscript> that does not wrap exactly one <img>. It runs
// before unwrapNoscriptImages, which then unwraps the <noscript> elements
// left standing. Grounded on the teacher's pkg/utils/dom/strip.go idiom.
func stripNonContent(doc *goquery.Document) {
	doc.Find("script, style").Remove()
	doc.Find(`link[rel="stylesheet"]`).Remove()

	removeComments(doc.Selection)

	// Strip non-image noscript blocks now and let unwrapNoscriptImages
	// operate on the survivors. The HTML parser keeps <noscript> content as
	// raw text, so that text is re-parsed into elements first.
	doc.Find("noscript").Each(func(_ int, n *goquery.Selection) {
		if n.Children().Length() == 0 {
			raw := n.Text()
			n.Empty()
			n.AppendSelection(dom.ParseInner(raw))
		}
		if !looksLikeSingleImageWrapper(n) {
			n.Remove()
		}
	})
}

func removeComments(root *goquery.Selection) {
	for _, node := range dom.Descendants(root) {
		if dom.IsComment(node) {
			node.Remove()
		}
	}
}

// looksLikeSingleImageWrapper reports whether n (a <noscript>) contains
// exactly one <img>, looking through span/picture/figure wrappers.
func looksLikeSingleImageWrapper(n *goquery.Selection) bool {
	imgs := n.Find("img")
	return imgs.Length() >= 1 && imgs.Length() <= 1 && onlyTransparentWrappersAndImg(n)
}

func onlyTransparentWrappersAndImg(n *goquery.Selection) bool {
	ok := true
	n.Contents().Each(func(_ int, c *goquery.Selection) {
		if dom.IsText(c) {
			return
		}
		tag := dom.TagName(c)
		if tag == "img" {
			return
		}
		if transparentWrapperTags[tag] {
			if !onlyTransparentWrappersAndImg(c) {
				ok = false
			}
			return
		}
		ok = false
	})
	return ok
}

// unwrapNoscriptImages implements spec §4.5 rule 2: for each <noscript>
// containing at most one <img> (possibly wrapped in transparent spans), if
// an adjacent preceding sibling is an <img> with the same src, delete that
// sibling; then replace the <noscript> with its single <img> child.
func unwrapNoscriptImages(doc *goquery.Document) {
	var noscripts []*goquery.Selection
	doc.Find("noscript").Each(func(_ int, n *goquery.Selection) {
		noscripts = append(noscripts, n)
	})

	for _, n := range noscripts {
		img := n.Find("img").First()
		if img.Length() == 0 {
			continue
		}
		src := dom.AttrOr(img, "src", "")

		prev := n.Prev()
		if dom.TagName(prev) == "img" && dom.AttrOr(prev, "src", "") == src {
			prev.Remove()
		}

		n.ReplaceWithSelection(img)
	}
}

// rewriteSingleParagraphDivs implements spec §4.5 rule 3: a <div> whose
// only element child is a single <p> (whitespace-only text siblings
// permitted) is replaced by that <p>.
func rewriteSingleParagraphDivs(doc *goquery.Document) {
	var divs []*goquery.Selection
	doc.Find("div").Each(func(_ int, d *goquery.Selection) {
		divs = append(divs, d)
	})

	for _, d := range divs {
		var onlyChild *goquery.Selection
		ok := true
		d.Contents().Each(func(_ int, c *goquery.Selection) {
			if dom.IsText(c) {
				if strings.TrimSpace(c.Text()) != "" {
					ok = false
				}
				return
			}
			if dom.TagName(c) != "p" || onlyChild != nil {
				ok = false
				return
			}
			onlyChild = c
		})
		if ok && onlyChild != nil {
			d.ReplaceWithSelection(onlyChild)
		}
	}
}

// rewritePhrasingOnlyDivs implements spec §4.5 rule 4: a <div> containing
// only phrasing content (text + inline elements, no block descendants) is
// renamed to <p>, dropping any trailing <br> chain.
func rewritePhrasingOnlyDivs(doc *goquery.Document) {
	var divs []*goquery.Selection
	doc.Find("div").Each(func(_ int, d *goquery.Selection) {
		divs = append(divs, d)
	})

	for _, d := range divs {
		if !isPhrasingOnly(d) {
			continue
		}
		p := dom.ConvertNodeTo(d, "p")
		trimTrailingBrChain(p)
	}
}

func isPhrasingOnly(node *goquery.Selection) bool {
	hasBlock := false
	node.Find("*").Each(func(_ int, el *goquery.Selection) {
		tag := dom.TagName(el)
		if blockLevelTags[tag] && tag != "br" {
			hasBlock = true
		}
	})
	return !hasBlock
}

func trimTrailingBrChain(p *goquery.Selection) {
	for {
		last := p.Contents().Last()
		if last.Length() == 0 {
			return
		}
		if dom.IsText(last) && strings.TrimSpace(last.Text()) == "" {
			last.Remove()
			continue
		}
		if dom.TagName(last) == "br" {
			last.Remove()
			continue
		}
		return
	}
}

// brChainsToParagraphs implements spec §4.5 rule 5: a run of two or more
// consecutive <br> elements terminates a paragraph; all phrasing content
// from after the chain up to the next chain or block element becomes a new
// <p>. Grounded on the teacher's pkg/utils/dom/brs.go BrsToPs/paragraphize.
func brChainsToParagraphs(doc *goquery.Document) {
	var brs []*goquery.Selection
	doc.Find("br").Each(func(_ int, b *goquery.Selection) {
		brs = append(brs, b)
	})

	collapsing := false
	for _, b := range brs {
		if b.Length() == 0 || b.Get(0).Parent == nil {
			continue
		}
		if nextIsBr(b) {
			collapsing = true
			b.Remove()
			continue
		}
		if collapsing {
			collapsing = false
			paragraphize(b)
		}
	}
}

func nextIsBr(b *goquery.Selection) bool {
	parent := b.Parent()
	if parent.Length() == 0 {
		return false
	}
	contents := parent.Contents()
	idx := -1
	contents.Each(func(i int, c *goquery.Selection) {
		if c.Get(0) == b.Get(0) {
			idx = i
		}
	})
	for i := idx + 1; i < contents.Length(); i++ {
		sib := contents.Eq(i)
		if dom.IsText(sib) && strings.TrimSpace(sib.Text()) == "" {
			continue
		}
		return dom.TagName(sib) == "br"
	}
	return false
}

// paragraphize turns the trailing <br> of a now-collapsed chain, plus all
// following inline content up to the next block element, into a new <p>
// inserted in its place.
func paragraphize(br *goquery.Selection) {
	parent := br.Parent()
	if parent.Length() == 0 {
		br.Remove()
		return
	}

	p := dom.CreateElement("p", "")
	dom.InsertBefore(br, p)

	contents := parent.Contents()
	idx := -1
	contents.Each(func(i int, c *goquery.Selection) {
		if c.Get(0) == br.Get(0) {
			idx = i
		}
	})

	var moved []*html.Node
	for i := idx + 1; i < contents.Length(); i++ {
		sib := contents.Eq(i)
		tag := dom.TagName(sib)
		if dom.IsElement(sib) && blockLevelTags[tag] {
			break
		}
		moved = append(moved, sib.Get(0))
	}

	pNode := p.Get(0)
	for _, n := range moved {
		n.Parent.RemoveChild(n)
		pNode.AppendChild(n)
	}

	br.Remove()
}
