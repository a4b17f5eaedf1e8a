// Package dom is a thin façade over goquery/x-net-html giving the rest of
// the extraction pipeline a small, stable set of tree operations:
// traversal, query, mutation, text extraction and serialization.
package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Parse parses a full HTML document from r-ish bytes into a goquery Document.
func Parse(input []byte) (*goquery.Document, error) {
	node, err := html.Parse(strings.NewReader(string(input)))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(node), nil
}

// ParseInner parses a detached fragment and returns it as a selection of
// its root-level nodes, for re-interpreting a string (e.g. a meta tag's
// content, or a raw title) as HTML rather than plain text.
func ParseInner(fragment string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return goquery.NewDocumentFromNode(nil).Selection
	}
	return doc.Find("body").Contents()
}

// Descendants returns every descendant node of root in document order,
// as a slice of single-node selections. Taking this snapshot up front lets
// callers mutate the tree afterwards without invalidating an in-flight walk.
func Descendants(root *goquery.Selection) []*goquery.Selection {
	var out []*goquery.Selection
	var walk func(*goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, child *goquery.Selection) {
			out = append(out, child)
			walk(child)
		})
	}
	walk(root)
	return out
}

// TagName returns the lowercased local element name, or "" for non-elements.
func TagName(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	node := s.Get(0)
	if node == nil || node.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(node.Data)
}

// IsElement reports whether the selection's first node is an element.
func IsElement(s *goquery.Selection) bool {
	return s != nil && s.Length() > 0 && s.Get(0).Type == html.ElementNode
}

// IsText reports whether the selection's first node is a text node.
func IsText(s *goquery.Selection) bool {
	return s != nil && s.Length() > 0 && s.Get(0).Type == html.TextNode
}

// IsComment reports whether the selection's first node is a comment node.
func IsComment(s *goquery.Selection) bool {
	return s != nil && s.Length() > 0 && s.Get(0).Type == html.CommentNode
}

// CreateElement builds a detached element node with the given tag and,
// optionally, a class attribute (pass "" to omit it).
func CreateElement(tag, class string) *goquery.Selection {
	markup := "<" + tag
	if class != "" {
		markup += ` class="` + class + `"`
	}
	markup += "></" + tag + ">"
	return ParseInner(markup)
}

// SetText sets the text content of an element, replacing its children.
func SetText(s *goquery.Selection, text string) {
	s.SetText(text)
}

// ExtractText returns the concatenation of descendant text of node,
// optionally trimming and collapsing internal whitespace.
func ExtractText(node *goquery.Selection, trim bool) string {
	text := node.Text()
	if !trim {
		return text
	}
	fields := strings.Fields(text)
	return strings.Join(fields, " ")
}

// Unwrap replaces node with its children, preserving their order.
func Unwrap(node *goquery.Selection) {
	contents := node.Contents()
	var nodes []*html.Node
	contents.Each(func(_ int, c *goquery.Selection) {
		nodes = append(nodes, c.Get(0))
	})
	parent := node.Get(0).Parent
	if parent == nil {
		return
	}
	for _, n := range nodes {
		node.Get(0).Parent.InsertBefore(n, node.Get(0))
	}
	parent.RemoveChild(node.Get(0))
}

// Wrap replaces node with a new element of tag wrapping node as its only child.
func Wrap(node *goquery.Selection, tag string) *goquery.Selection {
	wrapper := CreateElement(tag, "")
	wrapperNode := wrapper.Get(0)
	parent := node.Get(0).Parent
	if parent == nil {
		return wrapper
	}
	parent.InsertBefore(wrapperNode, node.Get(0))
	parent.RemoveChild(node.Get(0))
	wrapperNode.AppendChild(node.Get(0))
	return wrapper
}

// ConvertNodeTo renames node's tag in place by rebuilding it as newTag,
// moving its attributes and children across. Used for div->p style rewrites.
func ConvertNodeTo(node *goquery.Selection, newTag string) *goquery.Selection {
	oldNode := node.Get(0)
	newNode := &html.Node{
		Type: html.ElementNode,
		Data: newTag,
		Attr: oldNode.Attr,
	}
	parent := oldNode.Parent
	if parent != nil {
		parent.InsertBefore(newNode, oldNode)
	}
	for child := oldNode.FirstChild; child != nil; {
		next := child.NextSibling
		oldNode.RemoveChild(child)
		newNode.AppendChild(child)
		child = next
	}
	if parent != nil {
		parent.RemoveChild(oldNode)
	}
	return goquery.NewDocumentFromNode(newNode).Selection
}

// Serialize renders node and its descendants (including node itself) as HTML.
func Serialize(node *goquery.Selection) string {
	out, err := goquery.OuterHtml(node)
	if err != nil {
		return ""
	}
	return out
}

// Remove detaches node from its parent.
func Remove(node *goquery.Selection) {
	node.Remove()
}

// InsertBefore inserts newNode as the previous sibling of ref.
func InsertBefore(ref, newNode *goquery.Selection) {
	ref.BeforeSelection(newNode)
}

// PrependChild inserts newNode as the first child of parent.
func PrependChild(parent, newNode *goquery.Selection) {
	if parent.Contents().Length() == 0 {
		parent.AppendSelection(newNode)
		return
	}
	parent.Contents().First().BeforeSelection(newNode)
}
