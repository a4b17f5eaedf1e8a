package dom

import "github.com/PuerkitoBio/goquery"

// Attrs returns all attributes of node's first element as a map.
func Attrs(node *goquery.Selection) map[string]string {
	out := map[string]string{}
	if node == nil || node.Length() == 0 {
		return out
	}
	for _, attr := range node.Get(0).Attr {
		out[attr.Key] = attr.Val
	}
	return out
}

// Attr returns the named attribute's value and whether it was present.
func Attr(node *goquery.Selection, name string) (string, bool) {
	return node.Attr(name)
}

// AttrOr returns the named attribute's value, or fallback if absent.
func AttrOr(node *goquery.Selection, name, fallback string) string {
	return node.AttrOr(name, fallback)
}

// SetAttr sets an attribute on node.
func SetAttr(node *goquery.Selection, name, value string) {
	node.SetAttr(name, value)
}

// RemoveAttr removes an attribute from node.
func RemoveAttr(node *goquery.Selection, name string) {
	node.RemoveAttr(name)
}

// HasClass reports whether node carries the given class.
func HasClass(node *goquery.Selection, class string) bool {
	return node.HasClass(class)
}
