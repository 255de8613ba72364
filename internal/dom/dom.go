// Package dom is the small slice of a page's document model the page routines need.
//
// Routines receive a Document and the Elements bound from it instead of reaching
// for globals, so they can run against the real HTML tree (htmldoc) or an
// in-memory fake (domtest).
package dom

// Document resolves and creates elements.
type Document interface {
	// ElementByID returns the element with the given id attribute.
	ElementByID(id string) (Element, bool)
	// CreateElement returns a detached element with the given tag name.
	CreateElement(tag string) Element
}

// Element is a node that can hold text, attributes, and child elements.
type Element interface {
	Tag() string
	Text() string
	// SetText replaces all children with a single text node.
	SetText(text string)
	Attr(key string) (string, bool)
	SetAttr(key, value string)
	RemoveAttr(key string)
	AppendChild(child Element)
	ClearChildren()
	Children() []Element
	Hidden() bool
	SetHidden(hidden bool)
}
