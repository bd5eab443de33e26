package xmldom

import (
	"strings"

	"github.com/jacoelho/xbrl/pkg/qname"
)

// Attr exposes attribute name, namespace, and value.
type Attr struct {
	namespace string
	local     string
	value     string
}

func (a Attr) Name() qname.QName {
	return qname.New(a.namespace, a.local)
}

func (a Attr) NamespaceURI() string {
	return a.namespace
}

func (a Attr) LocalName() string {
	return a.local
}

func (a Attr) Value() string {
	return a.value
}

// Element is an immutable node in a parsed XML document tree.
// Elements are never modified after Parse returns; a changed document
// requires a fresh parse.
type Element struct {
	namespace    string
	local        string
	attrs        []Attr
	nsDecls      map[string]string
	children     []*Element
	parent       *Element
	text         string
	siblingIndex int
}

// NamespaceURI returns the element's namespace URI.
func (e *Element) NamespaceURI() string {
	return e.namespace
}

// LocalName returns the element's local name.
func (e *Element) LocalName() string {
	return e.local
}

// Name returns the element's resolved name.
func (e *Element) Name() qname.QName {
	return qname.New(e.namespace, e.local)
}

// Attributes returns a copy of the element attributes in document order.
func (e *Element) Attributes() []Attr {
	result := make([]Attr, len(e.attrs))
	copy(result, e.attrs)
	return result
}

// GetAttribute returns the value of an unqualified attribute name.
func (e *Element) GetAttribute(name string) string {
	for _, attr := range e.attrs {
		if attr.namespace == "" && attr.local == name {
			return attr.value
		}
	}
	return ""
}

// GetAttributeNS returns the value of a namespaced attribute.
func (e *Element) GetAttributeNS(ns, local string) string {
	for _, attr := range e.attrs {
		if attr.namespace == ns && attr.local == local {
			return attr.value
		}
	}
	return ""
}

// HasAttribute reports whether the element has an unqualified attribute name.
func (e *Element) HasAttribute(name string) bool {
	for _, attr := range e.attrs {
		if attr.namespace == "" && attr.local == name {
			return true
		}
	}
	return false
}

// HasAttributeNS reports whether the element has a namespaced attribute.
func (e *Element) HasAttributeNS(ns, local string) bool {
	for _, attr := range e.attrs {
		if attr.namespace == ns && attr.local == local {
			return true
		}
	}
	return false
}

// Children returns a copy of the child element slice in document order.
func (e *Element) Children() []*Element {
	result := make([]*Element, len(e.children))
	copy(result, e.children)
	return result
}

// Parent returns the parent element; nil for the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Root returns the document root element this element belongs to.
func (e *Element) Root() *Element {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// DirectTextContent returns only the text directly under the element.
func (e *Element) DirectTextContent() string {
	return e.text
}

// TextContent returns the concatenated text content of the element subtree.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.collectText(&sb)
	return sb.String()
}

func (e *Element) collectText(sb *strings.Builder) {
	sb.WriteString(e.text)
	for _, child := range e.children {
		child.collectText(sb)
	}
}

// Scope returns the in-scope namespace bindings for this element: prefix to
// namespace URI, with the empty key holding the default namespace binding.
// Inner declarations override outer ones.
func (e *Element) Scope() map[string]string {
	var chain []*Element
	for cur := e; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	scope := make(map[string]string)
	for i := len(chain) - 1; i >= 0; i-- {
		for prefix, namespace := range chain[i].nsDecls {
			scope[prefix] = namespace
		}
	}
	return scope
}

// Path returns the element's structural path from the document root.
func (e *Element) Path() Path {
	var depth int
	for cur := e; cur.parent != nil; cur = cur.parent {
		depth++
	}
	path := make(Path, depth)
	for cur := e; cur.parent != nil; cur = cur.parent {
		depth--
		path[depth] = PathStep{
			Namespace: cur.namespace,
			Local:     cur.local,
			Index:     cur.siblingIndex,
		}
	}
	return path
}
