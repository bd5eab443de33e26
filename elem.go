package xbrl

import (
	"github.com/jacoelho/xbrl/pkg/qname"
	"github.com/jacoelho/xbrl/pkg/xmldom"
)

// Elem is a typed XBRL instance element: a classified wrapper around one
// generic XML element plus its already-classified children. The variant set
// is closed; Classify is the only constructor. Typed trees are immutable and
// safe to share across concurrent readers.
type Elem interface {
	// GenericElem returns the wrapped generic element.
	GenericElem() *xmldom.Element
	// Name returns the element's resolved name.
	Name() qname.QName
	// Path returns the element's structural path from the document root.
	Path() xmldom.Path
	// Attrs returns the resolved attributes in document order.
	Attrs() []xmldom.Attr
	// Text returns the concatenated text content of the element subtree.
	Text() string
	// Scope returns the in-scope namespace bindings for this element.
	Scope() map[string]string
	// Children returns the classified child elements in document order.
	Children() []Elem

	isElem()
}

// elem carries the state shared by every typed variant.
type elem struct {
	node     *xmldom.Element
	children []Elem
}

func (e *elem) GenericElem() *xmldom.Element { return e.node }

func (e *elem) Name() qname.QName { return e.node.Name() }

func (e *elem) Path() xmldom.Path { return e.node.Path() }

func (e *elem) Attrs() []xmldom.Attr { return e.node.Attributes() }

func (e *elem) Text() string { return e.node.TextContent() }

func (e *elem) Scope() map[string]string { return e.node.Scope() }

func (e *elem) Children() []Elem {
	result := make([]Elem, len(e.children))
	copy(result, e.children)
	return result
}

func (e *elem) isElem() {}

// Equal reports whether two typed elements wrap the same generic element,
// identified by document root and structural path rather than by pointer.
func Equal(a, b Elem) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.GenericElem().Root() != b.GenericElem().Root() {
		return false
	}
	return a.Path().Equal(b.Path())
}

// Descendants returns all descendants of e in document order.
func Descendants(e Elem) []Elem {
	var result []Elem
	for _, child := range e.Children() {
		result = append(result, child)
		result = append(result, Descendants(child)...)
	}
	return result
}

// DescendantsOrSelf returns e followed by all its descendants in document
// order.
func DescendantsOrSelf(e Elem) []Elem {
	return append([]Elem{e}, Descendants(e)...)
}

// FilterDescendants returns all descendants of e satisfying pred, in
// document order.
func FilterDescendants(e Elem, pred func(Elem) bool) []Elem {
	var result []Elem
	for _, d := range Descendants(e) {
		if pred(d) {
			result = append(result, d)
		}
	}
	return result
}

// FindDescendant returns the first descendant of e satisfying pred in
// document order, short-circuiting once found.
func FindDescendant(e Elem, pred func(Elem) bool) (Elem, bool) {
	for _, child := range e.Children() {
		if pred(child) {
			return child, true
		}
		if found, ok := FindDescendant(child, pred); ok {
			return found, true
		}
	}
	return nil, false
}

// ChildrenOf returns the direct children of e that are of type T, in
// document order. Non-matching children are skipped, never an error.
func ChildrenOf[T Elem](e Elem) []T {
	var result []T
	for _, child := range e.Children() {
		if typed, ok := child.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

// FirstChildOf returns the first direct child of e that is of type T.
func FirstChildOf[T Elem](e Elem) (T, bool) {
	for _, child := range e.Children() {
		if typed, ok := child.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// DescendantsOf returns all descendants of e that are of type T, in
// document order.
func DescendantsOf[T Elem](e Elem) []T {
	var result []T
	for _, d := range Descendants(e) {
		if typed, ok := d.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

// FirstDescendantOf returns the first descendant of e that is of type T in
// document order, short-circuiting once found.
func FirstDescendantOf[T Elem](e Elem) (T, bool) {
	for _, child := range e.Children() {
		if typed, ok := child.(T); ok {
			return typed, true
		}
		if found, ok := FirstDescendantOf[T](child); ok {
			return found, true
		}
	}
	var zero T
	return zero, false
}
