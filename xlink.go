package xbrl

import (
	"strings"

	"github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/internal/xmlnames"
)

// XLink type attribute values.
const (
	xlinkTypeSimple   = "simple"
	xlinkTypeExtended = "extended"
	xlinkTypeArc      = "arc"
	xlinkTypeLocator  = "locator"
	xlinkTypeResource = "resource"
)

// SimpleLink is the capability of elements carrying xlink:type="simple":
// a plain hyperlink with an href.
type SimpleLink interface {
	Elem
	// Href returns the raw xlink:href value.
	Href() string

	isSimpleLink()
}

// ExtendedLink is the capability of elements carrying xlink:type="extended".
// Its children are arcs, or locators and resources tagged with an
// xlink:label that arcs reference by name.
type ExtendedLink interface {
	Elem
	// Role returns the extended link role (ELR), the network grouping key.
	// Arc and labeled children inherit this role from their parent link.
	Role() string
	// Arcs returns the arc children in document order.
	Arcs() []Arc
	// LabeledChildren returns the locator and resource children in
	// document order.
	LabeledChildren() []Labeled
	// LabeledChildrenByLabel groups the locator and resource children by
	// xlink:label. Several children may legally share a label; the
	// grouping is one-to-many and preserves document order.
	LabeledChildrenByLabel() map[string][]Labeled

	isExtendedLink()
}

// Labeled is the capability shared by locators and resources: an xlink:label
// that arcs use for endpoint matching within one extended link.
type Labeled interface {
	Elem
	// XLinkLabel returns the xlink:label value.
	XLinkLabel() string
}

// Arc is the capability of elements carrying xlink:type="arc".
type Arc interface {
	Elem
	// From returns the source label.
	From() string
	// To returns the target label.
	To() string
	// Arcrole returns the xlink:arcrole value.
	Arcrole() string

	isArc()
}

// Locator is the capability of elements carrying xlink:type="locator".
type Locator interface {
	Labeled
	// Href returns the raw xlink:href value.
	Href() string

	isLocator()
}

// Resource is the capability of elements carrying xlink:type="resource".
type Resource interface {
	Labeled
	// Role returns the xlink:role value, empty if absent.
	Role() string

	isResource()
}

func xlinkAttr(base elem, local string) string {
	return base.node.GetAttributeNS(xmlnames.XLinkNamespace, local)
}

type simpleLink struct {
	elem
	href string
}

func newSimpleLink(base elem) (simpleLink, error) {
	href := xlinkAttr(base, "href")
	if href == "" {
		return simpleLink{}, structuralf(errors.ErrMalformedElement, base.node, "simple link without xlink:href attribute")
	}
	return simpleLink{elem: base, href: href}, nil
}

func (l *simpleLink) Href() string { return l.href }

func (l *simpleLink) isSimpleLink() {}

type extendedLink struct {
	elem
}

// Role returns the xlink:role value on the extended link.
func (l *extendedLink) Role() string { return xlinkAttr(l.elem, "role") }

func (l *extendedLink) Arcs() []Arc { return ChildrenOf[Arc](l) }

func (l *extendedLink) LabeledChildren() []Labeled { return ChildrenOf[Labeled](l) }

func (l *extendedLink) LabeledChildrenByLabel() map[string][]Labeled {
	byLabel := make(map[string][]Labeled)
	for _, child := range l.LabeledChildren() {
		byLabel[child.XLinkLabel()] = append(byLabel[child.XLinkLabel()], child)
	}
	return byLabel
}

func (l *extendedLink) isExtendedLink() {}

type arcElem struct {
	elem
	from string
	to   string
}

func newArcElem(base elem) (arcElem, error) {
	from := xlinkAttr(base, "from")
	to := xlinkAttr(base, "to")
	if from == "" || to == "" {
		return arcElem{}, structuralf(errors.ErrMalformedElement, base.node, "arc without xlink:from and xlink:to attributes")
	}
	return arcElem{elem: base, from: from, to: to}, nil
}

func (a *arcElem) From() string { return a.from }

func (a *arcElem) To() string { return a.to }

func (a *arcElem) Arcrole() string { return xlinkAttr(a.elem, "arcrole") }

func (a *arcElem) isArc() {}

type locatorElem struct {
	elem
	href  string
	label string
}

func newLocatorElem(base elem) (locatorElem, error) {
	href := xlinkAttr(base, "href")
	if href == "" {
		return locatorElem{}, structuralf(errors.ErrMalformedElement, base.node, "locator without xlink:href attribute")
	}
	label := xlinkAttr(base, "label")
	if label == "" {
		return locatorElem{}, structuralf(errors.ErrMalformedElement, base.node, "locator without xlink:label attribute")
	}
	return locatorElem{elem: base, href: href, label: label}, nil
}

func (l *locatorElem) Href() string { return l.href }

func (l *locatorElem) XLinkLabel() string { return l.label }

func (l *locatorElem) isLocator() {}

type resourceElem struct {
	elem
	label string
}

func newResourceElem(base elem) (resourceElem, error) {
	label := xlinkAttr(base, "label")
	if label == "" {
		return resourceElem{}, structuralf(errors.ErrMalformedElement, base.node, "resource without xlink:label attribute")
	}
	return resourceElem{elem: base, label: label}, nil
}

func (r *resourceElem) XLinkLabel() string { return r.label }

func (r *resourceElem) Role() string { return xlinkAttr(r.elem, "role") }

func (r *resourceElem) isResource() {}

// SchemaRef is a link:schemaRef simple link naming a taxonomy schema.
type SchemaRef struct {
	simpleLink
}

// LinkbaseRef is a link:linkbaseRef simple link naming a linkbase document.
type LinkbaseRef struct {
	simpleLink
}

// RoleRef is a link:roleRef simple link declaring a role URI used in the
// instance.
type RoleRef struct {
	simpleLink
}

// RoleURI returns the declared roleURI value.
func (r *RoleRef) RoleURI() string { return r.node.GetAttribute("roleURI") }

// ArcroleRef is a link:arcroleRef simple link declaring an arcrole URI used
// in the instance.
type ArcroleRef struct {
	simpleLink
}

// ArcroleURI returns the declared arcroleURI value.
func (r *ArcroleRef) ArcroleURI() string { return r.node.GetAttribute("arcroleURI") }

// FootnoteLink is a link:footnoteLink extended link relating facts to
// footnote resources.
type FootnoteLink struct {
	extendedLink
}

// FootnoteArc is a link:footnoteArc arc inside a footnote link.
type FootnoteArc struct {
	arcElem
}

// Footnote is a link:footnote resource holding footnote content.
type Footnote struct {
	resourceElem
}

// Lang returns the xml:lang value, empty if absent.
func (f *Footnote) Lang() string {
	return f.node.GetAttributeNS(xmlnames.XMLNamespace, "lang")
}

// Loc is a link:loc locator pointing at a fact or taxonomy element.
type Loc struct {
	locatorElem
}

// GenericLink is an extended link outside the set of specifically modeled
// link elements, classified by its xlink:type attribute alone.
type GenericLink struct {
	extendedLink
}

// GenericSimpleLink is a simple link classified by xlink:type alone.
type GenericSimpleLink struct {
	simpleLink
}

// GenericArc is an arc classified by xlink:type alone.
type GenericArc struct {
	arcElem
}

// GenericLocator is a locator classified by xlink:type alone.
type GenericLocator struct {
	locatorElem
}

// GenericResource is a resource classified by xlink:type alone.
type GenericResource struct {
	resourceElem
}

// ResolveArc looks up an arc's endpoint labels in its extended link. Labels
// may legally match several locators or resources; both endpoint slices
// preserve document order. A label with no match in the link is a dangling
// arc, reported as an error rather than dropped.
func ResolveArc(link ExtendedLink, arc Arc) (sources, targets []Labeled, err error) {
	byLabel := link.LabeledChildrenByLabel()
	sources = byLabel[arc.From()]
	targets = byLabel[arc.To()]
	var dangling []errors.Structural
	if len(sources) == 0 {
		dangling = append(dangling, errors.NewStructuralf(errors.ErrDanglingLabel, arc.Path().String(),
			"arc from label %q has no locator or resource in its extended link", arc.From()))
	}
	if len(targets) == 0 {
		dangling = append(dangling, errors.NewStructuralf(errors.ErrDanglingLabel, arc.Path().String(),
			"arc to label %q has no locator or resource in its extended link", arc.To()))
	}
	if len(dangling) > 0 {
		return nil, nil, errors.StructuralList(dangling)
	}
	return sources, targets, nil
}

// FootnotesForFact resolves the footnotes attached to a fact through this
// footnote link: locators whose href fragment names the fact's id, fanned
// out over shared labels to the footnote resources their arcs target.
func (l *FootnoteLink) FootnotesForFact(fact Fact) ([]*Footnote, error) {
	id := fact.ID()
	if id == "" {
		return nil, nil
	}
	factLabels := make(map[string]bool)
	for _, labeled := range l.LabeledChildren() {
		locator, ok := labeled.(Locator)
		if !ok {
			continue
		}
		if hrefFragment(locator.Href()) == id {
			factLabels[locator.XLinkLabel()] = true
		}
	}
	var footnotes []*Footnote
	for _, arc := range l.Arcs() {
		if !factLabels[arc.From()] {
			continue
		}
		_, targets, err := ResolveArc(l, arc)
		if err != nil {
			return nil, err
		}
		for _, target := range targets {
			if footnote, ok := target.(*Footnote); ok {
				footnotes = append(footnotes, footnote)
			}
		}
	}
	return footnotes, nil
}

func hrefFragment(href string) string {
	idx := strings.IndexByte(href, '#')
	if idx < 0 {
		return ""
	}
	return href[idx+1:]
}
