package xbrl

import (
	"strings"

	"github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/pkg/qname"
)

// Context is an xbrli:context element: the entity, period and optional
// dimensional reference shared by item facts through contextRef.
type Context struct {
	elem
	id string
}

func newContext(base elem) (*Context, error) {
	id := base.node.GetAttribute("id")
	if id == "" {
		return nil, structuralf(errors.ErrMalformedElement, base.node, "context without id attribute")
	}
	ctx := &Context{elem: base, id: id}
	if _, ok := FirstChildOf[*Entity](ctx); !ok {
		return nil, structuralf(errors.ErrMalformedElement, base.node, "context %s without entity child", id)
	}
	if _, ok := FirstChildOf[Period](ctx); !ok {
		return nil, structuralf(errors.ErrMalformedElement, base.node, "context %s without period child", id)
	}
	return ctx, nil
}

// ID returns the context identifier referenced by contextRef attributes.
func (c *Context) ID() string { return c.id }

// Entity returns the context's entity child.
func (c *Context) Entity() *Entity {
	entity, _ := FirstChildOf[*Entity](c)
	return entity
}

// Period returns the context's period child.
func (c *Context) Period() Period {
	period, _ := FirstChildOf[Period](c)
	return period
}

// Segment returns the entity's segment, or nil if absent.
func (c *Context) Segment() *Segment {
	if entity := c.Entity(); entity != nil {
		if segment, ok := FirstChildOf[*Segment](entity); ok {
			return segment
		}
	}
	return nil
}

// Scenario returns the context's scenario, or nil if absent.
func (c *Context) Scenario() *Scenario {
	scenario, _ := FirstChildOf[*Scenario](c)
	return scenario
}

// ExplicitDimensionMembers collects the explicit dimension members from the
// segment and scenario as a dimension-to-member mapping. When a context
// pathologically repeats a dimension the last member in document order wins.
func (c *Context) ExplicitDimensionMembers() map[qname.QName]qname.QName {
	members := make(map[qname.QName]qname.QName)
	for _, member := range DescendantsOf[*ExplicitMember](c) {
		members[member.Dimension()] = member.Member()
	}
	return members
}

// TypedDimensions returns the dimension names of the typed members in the
// segment and scenario. Typed member content is not interpreted.
func (c *Context) TypedDimensions() []qname.QName {
	var dims []qname.QName
	for _, member := range DescendantsOf[*TypedMember](c) {
		dims = append(dims, member.Dimension())
	}
	return dims
}

// Entity is an xbrli:entity element.
type Entity struct {
	elem
}

func newEntity(base elem) (*Entity, error) {
	entity := &Entity{elem: base}
	if _, ok := FirstChildOf[*Identifier](entity); !ok {
		return nil, structuralf(errors.ErrMalformedElement, base.node, "entity without identifier child")
	}
	return entity, nil
}

// Identifier returns the entity's identifier child.
func (e *Entity) Identifier() *Identifier {
	identifier, _ := FirstChildOf[*Identifier](e)
	return identifier
}

// Identifier is an xbrli:identifier element naming an entity within a scheme.
type Identifier struct {
	elem
	scheme string
}

func newIdentifier(base elem) (*Identifier, error) {
	scheme := base.node.GetAttribute("scheme")
	if scheme == "" {
		return nil, structuralf(errors.ErrMalformedElement, base.node, "identifier without scheme attribute")
	}
	return &Identifier{elem: base, scheme: scheme}, nil
}

// Scheme returns the identifier scheme URI.
func (i *Identifier) Scheme() string { return i.scheme }

// Value returns the identifier value with surrounding whitespace trimmed.
func (i *Identifier) Value() string { return strings.TrimSpace(i.Text()) }

// Period is an xbrli:period element. Exactly one of the three concrete
// variants holds for every classified period: InstantPeriod,
// StartEndDatePeriod or ForeverPeriod.
type Period interface {
	Elem
	IsInstant() bool
	IsStartEndDate() bool
	IsForever() bool

	isPeriod()
}

type periodElem struct {
	elem
}

func (p *periodElem) isPeriod() {}

func (p *periodElem) childText(local string) string {
	for _, child := range p.children {
		if child.Name().Local == local {
			return strings.TrimSpace(child.Text())
		}
	}
	return ""
}

// InstantPeriod is a period with a single instant child.
type InstantPeriod struct {
	periodElem
}

func (p *InstantPeriod) IsInstant() bool      { return true }
func (p *InstantPeriod) IsStartEndDate() bool { return false }
func (p *InstantPeriod) IsForever() bool      { return false }

// Instant returns the lexical instant value.
func (p *InstantPeriod) Instant() string { return p.childText("instant") }

// StartEndDatePeriod is a period with startDate and endDate children.
type StartEndDatePeriod struct {
	periodElem
}

func (p *StartEndDatePeriod) IsInstant() bool      { return false }
func (p *StartEndDatePeriod) IsStartEndDate() bool { return true }
func (p *StartEndDatePeriod) IsForever() bool      { return false }

// StartDate returns the lexical start date value.
func (p *StartEndDatePeriod) StartDate() string { return p.childText("startDate") }

// EndDate returns the lexical end date value.
func (p *StartEndDatePeriod) EndDate() string { return p.childText("endDate") }

// ForeverPeriod is a period with a forever child.
type ForeverPeriod struct {
	periodElem
}

func (p *ForeverPeriod) IsInstant() bool      { return false }
func (p *ForeverPeriod) IsStartEndDate() bool { return false }
func (p *ForeverPeriod) IsForever() bool      { return true }

func newPeriod(base elem) (Period, error) {
	var hasInstant, hasStart, hasEnd, hasForever bool
	for _, child := range base.children {
		if child.Name().Namespace != xbrliNamespace {
			continue
		}
		switch child.Name().Local {
		case "instant":
			hasInstant = true
		case "startDate":
			hasStart = true
		case "endDate":
			hasEnd = true
		case "forever":
			hasForever = true
		}
	}
	switch {
	case hasInstant && !hasStart && !hasEnd && !hasForever:
		return &InstantPeriod{periodElem{elem: base}}, nil
	case hasStart && hasEnd && !hasInstant && !hasForever:
		return &StartEndDatePeriod{periodElem{elem: base}}, nil
	case hasForever && !hasInstant && !hasStart && !hasEnd:
		return &ForeverPeriod{periodElem{elem: base}}, nil
	}
	return nil, structuralf(errors.ErrMalformedPeriod, base.node,
		"period must contain exactly one of instant, startDate/endDate, or forever")
}

// Segment is an xbrli:segment element; it may contain dimensional members.
type Segment struct {
	elem
}

// ExplicitMembers returns the explicit dimension members directly under the
// segment, in document order.
func (s *Segment) ExplicitMembers() []*ExplicitMember {
	return ChildrenOf[*ExplicitMember](s)
}

// TypedMembers returns the typed dimension members directly under the
// segment, in document order.
func (s *Segment) TypedMembers() []*TypedMember {
	return ChildrenOf[*TypedMember](s)
}

// Scenario is an xbrli:scenario element; it may contain dimensional members.
type Scenario struct {
	elem
}

// ExplicitMembers returns the explicit dimension members directly under the
// scenario, in document order.
func (s *Scenario) ExplicitMembers() []*ExplicitMember {
	return ChildrenOf[*ExplicitMember](s)
}

// TypedMembers returns the typed dimension members directly under the
// scenario, in document order.
func (s *Scenario) TypedMembers() []*TypedMember {
	return ChildrenOf[*TypedMember](s)
}

// ExplicitMember is an xbrldi:explicitMember element: a dimension attribute
// plus a QName-valued member in the element text, both resolved against the
// element's own namespace scope at classification time.
type ExplicitMember struct {
	elem
	dimension qname.QName
	member    qname.QName
}

func newExplicitMember(base elem) (*ExplicitMember, error) {
	dimension, err := resolveQNameAttr(base.node, "dimension")
	if err != nil {
		return nil, err
	}
	member, err := qname.Resolve(base.node.TextContent(), base.node.Scope())
	if err != nil {
		return nil, structuralf(errors.ErrUnboundPrefix, base.node, "explicitMember member value: %v", err)
	}
	return &ExplicitMember{elem: base, dimension: dimension, member: member}, nil
}

// Dimension returns the resolved dimension name.
func (m *ExplicitMember) Dimension() qname.QName { return m.dimension }

// Member returns the resolved member name.
func (m *ExplicitMember) Member() qname.QName { return m.member }

// TypedMember is an xbrldi:typedMember element. Only the dimension name is
// interpreted; the typed content stays available through the generic element.
type TypedMember struct {
	elem
	dimension qname.QName
}

func newTypedMember(base elem) (*TypedMember, error) {
	dimension, err := resolveQNameAttr(base.node, "dimension")
	if err != nil {
		return nil, err
	}
	return &TypedMember{elem: base, dimension: dimension}, nil
}

// Dimension returns the resolved dimension name.
func (m *TypedMember) Dimension() qname.QName { return m.dimension }
