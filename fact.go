package xbrl

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/internal/xmlnames"
	"github.com/jacoelho/xbrl/pkg/qname"
)

// Fact is a business fact in an instance document: an element in a
// non-reserved namespace whose ancestors below the instance root are all
// facts themselves. The concept name is the element's own resolved name.
type Fact interface {
	Elem
	// ConceptName returns the fact's concept: its resolved element name.
	ConceptName() qname.QName
	// ID returns the optional id attribute, used by footnote locators.
	ID() string
	// IsNil reports whether the fact carries xsi:nil.
	IsNil() bool
	// IsTopLevel reports whether the fact is a direct child of the
	// instance root, as opposed to nested inside a tuple.
	IsTopLevel() bool

	isFact()
}

// ItemFact is a fact with a context reference.
type ItemFact interface {
	Fact
	// ContextRef returns the referenced context id.
	ContextRef() string

	isItemFact()
}

// NumericItemFact is an item fact with a unit reference.
type NumericItemFact interface {
	ItemFact
	// UnitRef returns the referenced unit id.
	UnitRef() string

	isNumericItemFact()
}

type factElem struct {
	elem
}

func (f *factElem) ConceptName() qname.QName { return f.Name() }

func (f *factElem) ID() string { return f.node.GetAttribute("id") }

func (f *factElem) IsNil() bool {
	return isNilValue(f.node.GetAttributeNS(xmlnames.XSINamespace, "nil"))
}

func (f *factElem) IsTopLevel() bool { return len(f.node.Path()) == 1 }

func (f *factElem) isFact() {}

func isNilValue(v string) bool {
	return v == "true" || v == "1"
}

type itemFact struct {
	factElem
	contextRef string
}

func newItemFact(base elem) (itemFact, error) {
	contextRef := base.node.GetAttribute("contextRef")
	if contextRef == "" {
		return itemFact{}, structuralf(errors.ErrMalformedElement, base.node, "item fact without contextRef attribute")
	}
	return itemFact{factElem: factElem{elem: base}, contextRef: contextRef}, nil
}

func (f *itemFact) ContextRef() string { return f.contextRef }

func (f *itemFact) isItemFact() {}

type numericItem struct {
	itemFact
	unitRef string
}

func newNumericItem(base elem) (numericItem, error) {
	item, err := newItemFact(base)
	if err != nil {
		return numericItem{}, err
	}
	unitRef := base.node.GetAttribute("unitRef")
	if unitRef == "" {
		return numericItem{}, structuralf(errors.ErrMalformedElement, base.node, "numeric item fact without unitRef attribute")
	}
	return numericItem{itemFact: item, unitRef: unitRef}, nil
}

func (f *numericItem) UnitRef() string { return f.unitRef }

func (f *numericItem) isNumericItemFact() {}

// NonNumericItem is an item fact without a unit reference.
type NonNumericItem struct {
	itemFact
}

func newNonNumericItem(base elem) (*NonNumericItem, error) {
	item, err := newItemFact(base)
	if err != nil {
		return nil, err
	}
	return &NonNumericItem{itemFact: item}, nil
}

// Value returns the fact value with surrounding whitespace trimmed.
func (f *NonNumericItem) Value() string { return strings.TrimSpace(f.Text()) }

// NilNumericItem is a numeric item fact carrying xsi:nil.
type NilNumericItem struct {
	numericItem
}

func newNilNumericItem(base elem) (*NilNumericItem, error) {
	item, err := newNumericItem(base)
	if err != nil {
		return nil, err
	}
	if !item.IsNil() {
		return nil, structuralf(errors.ErrMalformedElement, base.node, "nil numeric item without xsi:nil")
	}
	return &NilNumericItem{numericItem: item}, nil
}

// FractionItem is a non-nil numeric item fact with exactly two children:
// a decimal-valued numerator and denominator.
type FractionItem struct {
	numericItem
	numerator   decimal.Decimal
	denominator decimal.Decimal
}

func newFractionItem(base elem) (*FractionItem, error) {
	item, err := newNumericItem(base)
	if err != nil {
		return nil, err
	}
	if len(base.children) != 2 {
		return nil, structuralf(errors.ErrMalformedElement, base.node,
			"fraction item must have exactly numerator and denominator children, got %d children", len(base.children))
	}
	numeratorText, denominatorText, ok := fractionParts(base)
	if !ok {
		return nil, structuralf(errors.ErrMalformedElement, base.node,
			"fraction item must have exactly numerator and denominator children")
	}
	numerator, err := decimal.NewFromString(strings.TrimSpace(numeratorText))
	if err != nil {
		return nil, structuralf(errors.ErrMalformedElement, base.node, "fraction numerator: %v", err)
	}
	denominator, err := decimal.NewFromString(strings.TrimSpace(denominatorText))
	if err != nil {
		return nil, structuralf(errors.ErrMalformedElement, base.node, "fraction denominator: %v", err)
	}
	return &FractionItem{numericItem: item, numerator: numerator, denominator: denominator}, nil
}

func fractionParts(base elem) (numerator, denominator string, ok bool) {
	var haveNumerator, haveDenominator bool
	for _, child := range base.children {
		switch child.Name().Local {
		case "numerator":
			numerator = child.Text()
			haveNumerator = true
		case "denominator":
			denominator = child.Text()
			haveDenominator = true
		}
	}
	return numerator, denominator, haveNumerator && haveDenominator
}

// Numerator returns the fraction numerator.
func (f *FractionItem) Numerator() decimal.Decimal { return f.numerator }

// Denominator returns the fraction denominator.
func (f *FractionItem) Denominator() decimal.Decimal { return f.denominator }

// NonFractionItem is a non-nil numeric item fact with an atomic value and
// optional precision or decimals attributes.
type NonFractionItem struct {
	numericItem
}

func newNonFractionItem(base elem) (*NonFractionItem, error) {
	item, err := newNumericItem(base)
	if err != nil {
		return nil, err
	}
	return &NonFractionItem{numericItem: item}, nil
}

// Precision returns the precision attribute and whether it is present.
func (f *NonFractionItem) Precision() (string, bool) {
	if f.node.HasAttribute("precision") {
		return f.node.GetAttribute("precision"), true
	}
	return "", false
}

// Decimals returns the decimals attribute and whether it is present.
func (f *NonFractionItem) Decimals() (string, bool) {
	if f.node.HasAttribute("decimals") {
		return f.node.GetAttribute("decimals"), true
	}
	return "", false
}

// RawValue returns the lexical fact value with surrounding whitespace
// trimmed.
func (f *NonFractionItem) RawValue() string { return strings.TrimSpace(f.Text()) }

// Value parses the fact value as a decimal.
func (f *NonFractionItem) Value() (decimal.Decimal, error) {
	return decimal.NewFromString(f.RawValue())
}

// Tuple is a fact without a context reference; it may recursively contain
// child facts.
type Tuple struct {
	factElem
}

func newTuple(base elem) *Tuple {
	return &Tuple{factElem: factElem{elem: base}}
}

// ChildFacts returns the direct child facts in document order.
func (t *Tuple) ChildFacts() []Fact {
	return ChildrenOf[Fact](t)
}

// AllFacts returns all facts nested under the tuple in document order.
func (t *Tuple) AllFacts() []Fact {
	return DescendantsOf[Fact](t)
}
