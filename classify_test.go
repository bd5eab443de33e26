package xbrl

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	xbrlerrors "github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/pkg/qname"
)

const sampleInstance = `<?xml version="1.0"?>
<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance"
    xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink"
    xmlns:xbrldi="http://xbrl.org/2006/xbrldi"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xmlns:iso4217="http://www.xbrl.org/2003/iso4217"
    xmlns:gaap="http://example.com/gaap"
    xmlns:my="http://example.com/my">
  <link:schemaRef xlink:type="simple" xlink:href="gaap.xsd"/>
  <xbrli:context id="C1">
    <xbrli:entity>
      <xbrli:identifier scheme="http://example.com">E1</xbrli:identifier>
      <xbrli:segment>
        <xbrldi:explicitMember dimension="my:D1">my:M1</xbrldi:explicitMember>
        <xbrldi:explicitMember dimension="my:D2">my:M2</xbrldi:explicitMember>
      </xbrli:segment>
    </xbrli:entity>
    <xbrli:period>
      <xbrli:instant>2020-12-31</xbrli:instant>
    </xbrli:period>
  </xbrli:context>
  <xbrli:context id="C2">
    <xbrli:entity>
      <xbrli:identifier scheme="http://example.com">E1</xbrli:identifier>
    </xbrli:entity>
    <xbrli:period>
      <xbrli:startDate>2020-01-01</xbrli:startDate>
      <xbrli:endDate>2020-12-31</xbrli:endDate>
    </xbrli:period>
  </xbrli:context>
  <xbrli:unit id="U1">
    <xbrli:measure>iso4217:USD</xbrli:measure>
  </xbrli:unit>
  <gaap:Assets id="F1" contextRef="C1" unitRef="U1" decimals="0">100</gaap:Assets>
  <gaap:EntityName contextRef="C1">Acme</gaap:EntityName>
  <gaap:OwnershipRatio contextRef="C1" unitRef="U1">
    <xbrli:numerator>1</xbrli:numerator>
    <xbrli:denominator>3</xbrli:denominator>
  </gaap:OwnershipRatio>
  <gaap:Liabilities contextRef="C1" unitRef="U1" xsi:nil="true"/>
  <gaap:Ownership>
    <gaap:OwnerName contextRef="C2">Jane</gaap:OwnerName>
  </gaap:Ownership>
  <link:footnoteLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:href="#F1" xlink:label="L1"/>
    <link:footnote xlink:type="resource" xlink:label="L1" xml:lang="en">Audited figure</link:footnote>
    <link:footnoteArc xlink:type="arc" xlink:from="L1" xlink:to="L1"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/fact-footnote"/>
  </link:footnoteLink>
</xbrli:xbrl>`

const (
	gaapNS = "http://example.com/gaap"
	myNS   = "http://example.com/my"
)

func parseInstance(t *testing.T, doc string) *Instance {
	t.Helper()
	inst, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return inst
}

func topLevelItem(t *testing.T, inst *Instance, local string) ItemFact {
	t.Helper()
	items := inst.TopLevelItemsByName(qname.New(gaapNS, local))
	if len(items) != 1 {
		t.Fatalf("TopLevelItemsByName(%s) = %d items, want 1", local, len(items))
	}
	return items[0]
}

func TestClassifyVariants(t *testing.T) {
	inst := parseInstance(t, sampleInstance)

	if _, ok := topLevelItem(t, inst, "Assets").(*NonFractionItem); !ok {
		t.Fatal("Assets is not a NonFractionItem")
	}
	if _, ok := topLevelItem(t, inst, "EntityName").(*NonNumericItem); !ok {
		t.Fatal("EntityName is not a NonNumericItem")
	}
	if _, ok := topLevelItem(t, inst, "OwnershipRatio").(*FractionItem); !ok {
		t.Fatal("OwnershipRatio is not a FractionItem")
	}
	if _, ok := topLevelItem(t, inst, "Liabilities").(*NilNumericItem); !ok {
		t.Fatal("Liabilities is not a NilNumericItem")
	}
	tuples := inst.TopLevelTuplesByName(qname.New(gaapNS, "Ownership"))
	if len(tuples) != 1 {
		t.Fatalf("TopLevelTuplesByName(Ownership) = %d tuples, want 1", len(tuples))
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := parseInstance(t, sampleInstance)
	second := parseInstance(t, sampleInstance)

	firstElems := DescendantsOrSelf(first)
	secondElems := DescendantsOrSelf(second)
	if len(firstElems) != len(secondElems) {
		t.Fatalf("element counts differ: %d vs %d", len(firstElems), len(secondElems))
	}
	for i := range firstElems {
		if reflect.TypeOf(firstElems[i]) != reflect.TypeOf(secondElems[i]) {
			t.Fatalf("element %d classified as %T and %T", i, firstElems[i], secondElems[i])
		}
		if !firstElems[i].Path().Equal(secondElems[i].Path()) {
			t.Fatalf("element %d paths differ: %s vs %s", i, firstElems[i].Path(), secondElems[i].Path())
		}
	}
}

func TestTypedChildrenMirrorGenericChildren(t *testing.T) {
	inst := parseInstance(t, sampleInstance)
	for _, e := range DescendantsOrSelf(inst) {
		typed := e.Children()
		generic := e.GenericElem().Children()
		if len(typed) != len(generic) {
			t.Fatalf("%s: %d typed children, %d generic children", e.Path(), len(typed), len(generic))
		}
		for i := range typed {
			if typed[i].GenericElem() != generic[i] {
				t.Fatalf("%s: typed child %d wraps the wrong generic element", e.Path(), i)
			}
		}
	}
}

func TestFactProperties(t *testing.T) {
	inst := parseInstance(t, sampleInstance)

	assets := topLevelItem(t, inst, "Assets").(*NonFractionItem)
	if assets.ConceptName() != qname.New(gaapNS, "Assets") {
		t.Fatalf("ConceptName() = %v", assets.ConceptName())
	}
	if !assets.IsTopLevel() {
		t.Fatal("Assets IsTopLevel() = false, want true")
	}
	if assets.IsNil() {
		t.Fatal("Assets IsNil() = true, want false")
	}
	if assets.ContextRef() != "C1" || assets.UnitRef() != "U1" {
		t.Fatalf("Assets refs = (%s, %s), want (C1, U1)", assets.ContextRef(), assets.UnitRef())
	}
	if decimals, ok := assets.Decimals(); !ok || decimals != "0" {
		t.Fatalf("Decimals() = (%q, %v), want (0, true)", decimals, ok)
	}
	if _, ok := assets.Precision(); ok {
		t.Fatal("Precision() present, want absent")
	}
	value, err := assets.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if !value.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("Value() = %s, want 100", value)
	}

	ratio := topLevelItem(t, inst, "OwnershipRatio").(*FractionItem)
	if !ratio.Numerator().Equal(decimal.NewFromInt(1)) || !ratio.Denominator().Equal(decimal.NewFromInt(3)) {
		t.Fatalf("fraction = %s/%s, want 1/3", ratio.Numerator(), ratio.Denominator())
	}

	nested := inst.AllItems()
	var owner ItemFact
	for _, item := range nested {
		if item.ConceptName() == qname.New(gaapNS, "OwnerName") {
			owner = item
		}
	}
	if owner == nil {
		t.Fatal("nested OwnerName item not found")
	}
	if owner.IsTopLevel() {
		t.Fatal("nested item IsTopLevel() = true, want false")
	}
}

func TestPeriodExclusivity(t *testing.T) {
	inst := parseInstance(t, sampleInstance)
	periods := DescendantsOf[Period](inst)
	if len(periods) != 2 {
		t.Fatalf("found %d periods, want 2", len(periods))
	}
	for _, period := range periods {
		flags := 0
		for _, set := range []bool{period.IsInstant(), period.IsStartEndDate(), period.IsForever()} {
			if set {
				flags++
			}
		}
		if flags != 1 {
			t.Fatalf("period %s: %d kind flags set, want exactly 1", period.Path(), flags)
		}
	}
}

func TestClassifyForeverPeriod(t *testing.T) {
	doc := `<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance">
	  <xbrli:context id="C1">
	    <xbrli:entity><xbrli:identifier scheme="urn:s">E</xbrli:identifier></xbrli:entity>
	    <xbrli:period><xbrli:forever/></xbrli:period>
	  </xbrli:context>
	</xbrli:xbrl>`
	inst := parseInstance(t, doc)
	ctx, ok := inst.ContextByID("C1")
	if !ok {
		t.Fatal("ContextByID(C1) not found")
	}
	if _, ok := ctx.Period().(*ForeverPeriod); !ok {
		t.Fatalf("period is %T, want ForeverPeriod", ctx.Period())
	}
}

func TestClassifyRejectsMalformedPeriod(t *testing.T) {
	doc := `<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance">
	  <xbrli:context id="C1">
	    <xbrli:entity><xbrli:identifier scheme="urn:s">E</xbrli:identifier></xbrli:entity>
	    <xbrli:period>
	      <xbrli:instant>2020-12-31</xbrli:instant>
	      <xbrli:forever/>
	    </xbrli:period>
	  </xbrli:context>
	</xbrli:xbrl>`
	_, err := Parse(strings.NewReader(doc))
	assertStructuralCode(t, err, xbrlerrors.ErrMalformedPeriod)
}

func TestClassifyRejectsContextWithoutID(t *testing.T) {
	doc := `<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance">
	  <xbrli:context>
	    <xbrli:entity><xbrli:identifier scheme="urn:s">E</xbrli:identifier></xbrli:entity>
	    <xbrli:period><xbrli:forever/></xbrli:period>
	  </xbrli:context>
	</xbrli:xbrl>`
	_, err := Parse(strings.NewReader(doc))
	assertStructuralCode(t, err, xbrlerrors.ErrMalformedElement)
}

func TestClassifyRejectsUnboundMemberPrefix(t *testing.T) {
	doc := `<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance"
	    xmlns:xbrldi="http://xbrl.org/2006/xbrldi" xmlns:my="urn:my">
	  <xbrli:context id="C1">
	    <xbrli:entity>
	      <xbrli:identifier scheme="urn:s">E</xbrli:identifier>
	      <xbrli:segment>
	        <xbrldi:explicitMember dimension="my:D1">nope:M1</xbrldi:explicitMember>
	      </xbrli:segment>
	    </xbrli:entity>
	    <xbrli:period><xbrli:forever/></xbrli:period>
	  </xbrli:context>
	</xbrli:xbrl>`
	_, err := Parse(strings.NewReader(doc))
	assertStructuralCode(t, err, xbrlerrors.ErrUnboundPrefix)
}

func TestParseRejectsNonInstanceRoot(t *testing.T) {
	_, err := Parse(strings.NewReader(`<root/>`))
	assertStructuralCode(t, err, xbrlerrors.ErrNotAnInstance)
}

func TestParseRejectsEmptyDocument(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assertStructuralCode(t, err, xbrlerrors.ErrNoRoot)
}

func TestEqualIdentifiesSameElement(t *testing.T) {
	inst := parseInstance(t, sampleInstance)
	viaIndex := topLevelItem(t, inst, "Assets")
	var viaScan Elem
	for _, e := range Descendants(inst) {
		if e.Name() == qname.New(gaapNS, "Assets") {
			viaScan = e
		}
	}
	if !Equal(viaIndex, viaScan) {
		t.Fatal("Equal() = false for the same element found via index and scan")
	}

	other := parseInstance(t, sampleInstance)
	if Equal(viaIndex, topLevelItem(t, other, "Assets")) {
		t.Fatal("Equal() = true across distinct documents")
	}
}

func assertStructuralCode(t *testing.T, err error, code xbrlerrors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want code %s", code)
	}
	structurals, ok := xbrlerrors.AsStructurals(err)
	if !ok {
		t.Fatalf("error %v is not a structural error list", err)
	}
	for _, s := range structurals {
		if s.Code == string(code) {
			return
		}
	}
	t.Fatalf("error %v does not carry code %s", err, code)
}
