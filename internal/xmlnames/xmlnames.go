package xmlnames

const (
	// XMLPrefix is the reserved prefix for the XML namespace.
	XMLPrefix = "xml"
	// XMLNSPrefix is the reserved prefix for namespace declarations.
	XMLNSPrefix = "xmlns"
	// XMLNamespace is the XML namespace URI.
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
	// XMLNSNamespace is the XMLNS namespace URI.
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
	// XSINamespace is the XML Schema instance namespace URI.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// XbrliNamespace is the XBRL instance namespace URI.
	XbrliNamespace = "http://www.xbrl.org/2003/instance"
	// LinkNamespace is the XBRL linkbase namespace URI.
	LinkNamespace = "http://www.xbrl.org/2003/linkbase"
	// XLinkNamespace is the XLink namespace URI.
	XLinkNamespace = "http://www.w3.org/1999/xlink"
	// XbrldiNamespace is the XBRL dimensional instance namespace URI.
	XbrldiNamespace = "http://xbrl.org/2006/xbrldi"
)

var reservedNamespaces = map[string]struct{}{
	XMLNamespace:    {},
	XMLNSNamespace:  {},
	XSINamespace:    {},
	XbrliNamespace:  {},
	LinkNamespace:   {},
	XLinkNamespace:  {},
	XbrldiNamespace: {},
}

// IsReserved reports whether ns is a reserved XBRL, XLink, dimensional or
// core XML namespace. Elements in reserved namespaces are never facts.
func IsReserved(ns string) bool {
	_, ok := reservedNamespaces[ns]
	return ok
}
