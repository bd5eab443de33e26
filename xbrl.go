// Package xbrl is a typed document model and query layer for XBRL instance
// documents. Elements are classified into a closed variant set from
// namespace, local name, and structural evidence alone; no schema or
// taxonomy knowledge is required. The typed tree and its indexes are
// immutable after construction and safe for concurrent readers.
package xbrl

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/pkg/xmldom"
)

// Parse reads an XBRL instance document and builds its classified typed
// tree. The document root must be an xbrli:xbrl element.
func Parse(r io.Reader) (*Instance, error) {
	if r == nil {
		return nil, errors.StructuralList{errors.NewStructural(errors.ErrXMLParse, "nil reader", "")}
	}
	root, err := xmldom.Parse(r)
	if err != nil {
		if stderrors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.StructuralList{errors.NewStructural(errors.ErrNoRoot, "document has no root element", "")}
		}
		return nil, errors.StructuralList{errors.NewStructuralf(errors.ErrXMLParse, "", "parse XML: %v", err)}
	}
	classified, err := Classify(root)
	if err != nil {
		return nil, err
	}
	inst, ok := classified.(*Instance)
	if !ok {
		return nil, errors.StructuralList{errors.NewStructuralf(errors.ErrNotAnInstance, "/",
			"document root is %s, not an xbrli:xbrl element", root.Name())}
	}
	return inst, nil
}

// LoadFile parses an XBRL instance document from a file path.
func LoadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
