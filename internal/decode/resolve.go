// Package decode turns raw document nodes into intermediate-model values.
package decode

import (
	"strings"

	"dxtract/internal/document"
)

// Resolution holds the three reference tables built from one document. It is
// built once per document, never mutated afterwards, and passed by reference
// to every decoding and classification step.
type Resolution struct {
	Types     map[string]string // TypeObject Id -> fully qualified type name
	Strings   map[string]string // String Id -> literal value
	DataTypes map[string]string // data type descriptor Id -> display name
}

// Resolve builds the reference tables for doc. Entries without an Id are
// omitted.
func Resolve(doc *document.Document) *Resolution {
	res := &Resolution{
		Types:     make(map[string]string),
		Strings:   make(map[string]string),
		DataTypes: make(map[string]string),
	}

	for _, td := range doc.TypeDescriptors() {
		id := td.SelectAttrValue(document.AttrID, "")
		if id == "" {
			continue
		}
		res.Types[id] = td.SelectAttrValue(document.AttrFullTypeName, "")
	}

	for _, s := range doc.StringLiterals() {
		id := s.SelectAttrValue(document.AttrID, "")
		if id == "" {
			continue
		}
		res.Strings[id] = s.SelectAttrValue(document.AttrValue, "")
	}

	// Data type descriptors are ordinary objects whose referenced type name
	// ends in "DataType". The display name sits in a nested "name" field;
	// descriptors without one stay out of the table.
	for _, obj := range doc.Objects() {
		id := obj.SelectAttrValue(document.AttrID, "")
		if id == "" {
			continue
		}
		ref := obj.FindElement(document.PathTypeRef)
		if ref == nil {
			continue
		}
		full := res.Types[ref.SelectAttrValue(document.AttrValue, "")]
		if !strings.HasSuffix(full, "DataType") {
			continue
		}
		if name := obj.FindElement(document.PathDataTypeName); name != nil {
			res.DataTypes[id] = name.SelectAttrValue(document.AttrValue, "")
		}
	}

	return res
}
