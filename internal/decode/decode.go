package decode

import (
	"strings"

	"github.com/beevik/etree"

	"dxtract/internal/document"
	"dxtract/internal/model"
)

// DecodeObject lifts one Object element into a DecodedObject. Identity and
// type resolution failures degrade to "", never to an error.
func DecodeObject(el *etree.Element, res *Resolution) *model.DecodedObject {
	obj := &model.DecodedObject{
		ID:       el.SelectAttrValue(document.AttrID, ""),
		Type:     resolveType(el, res),
		Fields:   map[string]model.FieldValue{},
		Children: []*model.DecodedObject{},
	}

	if fields := el.SelectElement(document.TagFields); fields != nil {
		for _, f := range fields.SelectElements(document.TagField) {
			// Duplicate field names: last write wins.
			obj.Fields[f.SelectAttrValue(document.AttrName, "")] = decodeFieldValue(f, res)
		}
	}

	for _, child := range el.SelectElements(document.TagObject) {
		obj.Children = append(obj.Children, DecodeObject(child, res))
	}

	return obj
}

// resolveType reads the object's type: an indirect TypeRef through the type
// table wins, then an inline TypeObject, then "". Qualified names keep only
// the segment after the last dot; no other code path shortens type names.
func resolveType(el *etree.Element, res *Resolution) string {
	typ := el.SelectElement(document.TagType)
	if typ == nil {
		return ""
	}

	var full string
	if ref := typ.SelectElement(document.TagTypeRef); ref != nil {
		full = res.Types[ref.SelectAttrValue(document.AttrValue, "")]
	} else if inline := typ.SelectElement(document.TagTypeObject); inline != nil {
		full = inline.SelectAttrValue(document.AttrFullTypeName, "")
	}

	return simpleName(full)
}

// simpleName keeps the trailing segment of a dotted qualified name.
func simpleName(full string) string {
	if i := strings.LastIndex(full, "."); i >= 0 {
		return full[i+1:]
	}
	return full
}

// decodeFieldValue classifies the local structure of one Field element into
// a FieldValue. Rules run top to bottom; the trailing text fallback means
// every shape decodes to something.
func decodeFieldValue(fld *etree.Element, res *Resolution) model.FieldValue {
	// Nested objects win over everything else.
	if nested := fld.SelectElements(document.TagObject); len(nested) > 0 {
		objs := make([]*model.DecodedObject, 0, len(nested))
		for _, n := range nested {
			objs = append(objs, DecodeObject(n, res))
		}
		return model.ObjectList(objs)
	}

	children := fld.ChildElements()
	if len(children) == 1 {
		child := children[0]
		if v := child.SelectAttr(document.AttrValue); v != nil {
			return model.Scalar(v.Value)
		}
		if strings.HasSuffix(child.Tag, document.SuffixArray) {
			return decodeArray(child, res)
		}
	}
	if len(children) > 1 {
		values := make([]string, 0, len(children))
		for _, c := range children {
			if v := c.SelectAttr(document.AttrValue); v != nil {
				values = append(values, v.Value)
			}
		}
		if len(values) > 0 {
			return model.ScalarList(values)
		}
	}

	return model.Scalar(strings.TrimSpace(fld.Text()))
}

// decodeArray handles *Array containers: an Elements child holds nested
// objects, otherwise every child contributes its Value attribute or its
// trimmed text.
func decodeArray(arr *etree.Element, res *Resolution) model.FieldValue {
	if elems := arr.SelectElement(document.TagElements); elems != nil {
		objs := []*model.DecodedObject{}
		for _, n := range elems.SelectElements(document.TagObject) {
			objs = append(objs, DecodeObject(n, res))
		}
		return model.ObjectList(objs)
	}

	children := arr.ChildElements()
	values := make([]string, 0, len(children))
	for _, c := range children {
		if v := c.SelectAttr(document.AttrValue); v != nil {
			values = append(values, v.Value)
		} else {
			values = append(values, strings.TrimSpace(c.Text()))
		}
	}
	return model.ScalarList(values)
}
