package model

import (
	json "github.com/goccy/go-json"
)

// ValueKind discriminates the payload of a FieldValue.
type ValueKind string

const (
	ValueScalar     ValueKind = "scalar"
	ValueScalarList ValueKind = "scalarList"
	ValueObjectList ValueKind = "objectList"
	ValueObject     ValueKind = "object"
)

// FieldValue is the decoded value of a single field. Exactly one payload
// field is meaningful, selected by Kind. The zero value is the empty scalar.
type FieldValue struct {
	Kind ValueKind        // Which payload applies
	Str  string           // ValueScalar
	List []string         // ValueScalarList
	Objs []*DecodedObject // ValueObjectList
	Obj  *DecodedObject   // ValueObject
}

// Scalar returns a scalar field value.
func Scalar(s string) FieldValue {
	return FieldValue{Kind: ValueScalar, Str: s}
}

// ScalarList returns a list-of-strings field value.
func ScalarList(ss []string) FieldValue {
	return FieldValue{Kind: ValueScalarList, List: ss}
}

// ObjectList returns a list-of-objects field value.
func ObjectList(objs []*DecodedObject) FieldValue {
	return FieldValue{Kind: ValueObjectList, Objs: objs}
}

// SingleObject returns a field value holding one nested object.
func SingleObject(obj *DecodedObject) FieldValue {
	return FieldValue{Kind: ValueObject, Obj: obj}
}

// Text returns the scalar payload, or "" for any other shape.
func (v FieldValue) Text() string {
	if v.Kind == ValueScalar || v.Kind == "" {
		return v.Str
	}
	return ""
}

// Objects returns the object payload for both object-carrying shapes,
// nil otherwise.
func (v FieldValue) Objects() []*DecodedObject {
	switch v.Kind {
	case ValueObjectList:
		return v.Objs
	case ValueObject:
		if v.Obj != nil {
			return []*DecodedObject{v.Obj}
		}
	}
	return nil
}

// MarshalJSON writes the payload bare: a string, a string array, an object
// array, or an object. Nil lists serialize as empty arrays.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueScalarList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case ValueObjectList:
		if v.Objs == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Objs)
	case ValueObject:
		return json.Marshal(v.Obj)
	default:
		return json.Marshal(v.Str)
	}
}

// FlatObject is a decoded object collapsed to a single level: the resolved
// type plus every field, keyed directly.
type FlatObject struct {
	Type   string
	Fields map[string]FieldValue
}

// MarshalJSON spreads the fields next to the Type key. A field literally
// named "Type" overrides the type entry. Keys serialize in sorted order.
func (f FlatObject) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(f.Fields)+1)
	flat["Type"] = f.Type
	for name, value := range f.Fields {
		flat[name] = value
	}
	return json.Marshal(flat)
}
