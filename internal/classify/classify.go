package classify

import (
	"go.uber.org/zap"

	"dxtract/internal/decode"
	"dxtract/internal/document"
	"dxtract/internal/model"
)

// Column encodings seen in the wild: newer documents nest columns inside a
// collection, older ones attach them directly.
const (
	typeDataColumn           = "DataColumn"
	typeDataColumnCollection = "DataColumnCollection"
)

// Build decodes every object in the document and files the recognized ones
// into a fresh IntermediateModel. Objects are visited in document order, and
// nested occurrences classify independently of their parents.
func Build(doc *document.Document, res *decode.Resolution, rules *Rules, log *zap.Logger) *model.IntermediateModel {
	im := model.NewIntermediateModel()

	for _, el := range doc.Objects() {
		obj := decode.DecodeObject(el, res)
		switch rules.Categorize(obj.Type) {
		case CategoryDataTable:
			im.DataTables = append(im.DataTables, dataTable(obj, res, log))
		case CategoryVisualization:
			im.Visualizations = append(im.Visualizations, visualization(obj, rules))
		case CategoryFilter:
			im.Filters = append(im.Filters, obj)
		case CategoryBookmark:
			im.Bookmarks = append(im.Bookmarks, obj)
		case CategoryScript:
			im.Scripts = append(im.Scripts, script(obj))
		}
	}

	return im
}

// dataTable normalizes one data table object. Name and DataSource stay raw,
// Transformations and Relations flatten, and both column encodings collapse
// into one flat list.
func dataTable(obj *model.DecodedObject, res *decode.Resolution, log *zap.Logger) model.DataTable {
	return model.DataTable{
		ID:              obj.ID,
		Name:            obj.Fields["Name"],
		DataSource:      obj.Fields["DataSource"],
		Transformations: flatten(obj.Fields["Transformations"], "Transformations", obj.ID, log),
		Columns:         columns(obj.Fields["Columns"], res),
		Relationships:   flatten(obj.Fields["Relations"], "Relations", obj.ID, log),
	}
}

// flatten turns an object-list field into flat records. Non-object shapes
// carry nothing usable and flatten to an empty list.
func flatten(v model.FieldValue, field, owner string, log *zap.Logger) []model.FlatObject {
	out := []model.FlatObject{}
	switch v.Kind {
	case model.ValueObjectList, model.ValueObject:
		for _, o := range v.Objects() {
			out = append(out, model.FlatObject{Type: o.Type, Fields: o.Fields})
		}
	case model.ValueScalarList:
		log.Warn("Unexpected shape in object-list field, ignoring",
			zap.String("field", field),
			zap.String("object", owner))
	default:
		if v.Str != "" {
			log.Warn("Unexpected shape in object-list field, ignoring",
				zap.String("field", field),
				zap.String("object", owner))
		}
	}
	return out
}

// columns gathers column records from both encodings. Anything typed neither
// as a column nor as a collection is passed over.
func columns(v model.FieldValue, res *decode.Resolution) []model.Column {
	out := []model.Column{}
	for _, col := range v.Objects() {
		switch col.Type {
		case typeDataColumn:
			out = append(out, column(col, res))
		case typeDataColumnCollection:
			for _, item := range col.Fields["Items"].Objects() {
				for _, node := range item.Fields["Nodes"].Objects() {
					out = append(out, column(node, res))
				}
			}
		}
	}
	return out
}

// column resolves one column object into the canonical record.
func column(obj *model.DecodedObject, res *decode.Resolution) model.Column {
	return model.Column{
		Name:       displayValue(obj.Fields["Name"], res.Strings),
		DataType:   displayValue(obj.Fields["DataType"], res.DataTypes, res.Strings),
		Expression: displayValue(obj.Fields["Expression"], res.Strings),
	}
}

// displayValue resolves one column attribute. Scalars pass through the
// lookup tables in order, first hit wins, misses keep the literal. Object
// shaped values read the object's own "name" field instead.
func displayValue(v model.FieldValue, tables ...map[string]string) string {
	if objs := v.Objects(); len(objs) > 0 {
		return objs[0].Fields["name"].Text()
	}
	if v.Kind == model.ValueScalarList {
		if len(v.List) == 0 {
			return ""
		}
		return lookup(v.List[0], tables)
	}
	return lookup(v.Str, tables)
}

func lookup(key string, tables []map[string]string) string {
	for _, t := range tables {
		if mapped, ok := t[key]; ok {
			return mapped
		}
	}
	return key
}

// visualization captures the data binding surface of one visualization
// object. Only configured binding fields are captured, and only when the
// object actually has them.
func visualization(obj *model.DecodedObject, rules *Rules) model.Visualization {
	bindings := map[string]model.FieldValue{}
	for _, name := range rules.Bindings() {
		if v, ok := obj.Fields[name]; ok {
			bindings[name] = v
		}
	}
	return model.Visualization{
		ID:         obj.ID,
		Type:       obj.Type,
		DataTable:  obj.Fields["Data"],
		Bindings:   bindings,
		Filters:    obj.Fields["Filters"],
		Formatting: obj.Fields["Format"],
	}
}

// script extracts executable content: the Script field wins, then
// Expression, then empty.
func script(obj *model.DecodedObject) model.Script {
	content, ok := obj.Fields["Script"]
	if !ok {
		content = obj.Fields["Expression"]
	}
	return model.Script{ID: obj.ID, Type: obj.Type, Content: content}
}
