// Package model defines the intermediate representation extracted from
// analysis documents.
package model

// DecodedObject is one Object node lifted out of the document tree.
type DecodedObject struct {
	ID       string                `json:"Id"`       // Id attribute ("" when absent)
	Type     string                `json:"Type"`     // Resolved simple type name
	Fields   map[string]FieldValue `json:"Fields"`   // Field name -> value; last write wins on duplicates
	Children []*DecodedObject      `json:"Children"` // Object children outside the Fields container
}

// IntermediateModel is the normalized output for one document. All five
// collections are present in every output, empty or not.
type IntermediateModel struct {
	DataTables     []DataTable      `json:"DataTables"`
	Visualizations []Visualization  `json:"Visualizations"`
	Filters        []*DecodedObject `json:"Filters"`
	Bookmarks      []*DecodedObject `json:"Bookmarks"`
	Scripts        []Script         `json:"Scripts"`
}

// NewIntermediateModel returns a model whose collections serialize as empty
// arrays rather than null.
func NewIntermediateModel() *IntermediateModel {
	return &IntermediateModel{
		DataTables:     []DataTable{},
		Visualizations: []Visualization{},
		Filters:        []*DecodedObject{},
		Bookmarks:      []*DecodedObject{},
		Scripts:        []Script{},
	}
}

// DataTable summarizes one data table object.
type DataTable struct {
	ID              string       `json:"Id"`
	Name            FieldValue   `json:"Name"`            // Raw Name field value
	DataSource      FieldValue   `json:"DataSource"`      // Raw DataSource field value
	Transformations []FlatObject `json:"Transformations"` // Flattened Transformations entries
	Columns         []Column     `json:"Columns"`         // Normalized from both column encodings
	Relationships   []FlatObject `json:"Relationships"`   // Flattened Relations entries
}

// Column is the canonical column record, fully resolved.
type Column struct {
	Name       string `json:"Name"`
	DataType   string `json:"DataType"`
	Expression string `json:"Expression"`
}

// Visualization summarizes one visualization object. Bindings holds only the
// recognized binding fields that were present on the object.
type Visualization struct {
	ID         string                `json:"Id"`
	Type       string                `json:"Type"`
	DataTable  FieldValue            `json:"DataTable"`
	Bindings   map[string]FieldValue `json:"Bindings"`
	Filters    FieldValue            `json:"Filters"`
	Formatting FieldValue            `json:"Formatting"`
}

// Script summarizes one script or data function object.
type Script struct {
	ID      string     `json:"Id"`
	Type    string     `json:"Type"`
	Content FieldValue `json:"Content"` // Script field, else Expression, else ""
}
