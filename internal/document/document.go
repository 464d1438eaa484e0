// Package document loads analysis documents and exposes the node scans the
// decoders work from.
package document

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Vocabulary of the analysis document format. All matching is by local tag
// name, so prefixed and default-namespace documents decode identically.
const (
	TagObject     = "Object"
	TagType       = "Type"
	TagTypeRef    = "TypeRef"
	TagTypeObject = "TypeObject"
	TagFields     = "Fields"
	TagField      = "Field"
	TagString     = "String"
	TagElements   = "Elements"

	AttrID           = "Id"
	AttrValue        = "Value"
	AttrFullTypeName = "FullTypeName"
	AttrName         = "Name"
)

// SuffixArray marks container tags whose element children form list values.
const SuffixArray = "Array"

// Paths used with etree path queries.
const (
	PathTypeRef      = TagType + "/" + TagTypeRef
	PathDataTypeName = TagFields + "/" + TagField + "[@" + AttrName + "='name']/" + TagString
)

// Document wraps one parsed analysis document.
type Document struct {
	tree *etree.Document
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("parsing %s: document has no root element", path)
	}
	return &Document{tree: tree}, nil
}

// Parse parses a document held in memory.
func Parse(data []byte) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("parsing document: no root element")
	}
	return &Document{tree: tree}, nil
}

// Root returns the document's root element.
func (d *Document) Root() *etree.Element {
	return d.tree.Root()
}

// CheckNamespace warns when the root element's namespace is not the expected
// vocabulary. Decoding proceeds either way since matching is by local name.
func (d *Document) CheckNamespace(want string, log *zap.Logger) {
	if want == "" {
		return
	}
	got := d.tree.Root().NamespaceURI()
	if got != want {
		log.Warn("unexpected document namespace",
			zap.String("want", want),
			zap.String("got", got))
	}
}

// Objects returns every Object node in the document, nested ones included,
// in document order.
func (d *Document) Objects() []*etree.Element {
	return d.tree.FindElements("//" + TagObject)
}

// TypeDescriptors returns every TypeObject node in the document.
func (d *Document) TypeDescriptors() []*etree.Element {
	return d.tree.FindElements("//" + TagTypeObject)
}

// StringLiterals returns every String node in the document.
func (d *Document) StringLiterals() []*etree.Element {
	return d.tree.FindElements("//" + TagString)
}
