// Package classify sorts decoded objects into the intermediate model's
// collections and normalizes each record shape.
package classify

import (
	"strings"

	"dxtract/internal/config"
)

// Category is the collection a decoded object lands in.
type Category string

const (
	CategoryNone          Category = ""
	CategoryDataTable     Category = "dataTable"
	CategoryVisualization Category = "visualization"
	CategoryFilter        Category = "filter"
	CategoryBookmark      Category = "bookmark"
	CategoryScript        Category = "script"
)

// suffixRule maps a type-name suffix to a category.
type suffixRule struct {
	suffix   string
	category Category
}

// Rules is the classification table: suffix rules checked in order, then
// exact names. The first match wins.
type Rules struct {
	suffixes []suffixRule
	exact    map[string]Category
	bindings []string
}

// NewRules builds the classification table from config. Category membership
// is declared here and nowhere else. The "DataTable" suffix outranks the
// visualization suffixes so table-like data types never register as
// visualizations.
func NewRules(cfg config.ClassifierConfig) *Rules {
	r := &Rules{
		suffixes: []suffixRule{
			{suffix: "DataTable", category: CategoryDataTable},
		},
		exact: map[string]Category{
			"FilteringScheme": CategoryFilter,
			"Filter":          CategoryFilter,
			"Bookmark":        CategoryBookmark,
			"Script":          CategoryScript,
			"DataFunction":    CategoryScript,
		},
		bindings: cfg.BindingFields,
	}
	for _, suffix := range cfg.VisualizationSuffixes {
		r.suffixes = append(r.suffixes, suffixRule{suffix: suffix, category: CategoryVisualization})
	}
	return r
}

// Categorize returns the category for a resolved type name.
func (r *Rules) Categorize(typeName string) Category {
	for _, sr := range r.suffixes {
		if strings.HasSuffix(typeName, sr.suffix) {
			return sr.category
		}
	}
	if c, ok := r.exact[typeName]; ok {
		return c
	}
	return CategoryNone
}

// Bindings returns the recognized binding field names in declaration order.
func (r *Rules) Bindings() []string {
	return r.bindings
}
