// Package config provides configuration handling for dxtract.
package config

// Default directory names, matching the tool's conventional layout.
const (
	DefaultInputDir  = "dxp_input"
	DefaultOutputDir = "im_output"
)

// DefaultNamespace is the vocabulary namespace analysis documents declare.
const DefaultNamespace = "http://www.spotfire.com/schemas/Document1.0.xsd"

// DefaultVisualizationSuffixes returns the type-name suffixes classified as
// visualizations. New visualization kinds are added to this table.
func DefaultVisualizationSuffixes() []string {
	return []string{
		"BarChart",
		"LineChart",
		"Table",
		"ScatterChart",
		"PieChart",
	}
}

// DefaultBindingFields returns the visualization field names captured as
// axis, color and legend bindings.
func DefaultBindingFields() []string {
	return []string{
		"XAxisColumn",
		"YAxisColumn",
		"ColorBy",
		"CategoryField",
		"ValueField",
		"Legend",
	}
}
