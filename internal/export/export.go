// Package export serializes intermediate models to their output files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"dxtract/internal/model"
)

// suffix appended to the input base name to form the output file name.
const suffix = "_IM.json"

// OutputName derives the output file name from one input path:
// report.dxp becomes report_IM.json.
func OutputName(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + suffix
}

// Write serializes im into outDir under the name derived from inputPath and
// returns the full output path. Output is deterministic: struct key order is
// fixed and map keys serialize sorted.
func Write(im *model.IntermediateModel, inputPath, outDir string) (string, error) {
	data, err := json.MarshalIndent(im, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding model: %w", err)
	}

	outPath := filepath.Join(outDir, OutputName(inputPath))
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}
