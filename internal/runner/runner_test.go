package runner_test

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"dxtract/internal/config"
	"dxtract/internal/runner"
)

const goodDoc = `<AnalysisDocument xmlns="http://www.spotfire.com/schemas/Document1.0.xsd">
	<TypeTable>
		<TypeObject Id="t.table" FullTypeName="Ns.Data.DataTable"/>
	</TypeTable>
	<Object Id="table1">
		<Type><TypeRef Value="t.table"/></Type>
		<Fields><Field Name="Name"><String Value="Sales"/></Field></Fields>
	</Object>
</AnalysisDocument>`

func writeDxp(t *testing.T, path string, files map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestRunBatch(t *testing.T) {
	t.Parallel()

	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "models")

	writeDxp(t, filepath.Join(inDir, "good.dxp"), map[string]string{
		"AnalysisDocument.xml": goodDoc,
	})
	// Case-insensitive extension matching.
	writeDxp(t, filepath.Join(inDir, "UPPER.DXP"), map[string]string{
		"AnalysisDocument.xml": goodDoc,
	})
	// No inner document: skipped, no output.
	writeDxp(t, filepath.Join(inDir, "hollow.dxp"), map[string]string{
		"Data/blob.bin": "x",
	})
	// Malformed document: skipped, no output.
	writeDxp(t, filepath.Join(inDir, "broken.dxp"), map[string]string{
		"AnalysisDocument.xml": "<AnalysisDocument><Object></AnalysisDocument>",
	})
	// Not a dxp file at all: ignored silently.
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("hi"), 0o644))

	cfg := config.New()
	cfg.InputDir = inDir
	cfg.OutputDir = outDir

	core, logs := observer.New(zap.WarnLevel)
	var console bytes.Buffer

	sum, err := runner.New(cfg, zap.New(core), &console, false).Run()
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Processed)
	assert.Equal(t, 2, sum.Skipped)

	// One output per successful input, none for the skipped ones.
	assert.FileExists(t, filepath.Join(outDir, "good_IM.json"))
	assert.FileExists(t, filepath.Join(outDir, "UPPER_IM.json"))
	assert.NoFileExists(t, filepath.Join(outDir, "hollow_IM.json"))
	assert.NoFileExists(t, filepath.Join(outDir, "broken_IM.json"))
	assert.NoFileExists(t, filepath.Join(outDir, "notes_IM.json"))

	data, err := os.ReadFile(filepath.Join(outDir, "good_IM.json"))
	require.NoError(t, err)
	var im map[string]any
	require.NoError(t, json.Unmarshal(data, &im))
	require.Len(t, im["DataTables"], 1)
	table := im["DataTables"].([]any)[0].(map[string]any)
	assert.Equal(t, "Sales", table["Name"])

	assert.Contains(t, console.String(), "parsed")
	assert.Contains(t, console.String(), "skipping")
	assert.Equal(t, 2, logs.FilterMessage("Skipping file").Len())
}

func TestRunMissingInputDir(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.InputDir = filepath.Join(t.TempDir(), "absent")
	cfg.OutputDir = t.TempDir()

	_, err := runner.New(cfg, zap.NewNop(), &bytes.Buffer{}, false).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input dir")
}

func TestRunOutputDirNotCreatable(t *testing.T) {
	t.Parallel()

	blocking := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocking, []byte("file in the way"), 0o644))

	cfg := config.New()
	cfg.InputDir = t.TempDir()
	cfg.OutputDir = blocking

	_, err := runner.New(cfg, zap.NewNop(), &bytes.Buffer{}, false).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output dir")
}

func TestRunEmptyInputDir(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.InputDir = t.TempDir()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")

	sum, err := runner.New(cfg, zap.NewNop(), &bytes.Buffer{}, false).Run()
	require.NoError(t, err)
	assert.Equal(t, runner.Summary{}, sum)
	// The output directory is still created.
	assert.DirExists(t, cfg.OutputDir)
}
