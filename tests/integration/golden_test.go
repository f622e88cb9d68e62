package integration

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvm802-tools/internal/adapters"
	"tvm802-tools/internal/core"
	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/types"
	"tvm802-tools/tests/testutil"
)

// TestGoldenExport runs a full export using the sample fixtures and compares
// the machine file against a committed golden file. If the golden file does
// not exist yet (first run), it is written so it can be committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenExport(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	bom, err := adapters.NewBomFileAdapter().Load(filepath.Join(root, "fixtures/bom.csv"))
	require.NoError(t, err)
	catalog, err := adapters.NewFeederFileAdapter().Load(filepath.Join(root, "fixtures/feeders.csv"))
	require.NoError(t, err)

	outDir := t.TempDir()
	machinePath := filepath.Join(outDir, "tvm802-machine.csv")
	positions := adapters.NewPositionFileAdapter()
	result, err := adapters.NewMachineFileAdapter(positions).Write(t.Context(), ports.MachineWriteRequest{
		PosPath:    filepath.Join(root, "fixtures/pos-kicad.csv"),
		OutputPath: machinePath,
		Catalog:    catalog,
		Bom:        bom,
	})
	require.NoError(t, err)
	require.Equal(t, 4, result.RowsTotal)
	require.Equal(t, 3, result.RowsWithFeeder)

	compareGolden(t, goldenDir, "tvm802-machine.csv", machinePath)
}

// TestGoldenTemplate generates a feeder template from the sample fixtures
// and compares it against the committed golden file.
func TestGoldenTemplate(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	bom, err := adapters.NewBomFileAdapter().Load(filepath.Join(root, "fixtures/bom.csv"))
	require.NoError(t, err)

	keys := map[string]struct{}{}
	positions := adapters.NewPositionFileAdapter()
	err = positions.Read(filepath.Join(root, "fixtures/pos-kicad.csv"), ports.ScanKeys, func(rec types.PlacementRecord) error {
		if !core.IsFiducial(rec.Ref) {
			keys[core.ComponentKey(rec, bom)] = struct{}{}
		}
		return nil
	})
	require.NoError(t, err)

	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	outDir := t.TempDir()
	templatePath := filepath.Join(outDir, "feeders-unconfigged.csv")
	require.NoError(t, adapters.NewTemplateFileAdapter().Write(t.Context(), templatePath, sorted))

	compareGolden(t, goldenDir, "feeders-unconfigged.csv", templatePath)
}

func compareGolden(t *testing.T, goldenDir, name, actualPath string) {
	t.Helper()

	actual, err := os.ReadFile(actualPath)
	require.NoError(t, err)

	goldenPath := filepath.Join(goldenDir, name)
	if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
		// Golden file doesn't exist yet -- write it.
		require.NoError(t, os.MkdirAll(goldenDir, 0o755))
		require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
		t.Logf("golden file written: %s (commit it)", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual),
		"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", name)
}
