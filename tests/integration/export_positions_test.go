package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tvm802-tools/internal/adapters"
	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/types"
	"tvm802-tools/tests/testutil"
)

// Positions-format exports key rows per designator, so the BOM is what maps
// them onto catalog entries shared with KiCad exports.
func TestExportPositionsWithBom(t *testing.T) {
	root := testutil.RepoRoot(t)

	bom, err := adapters.NewBomFileAdapter().Load(filepath.Join(root, "fixtures/bom.csv"))
	require.NoError(t, err)
	catalog, err := adapters.NewFeederFileAdapter().Load(filepath.Join(root, "fixtures/feeders.csv"))
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "machine.csv")
	positions := adapters.NewPositionFileAdapter()
	result, err := adapters.NewMachineFileAdapter(positions).Write(t.Context(), ports.MachineWriteRequest{
		PosPath:    filepath.Join(root, "fixtures/positions.csv"),
		OutputPath: outPath,
		Catalog:    catalog,
		Bom:        bom,
	})
	require.NoError(t, err)
	require.Equal(t, types.PosFormatPositions, result.Format)
	require.Equal(t, 2, result.RowsTotal)
	require.Equal(t, 2, result.RowsWithFeeder)
	// FID1 appears mid-file but still becomes mark 1.
	require.Equal(t, types.MarkPoint{X: "0", Y: "0"}, result.Mark1)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "C1\t1\t1\t1.0\t2.0\t0\t0.5\t100\tAccurate\tVision\tC0402 100nF\r\n")
	require.Contains(t, string(data), "R1\t1\t2\t12.5\t3.2\t90\t0.5\t100\tAccurate\tVision\tR0402 10k\r\n")
}
