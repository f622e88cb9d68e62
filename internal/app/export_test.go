package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tvm802-tools/internal/types"
)

func fixturePath(t *testing.T, name string) string {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	return filepath.Join(root, "fixtures", name)
}

func TestExportApp(t *testing.T) {
	outDir := t.TempDir()
	outputPath := filepath.Join(outDir, "machine.csv")
	summaryPath := filepath.Join(outDir, "summary.yaml")

	service := NewService()
	result, err := service.Export(t.Context(), ExportRequest{
		PosPath:     fixturePath(t, "pos-kicad.csv"),
		BomPath:     fixturePath(t, "bom.csv"),
		FeedersPath: fixturePath(t, "feeders.csv"),
		OutputPath:  outputPath,
		SummaryPath: summaryPath,
		RequireBom:  true,
	})
	require.NoError(t, err)
	require.Equal(t, 4, result.RowsTotal)
	require.Equal(t, 3, result.RowsWithFeeder)
	require.Equal(t, types.MarkPoint{X: "0", Y: "0"}, result.Mark1)
	require.Equal(t, types.MarkPoint{X: "50", Y: "30"}, result.Mark2)
	require.Equal(t, types.PosFormatKicad, result.Format)
	require.FileExists(t, outputPath)

	data, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	var summary types.ExportSummary
	require.NoError(t, yaml.Unmarshal(data, &summary))
	require.Equal(t, 4, summary.RowsTotal)
	require.Equal(t, 3, summary.RowsWithFeeder)
	require.Equal(t, types.PosFormatKicad, summary.Format)
}

func TestExportRequiresBomForPositions(t *testing.T) {
	service := NewService()
	_, err := service.Export(t.Context(), ExportRequest{
		PosPath:     fixturePath(t, "positions.csv"),
		FeedersPath: fixturePath(t, "feeders.csv"),
		OutputPath:  filepath.Join(t.TempDir(), "machine.csv"),
		RequireBom:  true,
	})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestExportPositionsWithoutBomDegrades(t *testing.T) {
	service := NewService()
	result, err := service.Export(t.Context(), ExportRequest{
		PosPath:     fixturePath(t, "positions.csv"),
		FeedersPath: fixturePath(t, "feeders.csv"),
		OutputPath:  filepath.Join(t.TempDir(), "machine.csv"),
		RequireBom:  false,
	})
	require.NoError(t, err)
	// Every part is its own singleton key, so nothing matches the catalog.
	require.Equal(t, 2, result.RowsTotal)
	require.Equal(t, 0, result.RowsWithFeeder)
	require.Equal(t, types.MarkPoint{X: "0", Y: "0"}, result.Mark1)
}

func TestExportValidatesPaths(t *testing.T) {
	service := NewService()
	_, err := service.Export(t.Context(), ExportRequest{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
