package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTemplateApp(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "feeders.csv")

	service := NewService()
	result, err := service.GenerateTemplate(t.Context(), TemplateRequest{
		PosPath:    fixturePath(t, "pos-kicad.csv"),
		BomPath:    fixturePath(t, "bom.csv"),
		OutputPath: outputPath,
	})
	require.NoError(t, err)

	want := []string{"C0402 100nF", "QFN32 MCU", "R0402 10k"}
	if diff := cmp.Diff(want, result.Components); diff != "" {
		t.Fatalf("unexpected components (-want +got):\n%s", diff)
	}
	require.FileExists(t, outputPath)
}

func TestTemplatePositionsWithoutBomUsesDesignators(t *testing.T) {
	service := NewService()
	result, err := service.GenerateTemplate(t.Context(), TemplateRequest{
		PosPath:    fixturePath(t, "positions.csv"),
		OutputPath: filepath.Join(t.TempDir(), "feeders.csv"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"C1", "R1"}, result.Components)
}

// The template and the machine writer must derive component keys identically:
// a catalog built from a freshly generated template has to satisfy every
// non-fiducial row of the same placement file.
func TestTemplateKeysMatchMachineLookups(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "feeders.csv")

	service := NewService()
	template, err := service.GenerateTemplate(t.Context(), TemplateRequest{
		PosPath:    fixturePath(t, "pos-kicad.csv"),
		BomPath:    fixturePath(t, "bom.csv"),
		OutputPath: templatePath,
	})
	require.NoError(t, err)

	// Assign a feeder slot to every template row.
	filled := "Component,Feeder,Nozzle,Speed,Height\r\n"
	for i, key := range template.Components {
		filled += fmt.Sprintf("%s,%d,1,100,0.5\r\n", key, i+1)
	}
	filledPath := filepath.Join(dir, "feeders-filled.csv")
	require.NoError(t, os.WriteFile(filledPath, []byte(filled), 0o644))

	result, err := service.Export(t.Context(), ExportRequest{
		PosPath:        fixturePath(t, "pos-kicad.csv"),
		BomPath:        fixturePath(t, "bom.csv"),
		FeedersPath:    filledPath,
		OutputPath:     filepath.Join(dir, "machine.csv"),
		SkipUnassigned: true,
	})
	require.NoError(t, err)
	require.Equal(t, 4, result.RowsTotal)
	require.Equal(t, 4, result.RowsWithFeeder)
}
