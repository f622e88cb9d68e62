package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFiducials(t *testing.T) {
	service := NewService()
	result, err := service.Fiducials(t.Context(), FiducialsRequest{
		PosPath: fixturePath(t, "pos-kicad.csv"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"FID1", "FID2"}, result.Refs)
}

func TestFiducialsNoneFound(t *testing.T) {
	posPath := filepath.Join(t.TempDir(), "pos.csv")
	writeFile(t, posPath, "Ref,Val,Package\nR1,10k,0402\n")

	service := NewService()
	result, err := service.Fiducials(t.Context(), FiducialsRequest{PosPath: posPath})
	require.NoError(t, err)
	require.Empty(t, result.Refs)
}
