package core

import (
	"strings"

	"tvm802-tools/internal/shared"
	"tvm802-tools/internal/types"
)

// DetectPosFormat classifies a placement CSV header into one of the supported
// schemas. Unknown is not an error: downstream key derivation falls back to
// per-designator keys instead of reading value/package columns that may hold
// coordinate data.
func DetectPosFormat(header []string) types.PosFormat {
	cells := make([]string, len(header))
	for i, cell := range header {
		cells[i] = shared.NormalizeHeaderCell(cell)
	}

	if len(cells) >= 3 &&
		(cells[0] == "ref" || cells[0] == "reference") &&
		cells[1] == "val" &&
		cells[2] == "package" {
		return types.PosFormatKicad
	}

	if len(cells) >= 5 &&
		(cells[0] == "designator" || cells[0] == "ref") &&
		strings.HasPrefix(cells[1], "mid x") &&
		strings.HasPrefix(cells[2], "mid y") &&
		strings.HasPrefix(cells[3], "rotation") {
		return types.PosFormatPositions
	}

	return types.PosFormatUnknown
}
