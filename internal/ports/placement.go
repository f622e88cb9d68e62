package ports

import "tvm802-tools/internal/types"

// ScanMode selects how many columns a placement row must carry before the
// reader yields it.
type ScanMode int

const (
	// ScanKeys is for component-key enumeration: KicadPos/Unknown rows need
	// only the ref/value/package columns.
	ScanKeys ScanMode = iota
	// ScanFull is for machine-data generation: rows must include coordinates
	// and rotation.
	ScanFull
)

// PlacementPort reads CAD placement CSV files.
type PlacementPort interface {
	// DetectFormat classifies the file header. A missing or empty header is
	// reported as PosFormatUnknown, not as an error.
	DetectFormat(path string) (types.PosFormat, error)
	// Read streams canonical placement records to fn in file order, skipping
	// empty, short, and unreferenced rows. An error returned by fn aborts the
	// scan and is returned as-is.
	Read(path string, mode ScanMode, fn func(types.PlacementRecord) error) error
}
