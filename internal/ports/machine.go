package ports

import (
	"context"

	"tvm802-tools/internal/types"
)

// MachineWriteRequest carries everything needed to emit one machine data file.
// Mark overrides and the BOM index are optional.
type MachineWriteRequest struct {
	PosPath        string
	OutputPath     string
	Catalog        types.FeederCatalog
	Bom            types.BomIndex
	Mark1Ref       string
	Mark2Ref       string
	SkipUnassigned bool
}

// MachineWriteResult reports the counters and captured alignment marks of one
// export run. RowsWithFeeder counts rows whose raw catalog lookup carried a
// feeder slot or nozzle, before emission defaulting.
type MachineWriteResult struct {
	RowsTotal      int
	RowsWithFeeder int
	Mark1          types.MarkPoint
	Mark2          types.MarkPoint
	Format         types.PosFormat
}

// MachinePort writes TVM802 pick-and-place machine data files.
type MachinePort interface {
	Write(ctx context.Context, req MachineWriteRequest) (MachineWriteResult, error)
}
