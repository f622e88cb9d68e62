package app

import "tvm802-tools/internal/types"

type ExportRequest struct {
	PosPath        string
	BomPath        string
	FeedersPath    string
	OutputPath     string
	Mark1Ref       string
	Mark2Ref       string
	SkipUnassigned bool
	// RequireBom enforces the caller-level policy that positions-format
	// input must come with a BOM.
	RequireBom  bool
	SummaryPath string
}

type ExportResult struct {
	OutputPath     string
	Format         types.PosFormat
	RowsTotal      int
	RowsWithFeeder int
	Mark1          types.MarkPoint
	Mark2          types.MarkPoint
}

type TemplateRequest struct {
	PosPath    string
	BomPath    string
	OutputPath string
	RequireBom bool
}

type TemplateResult struct {
	OutputPath string
	Components []string
}

type FiducialsRequest struct {
	PosPath string
}

type FiducialsResult struct {
	Refs []string
}

type InspectRequest struct {
	PosPath string
	BomPath string
}

type InspectResult struct {
	Format     types.PosFormat
	Rows       int
	Components int
	Fiducials  int
}
