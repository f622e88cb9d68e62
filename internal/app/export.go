package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"tvm802-tools/internal/policies"
	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/types"
)

func (s Service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	posPath := strings.TrimSpace(req.PosPath)
	if posPath == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("placement file path is required")
	}
	feedersPath := strings.TrimSpace(req.FeedersPath)
	if feedersPath == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("feeders file path is required")
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output file path is required")
	}

	bom, err := s.loadBomIfGiven(req.BomPath)
	if err != nil {
		return ExportResult{}, err
	}
	if err := s.checkBomPolicy(posPath, bom, req.RequireBom); err != nil {
		return ExportResult{}, err
	}

	catalog, err := s.Feeders.Load(feedersPath)
	if err != nil {
		return ExportResult{}, err
	}

	written, err := s.Machine.Write(ctx, ports.MachineWriteRequest{
		PosPath:        posPath,
		OutputPath:     outputPath,
		Catalog:        catalog,
		Bom:            bom,
		Mark1Ref:       strings.TrimSpace(req.Mark1Ref),
		Mark2Ref:       strings.TrimSpace(req.Mark2Ref),
		SkipUnassigned: req.SkipUnassigned,
	})
	if err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{
		OutputPath:     outputPath,
		Format:         written.Format,
		RowsTotal:      written.RowsTotal,
		RowsWithFeeder: written.RowsWithFeeder,
		Mark1:          written.Mark1,
		Mark2:          written.Mark2,
	}

	if summaryPath := strings.TrimSpace(req.SummaryPath); summaryPath != "" {
		summary := types.ExportSummary{
			Source:         posPath,
			Output:         outputPath,
			Format:         written.Format,
			RowsTotal:      written.RowsTotal,
			RowsWithFeeder: written.RowsWithFeeder,
			Mark1:          written.Mark1,
			Mark2:          written.Mark2,
		}
		if err := s.Summary.WriteSummary(summaryPath, summary); err != nil {
			return ExportResult{}, err
		}
	}

	log.Ctx(ctx).Debug().
		Str("output", outputPath).
		Int("rows", result.RowsTotal).
		Msg("export complete")
	return result, nil
}

func (s Service) loadBomIfGiven(path string) (types.BomIndex, error) {
	bomPath := strings.TrimSpace(path)
	if bomPath == "" {
		return nil, nil
	}
	return s.Bom.Load(bomPath)
}

func (s Service) checkBomPolicy(posPath string, bom types.BomIndex, enforce bool) error {
	policy := policies.NewBomPolicy(enforce)
	if !policy.Enforce || bom != nil {
		return nil
	}
	format, err := s.Positions.DetectFormat(posPath)
	if err != nil {
		return err
	}
	if !policy.Allows(format, bom != nil) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("bom file is required for positions-format input")
	}
	return nil
}
