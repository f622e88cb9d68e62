package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tvm802-tools/internal/core"
	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/types"
)

// Inspect probes a placement file without writing anything: detected format,
// non-fiducial row count, distinct component keys, and distinct fiducials.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	posPath := strings.TrimSpace(req.PosPath)
	if posPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("placement file path is required")
	}

	format, err := s.Positions.DetectFormat(posPath)
	if err != nil {
		return InspectResult{}, err
	}
	bom, err := s.loadBomIfGiven(req.BomPath)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{Format: format}
	keys := map[string]struct{}{}
	fiducials := map[string]struct{}{}
	err = s.Positions.Read(posPath, ports.ScanKeys, func(rec types.PlacementRecord) error {
		if core.IsFiducial(rec.Ref) {
			fiducials[rec.Ref] = struct{}{}
			return nil
		}
		result.Rows++
		if key := core.ComponentKey(rec, bom); key != "" {
			keys[key] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return InspectResult{}, err
	}
	result.Components = len(keys)
	result.Fiducials = len(fiducials)
	return result, nil
}
