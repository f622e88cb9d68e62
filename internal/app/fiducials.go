package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tvm802-tools/internal/core"
	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/types"
)

// Fiducials lists the distinct fiducial designators of a placement file in
// first-seen order, the order a caller presents them for mark selection.
func (s Service) Fiducials(ctx context.Context, req FiducialsRequest) (FiducialsResult, error) {
	posPath := strings.TrimSpace(req.PosPath)
	if posPath == "" {
		return FiducialsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("placement file path is required")
	}

	var refs []string
	seen := map[string]struct{}{}
	err := s.Positions.Read(posPath, ports.ScanKeys, func(rec types.PlacementRecord) error {
		if !core.IsFiducial(rec.Ref) {
			return nil
		}
		if _, ok := seen[rec.Ref]; ok {
			return nil
		}
		seen[rec.Ref] = struct{}{}
		refs = append(refs, rec.Ref)
		return nil
	})
	if err != nil {
		return FiducialsResult{}, err
	}
	return FiducialsResult{Refs: refs}, nil
}
