package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"tvm802-tools/internal/core"
	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/types"
)

func (s Service) GenerateTemplate(ctx context.Context, req TemplateRequest) (TemplateResult, error) {
	posPath := strings.TrimSpace(req.PosPath)
	if posPath == "" {
		return TemplateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("placement file path is required")
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return TemplateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output file path is required")
	}

	bom, err := s.loadBomIfGiven(req.BomPath)
	if err != nil {
		return TemplateResult{}, err
	}
	if err := s.checkBomPolicy(posPath, bom, req.RequireBom); err != nil {
		return TemplateResult{}, err
	}

	components, err := s.componentKeys(posPath, bom)
	if err != nil {
		return TemplateResult{}, err
	}
	if err := s.Template.Write(ctx, outputPath, components); err != nil {
		return TemplateResult{}, err
	}

	log.Ctx(ctx).Debug().
		Str("output", outputPath).
		Int("components", len(components)).
		Msg("template complete")
	return TemplateResult{OutputPath: outputPath, Components: components}, nil
}

// componentKeys resolves the sorted set of distinct component keys of a
// placement file, skipping fiducials and empty keys.
func (s Service) componentKeys(posPath string, bom types.BomIndex) ([]string, error) {
	seen := map[string]struct{}{}
	err := s.Positions.Read(posPath, ports.ScanKeys, func(rec types.PlacementRecord) error {
		if core.IsFiducial(rec.Ref) {
			return nil
		}
		if key := core.ComponentKey(rec, bom); key != "" {
			seen[key] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	components := make([]string, 0, len(seen))
	for key := range seen {
		components = append(components, key)
	}
	sort.Strings(components)
	return components, nil
}
