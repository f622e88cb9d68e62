package adapters

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"tvm802-tools/internal/core"
	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/types"
)

// machineHeader lists the 11 fixed columns of a TVM802 pick-place file. The
// Vision and Check columns always carry the literals Accurate and Vision.
const machineHeader = "Designator\tNozzleNum\tStackNum\tMid X\tMid Y\tRotation\tHeight\tSpeed\tVision\tCheck\tExplanation"

type MachineFileAdapter struct {
	Positions ports.PlacementPort
}

func NewMachineFileAdapter(positions ports.PlacementPort) MachineFileAdapter {
	return MachineFileAdapter{Positions: positions}
}

// Write streams a placement file into the tab-separated machine format.
// Alignment marks are captured first-match-wins and excluded from output, as
// are all other fiducials. When SkipUnassigned is set, rows whose component
// key has no feeder slot in the catalog are dropped.
func (a MachineFileAdapter) Write(ctx context.Context, req ports.MachineWriteRequest) (ports.MachineWriteResult, error) {
	assert.NotEmpty(ctx, req.PosPath, "placement path must be set")
	assert.NotEmpty(ctx, req.OutputPath, "output path must be set")

	format, err := a.Positions.DetectFormat(req.PosPath)
	if err != nil {
		return ports.MachineWriteResult{}, err
	}

	out, err := os.Create(req.OutputPath)
	if err != nil {
		return ports.MachineWriteResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create machine data file").
			WithCause(err)
	}
	defer out.Close()
	writer := bufio.NewWriter(out)

	result := ports.MachineWriteResult{
		Format: format,
		Mark1:  types.MarkPoint{X: "0.00", Y: "0.00"},
		Mark2:  types.MarkPoint{X: "0.00", Y: "0.00"},
	}
	mark1Captured := false
	mark2Captured := false
	mark1Ref := strings.ToUpper(strings.TrimSpace(req.Mark1Ref))
	mark2Ref := strings.ToUpper(strings.TrimSpace(req.Mark2Ref))

	fmt.Fprintf(writer, "%s\r\n", machineHeader)
	// Working TVM802 files carry one blank spacer row after the header.
	fmt.Fprintf(writer, "%s\r\n", strings.Repeat("\t", 10))

	err = a.Positions.Read(req.PosPath, ports.ScanFull, func(rec types.PlacementRecord) error {
		if !mark1Captured && matchesMark(rec.Ref, mark1Ref, core.IsDefaultMark1) {
			result.Mark1 = types.MarkPoint{X: rec.X, Y: rec.Y}
			mark1Captured = true
			return nil
		}
		if !mark2Captured && matchesMark(rec.Ref, mark2Ref, core.IsDefaultMark2) {
			result.Mark2 = types.MarkPoint{X: rec.X, Y: rec.Y}
			mark2Captured = true
			return nil
		}
		if core.IsFiducial(rec.Ref) {
			return nil
		}

		key := core.ComponentKey(rec, req.Bom)
		assignment := req.Catalog[key]
		if req.SkipUnassigned && assignment.Feeder == "" {
			return nil
		}

		result.RowsTotal++
		if assignment.Feeder != "" || assignment.Nozzle != "" {
			result.RowsWithFeeder++
		}

		_, writeErr := fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\tAccurate\tVision\t%s\r\n",
			rec.Ref,
			orDefault(assignment.Nozzle, "1"),
			assignment.Feeder,
			rec.X,
			rec.Y,
			rec.Rotation,
			orDefault(assignment.Height, "0"),
			orDefault(assignment.Speed, "100"),
			core.SanitizeExplanation(key),
		)
		if writeErr != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write machine data row").
				WithCause(writeErr)
		}
		return nil
	})
	if err != nil {
		return ports.MachineWriteResult{}, err
	}

	// Trailing blank line to match working machine files.
	fmt.Fprint(writer, "\n")
	if err := writer.Flush(); err != nil {
		return ports.MachineWriteResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write machine data file").
			WithCause(err)
	}

	log.Ctx(ctx).Debug().
		Str("format", string(format)).
		Int("rows", result.RowsTotal).
		Int("with_feeder", result.RowsWithFeeder).
		Msg("machine data written")
	return result, nil
}

// matchesMark checks a reference against an explicit mark override, or the
// default mark designators when no override is given. Matching is always
// case-insensitive.
func matchesMark(ref string, override string, isDefault func(string) bool) bool {
	if override != "" {
		return strings.ToUpper(ref) == override
	}
	return isDefault(ref)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

var _ ports.MachinePort = MachineFileAdapter{}
