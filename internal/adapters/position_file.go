package adapters

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tvm802-tools/internal/core"
	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/types"
)

type PositionFileAdapter struct{}

func NewPositionFileAdapter() PositionFileAdapter {
	return PositionFileAdapter{}
}

func (a PositionFileAdapter) DetectFormat(path string) (types.PosFormat, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.PosFormatUnknown, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("placement file not found").
			WithCause(err)
	}
	defer file.Close()

	header, err := csvReader(file).Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return types.PosFormatUnknown, nil
		}
		return types.PosFormatUnknown, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read placement header").
			WithCause(err)
	}
	return core.DetectPosFormat(header), nil
}

func (a PositionFileAdapter) Read(path string, mode ports.ScanMode, fn func(types.PlacementRecord) error) error {
	file, err := os.Open(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("placement file not found").
			WithCause(err)
	}
	defer file.Close()

	reader := csvReader(file)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read placement header").
			WithCause(err)
	}
	format := core.DetectPosFormat(header)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read placement row").
				WithCause(err)
		}
		rec, ok := placementRecord(row, format, mode)
		if !ok {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// placementRecord maps a raw CSV row onto the canonical record for the given
// format. Short rows and rows without a reference designator are dropped, not
// reported as errors.
func placementRecord(row []string, format types.PosFormat, mode ports.ScanMode) (types.PlacementRecord, bool) {
	rec := types.PlacementRecord{Format: format}
	switch format {
	case types.PosFormatPositions:
		if len(row) < 5 {
			return rec, false
		}
		rec.Ref = strings.TrimSpace(row[0])
		rec.X = strings.TrimSpace(row[1])
		rec.Y = strings.TrimSpace(row[2])
		rec.Rotation = strings.TrimSpace(row[3])
	default:
		required := 6
		if mode == ports.ScanKeys {
			required = 3
		}
		if len(row) < required {
			return rec, false
		}
		rec.Ref = strings.TrimSpace(row[0])
		rec.Value = strings.TrimSpace(row[1])
		rec.Package = strings.TrimSpace(row[2])
		if len(row) >= 6 {
			rec.X = strings.TrimSpace(row[3])
			rec.Y = strings.TrimSpace(row[4])
			rec.Rotation = strings.TrimSpace(row[5])
		}
	}
	if rec.Ref == "" {
		return rec, false
	}
	return rec, true
}

// csvReader builds a reader tolerant of the ragged, loosely quoted CSVs CAD
// tools export. Field counts vary per row; short rows are filtered later.
func csvReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

var _ ports.PlacementPort = PositionFileAdapter{}
