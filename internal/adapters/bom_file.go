package adapters

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/shared"
	"tvm802-tools/internal/types"
)

type BomFileAdapter struct{}

func NewBomFileAdapter() BomFileAdapter {
	return BomFileAdapter{}
}

// Load reads a BOM CSV into a designator-to-key index. The designator column
// is required for a row to contribute; footprint and value columns are
// optional and default to empty. Later rows overwrite earlier ones for the
// same designator.
func (a BomFileAdapter) Load(path string) (types.BomIndex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("bom file not found").
			WithCause(err)
	}
	defer file.Close()

	reader := csvReader(file)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return types.BomIndex{}, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read bom header").
			WithCause(err)
	}

	idxDesignator, idxFootprint, idxValue := -1, -1, -1
	for i, cell := range header {
		switch shared.NormalizeHeaderCell(cell) {
		case "designator":
			if idxDesignator < 0 {
				idxDesignator = i
			}
		case "footprint":
			if idxFootprint < 0 {
				idxFootprint = i
			}
		case "value":
			if idxValue < 0 {
				idxValue = i
			}
		}
	}

	index := types.BomIndex{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return index, nil
		}
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read bom row").
				WithCause(err)
		}
		designators := cellAt(row, idxDesignator)
		if designators == "" {
			continue
		}
		key := strings.TrimSpace(cellAt(row, idxFootprint) + " " + cellAt(row, idxValue))
		for _, ref := range splitDesignators(designators) {
			index[ref] = key
		}
	}
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// splitDesignators turns a cell like "C1, C2, C3" into individual refs. All
// whitespace is removed before splitting so that stray spaces inside a
// designator cannot survive.
func splitDesignators(cell string) []string {
	cleaned := strings.Join(strings.Fields(cell), "")
	var refs []string
	for _, token := range strings.Split(cleaned, ",") {
		if token = strings.TrimSpace(token); token != "" {
			refs = append(refs, token)
		}
	}
	return refs
}

var _ ports.BomPort = BomFileAdapter{}
