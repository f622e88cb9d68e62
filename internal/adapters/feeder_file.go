package adapters

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/types"
)

type FeederFileAdapter struct{}

func NewFeederFileAdapter() FeederFileAdapter {
	return FeederFileAdapter{}
}

// Load reads a feeder-assignment CSV. The first row is always treated as a
// header and skipped without inspection. Rows with fewer than five columns or
// an empty key are dropped; duplicate keys overwrite.
func (a FeederFileAdapter) Load(path string) (types.FeederCatalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("feeders file not found").
			WithCause(err)
	}
	defer file.Close()

	reader := csvReader(file)
	catalog := types.FeederCatalog{}
	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return catalog, nil
		}
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read feeders row").
				WithCause(err)
		}
		if first {
			first = false
			continue
		}
		if len(row) < 5 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		catalog[key] = types.FeederAssignment{
			Feeder: strings.TrimSpace(row[1]),
			Nozzle: strings.TrimSpace(row[2]),
			Speed:  strings.TrimSpace(row[3]),
			Height: strings.TrimSpace(row[4]),
		}
	}
}

var _ ports.FeederPort = FeederFileAdapter{}
