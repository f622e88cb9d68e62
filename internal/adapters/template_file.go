package adapters

import (
	"context"
	"encoding/csv"
	"os"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"tvm802-tools/internal/ports"
)

type TemplateFileAdapter struct{}

func NewTemplateFileAdapter() TemplateFileAdapter {
	return TemplateFileAdapter{}
}

// Write emits a blank feeder-assignment CSV with one row per component key.
// The feeder column is left empty; nozzle, speed, and height carry the
// placeholder defaults the machine operator edits in place.
func (a TemplateFileAdapter) Write(ctx context.Context, path string, keys []string) error {
	assert.NotEmpty(ctx, path, "template path must be set")

	ordered := append([]string(nil), keys...)
	sort.Strings(ordered)

	out, err := os.Create(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create feeder template").
			WithCause(err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	writer.UseCRLF = true
	_ = writer.Write([]string{"Component", "Feeder", "Nozzle", "Speed", "Height"})
	for _, key := range ordered {
		_ = writer.Write([]string{key, "", "1/2", "100", "0.5"})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write feeder template").
			WithCause(err)
	}

	log.Ctx(ctx).Debug().Int("components", len(ordered)).Msg("feeder template written")
	return nil
}

var _ ports.TemplatePort = TemplateFileAdapter{}
