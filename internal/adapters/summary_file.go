package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"tvm802-tools/internal/ports"
	"tvm802-tools/internal/types"
)

type SummaryFileAdapter struct{}

func NewSummaryFileAdapter() SummaryFileAdapter {
	return SummaryFileAdapter{}
}

func (a SummaryFileAdapter) WriteSummary(path string, summary types.ExportSummary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode export summary").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write export summary").
			WithCause(err)
	}
	return nil
}

var _ ports.SummaryPort = SummaryFileAdapter{}
