package ports

import "tvm802-tools/internal/types"

// SummaryPort writes the optional YAML run summary of an export.
type SummaryPort interface {
	WriteSummary(path string, summary types.ExportSummary) error
}
