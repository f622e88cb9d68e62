package core

import (
	"strings"

	"tvm802-tools/internal/types"
)

// explanationStrip removes characters the TVM802 software chokes on in the
// Explanation column, including the full-width variants produced by some BOM
// exports.
var explanationStrip = strings.NewReplacer(
	`"`, "",
	"(", "",
	")", "",
	"＂", "",
	"（", "",
	"）", "",
)

// ComponentKey derives the grouping key used for feeder lookups. A BOM-supplied
// key always wins. Positions-format files carry no value/package columns and
// unknown-format files cannot be trusted to, so without a BOM every designator
// in those files forms its own singleton group.
//
// Both output writers must resolve keys through this function; the feeder
// template and the machine data file only line up because they derive keys
// identically.
func ComponentKey(rec types.PlacementRecord, bom types.BomIndex) string {
	if bom != nil {
		if key, ok := bom[rec.Ref]; ok && key != "" {
			return key
		}
	}
	if rec.Format == types.PosFormatPositions || rec.Format == types.PosFormatUnknown {
		return rec.Ref
	}
	return strings.TrimSpace(rec.Package + " " + rec.Value)
}

// SanitizeExplanation strips quote and parenthesis characters from a component
// key before it is written to the Explanation column.
func SanitizeExplanation(text string) string {
	return strings.TrimSpace(explanationStrip.Replace(text))
}
