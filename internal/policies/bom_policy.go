// Package policies holds caller-level rules layered on top of the conversion
// core. The core itself never refuses to run without a BOM; whether that is
// acceptable for a given input is a policy decision owned by the adapter that
// invokes it.
package policies

import "tvm802-tools/internal/types"

// BomPolicy decides whether an operation may proceed without a BOM index.
// Positions-format files carry no value/package columns, so without a BOM
// every part degrades to a singleton group; enforcing callers refuse that.
type BomPolicy struct {
	Enforce bool
}

func NewBomPolicy(enforce bool) BomPolicy {
	return BomPolicy{Enforce: enforce}
}

// Allows reports whether an operation on a file of the given format may run
// with (or without) a BOM index.
func (p BomPolicy) Allows(format types.PosFormat, hasBom bool) bool {
	if !p.Enforce || hasBom {
		return true
	}
	return format != types.PosFormatPositions
}
