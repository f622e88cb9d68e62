package ports

import "tvm802-tools/internal/types"

// BomPort reads bill-of-materials CSV files into a designator-to-key index.
type BomPort interface {
	Load(path string) (types.BomIndex, error)
}
