package ports

import "tvm802-tools/internal/types"

// FeederPort reads feeder-assignment CSV files into a key-to-assignment catalog.
type FeederPort interface {
	Load(path string) (types.FeederCatalog, error)
}
