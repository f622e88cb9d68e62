package types

// PlacementRecord is one canonical row of a placement file. Coordinate and
// rotation fields carry the source text verbatim and are never reparsed as
// numbers.
type PlacementRecord struct {
	Ref      string
	Value    string
	Package  string
	X        string
	Y        string
	Rotation string
	Format   PosFormat
}

// BomIndex maps individual reference designators to their derived component
// key. Every designator of a multi-designator BOM row maps to the same key.
type BomIndex map[string]string

// FeederAssignment holds the feeder parameters configured for one component
// key. All fields are free-form strings.
type FeederAssignment struct {
	Feeder string
	Nozzle string
	Speed  string
	Height string
}

// FeederCatalog maps component keys to feeder assignments.
type FeederCatalog map[string]FeederAssignment

// MarkPoint is a board alignment coordinate captured from a fiducial row.
type MarkPoint struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}
