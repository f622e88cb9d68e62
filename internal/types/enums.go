package types

// PosFormat identifies which placement CSV schema a file uses.
type PosFormat string

const (
	// PosFormatKicad is the classic KiCad POS export: ref,val,package,x,y,rotation.
	PosFormatKicad PosFormat = "kicad_pos"
	// PosFormatPositions is the positions.csv style: designator,mid x,mid y,rotation.
	// It carries no value or package columns.
	PosFormatPositions PosFormat = "positions"
	// PosFormatUnknown is any other header. Unknown files are parsed
	// KicadPos-shaped but keyed per designator.
	PosFormatUnknown PosFormat = "unknown"
)
