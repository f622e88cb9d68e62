package app

import (
	"tvm802-tools/internal/adapters"
	"tvm802-tools/internal/ports"
)

type Service struct {
	Positions ports.PlacementPort
	Bom       ports.BomPort
	Feeders   ports.FeederPort
	Machine   ports.MachinePort
	Template  ports.TemplatePort
	Summary   ports.SummaryPort
}

func NewService() Service {
	positions := adapters.NewPositionFileAdapter()
	return Service{
		Positions: positions,
		Bom:       adapters.NewBomFileAdapter(),
		Feeders:   adapters.NewFeederFileAdapter(),
		Machine:   adapters.NewMachineFileAdapter(positions),
		Template:  adapters.NewTemplateFileAdapter(),
		Summary:   adapters.NewSummaryFileAdapter(),
	}
}
