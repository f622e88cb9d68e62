package types

// ExportSummary is the optional YAML artifact describing one machine-data
// export run.
type ExportSummary struct {
	Source         string    `yaml:"source"`
	Output         string    `yaml:"output"`
	Format         PosFormat `yaml:"format"`
	RowsTotal      int       `yaml:"rows_total"`
	RowsWithFeeder int       `yaml:"rows_with_feeder"`
	Mark1          MarkPoint `yaml:"mark1"`
	Mark2          MarkPoint `yaml:"mark2"`
}
