package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tvm802-tools/internal/app"
)

type exportOptions struct {
	Pos            string
	Bom            string
	Feeders        string
	Output         string
	Mark1          string
	Mark2          string
	SkipUnassigned bool
	AllowNoBom     bool
	Summary        string
}

func newExportCommand() *cobra.Command {
	opts := exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export TVM802 machine data from a placement CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Pos, "pos", "", "Placement CSV path")
	cmd.Flags().StringVar(&opts.Bom, "bom", "", "BOM CSV path (optional for KiCad POS input)")
	cmd.Flags().StringVar(&opts.Feeders, "feeders", "", "Feeder assignment CSV path")
	cmd.Flags().StringVar(&opts.Output, "output", "tvm802-machine.csv", "Machine data output path")
	cmd.Flags().StringVar(&opts.Mark1, "mark1", "", "Fiducial designator for alignment mark 1")
	cmd.Flags().StringVar(&opts.Mark2, "mark2", "", "Fiducial designator for alignment mark 2")
	cmd.Flags().BoolVar(&opts.SkipUnassigned, "skip-unassigned", false, "Skip components without an assigned feeder")
	cmd.Flags().BoolVar(&opts.AllowNoBom, "allow-no-bom", false, "Proceed without a BOM even for positions-format input")
	cmd.Flags().StringVar(&opts.Summary, "summary", "", "Optional YAML run summary path")

	_ = viper.BindPFlag("pos", cmd.Flags().Lookup("pos"))
	_ = viper.BindPFlag("bom", cmd.Flags().Lookup("bom"))
	_ = viper.BindPFlag("feeders", cmd.Flags().Lookup("feeders"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("mark1", cmd.Flags().Lookup("mark1"))
	_ = viper.BindPFlag("mark2", cmd.Flags().Lookup("mark2"))
	_ = viper.BindPFlag("skip_unassigned", cmd.Flags().Lookup("skip-unassigned"))
	_ = viper.BindPFlag("allow_no_bom", cmd.Flags().Lookup("allow-no-bom"))
	_ = viper.BindPFlag("summary", cmd.Flags().Lookup("summary"))

	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, opts exportOptions) error {
	service := newAppService()
	result, err := service.Export(ctx, app.ExportRequest{
		PosPath:        resolveString(cmd, opts.Pos, "pos", "pos"),
		BomPath:        resolveString(cmd, opts.Bom, "bom", "bom"),
		FeedersPath:    resolveString(cmd, opts.Feeders, "feeders", "feeders"),
		OutputPath:     resolveString(cmd, opts.Output, "output", "output"),
		Mark1Ref:       resolveString(cmd, opts.Mark1, "mark1", "mark1"),
		Mark2Ref:       resolveString(cmd, opts.Mark2, "mark2", "mark2"),
		SkipUnassigned: resolveBool(cmd, opts.SkipUnassigned, "skip_unassigned", "skip-unassigned"),
		RequireBom:     !resolveBool(cmd, opts.AllowNoBom, "allow_no_bom", "allow-no-bom"),
		SummaryPath:    resolveString(cmd, opts.Summary, "summary", "summary"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("machine data written: %s\n", result.OutputPath)
	fmt.Printf("placements exported: %d (with feeders: %d)\n", result.RowsTotal, result.RowsWithFeeder)
	if result.RowsTotal > 0 && result.RowsWithFeeder == 0 {
		color.New(color.FgYellow).Println("warning: no feeders matched; check that the feeders CSV uses the same component keys as the BOM")
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
