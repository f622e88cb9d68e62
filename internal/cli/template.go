package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tvm802-tools/internal/app"
)

type templateOptions struct {
	Pos        string
	Bom        string
	Output     string
	AllowNoBom bool
}

func newTemplateCommand() *cobra.Command {
	opts := templateOptions{}
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Generate a blank feeder assignment CSV from a placement file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTemplate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Pos, "pos", "", "Placement CSV path")
	cmd.Flags().StringVar(&opts.Bom, "bom", "", "BOM CSV path (optional for KiCad POS input)")
	cmd.Flags().StringVar(&opts.Output, "output", "feeders-unconfigged.csv", "Feeder template output path")
	cmd.Flags().BoolVar(&opts.AllowNoBom, "allow-no-bom", false, "Proceed without a BOM even for positions-format input")

	_ = viper.BindPFlag("pos", cmd.Flags().Lookup("pos"))
	_ = viper.BindPFlag("bom", cmd.Flags().Lookup("bom"))
	_ = viper.BindPFlag("template_output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("allow_no_bom", cmd.Flags().Lookup("allow-no-bom"))

	return cmd
}

func runTemplate(ctx context.Context, cmd *cobra.Command, opts templateOptions) error {
	service := newAppService()
	result, err := service.GenerateTemplate(ctx, app.TemplateRequest{
		PosPath:    resolveString(cmd, opts.Pos, "pos", "pos"),
		BomPath:    resolveString(cmd, opts.Bom, "bom", "bom"),
		OutputPath: resolveString(cmd, opts.Output, "template_output", "output"),
		RequireBom: !resolveBool(cmd, opts.AllowNoBom, "allow_no_bom", "allow-no-bom"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("feeder template written: %s (components: %d)\n", result.OutputPath, len(result.Components))
	return nil
}
