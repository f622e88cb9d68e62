package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tvm802-tools/internal/app"
)

type inspectOptions struct {
	Pos string
	Bom string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report the detected format and contents of a placement file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Pos, "pos", "", "Placement CSV path")
	cmd.Flags().StringVar(&opts.Bom, "bom", "", "BOM CSV path (optional)")
	_ = viper.BindPFlag("pos", cmd.Flags().Lookup("pos"))
	_ = viper.BindPFlag("bom", cmd.Flags().Lookup("bom"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		PosPath: resolveString(cmd, opts.Pos, "pos", "pos"),
		BomPath: resolveString(cmd, opts.Bom, "bom", "bom"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("format: %s\n", result.Format)
	fmt.Printf("placement rows: %d\n", result.Rows)
	fmt.Printf("component keys: %d\n", result.Components)
	fmt.Printf("fiducials: %d\n", result.Fiducials)
	return nil
}
