package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tvm802-tools/internal/app"
)

type fiducialsOptions struct {
	Pos string
}

func newFiducialsCommand() *cobra.Command {
	opts := fiducialsOptions{}
	cmd := &cobra.Command{
		Use:   "fiducials",
		Short: "List the fiducial designators of a placement file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFiducials(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Pos, "pos", "", "Placement CSV path")
	_ = viper.BindPFlag("pos", cmd.Flags().Lookup("pos"))
	return cmd
}

func runFiducials(ctx context.Context, cmd *cobra.Command, opts fiducialsOptions) error {
	service := newAppService()
	result, err := service.Fiducials(ctx, app.FiducialsRequest{
		PosPath: resolveString(cmd, opts.Pos, "pos", "pos"),
	})
	if err != nil {
		return err
	}
	if len(result.Refs) == 0 {
		fmt.Println("no fiducials found")
		return nil
	}
	for _, ref := range result.Refs {
		fmt.Println(ref)
	}
	return nil
}
