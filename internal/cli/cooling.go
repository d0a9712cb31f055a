package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Simplici0/moldcost/internal/catalog"
	"github.com/Simplici0/moldcost/internal/estimate"
)

type CoolingOptions struct {
	GlobalOptions

	MaterialID    string
	WallThickness float64
}

func DefaultCoolingOptions() *CoolingOptions {
	return &CoolingOptions{
		GlobalOptions: DefaultGlobalOptions(),
		WallThickness: estimate.DefaultState().WallThickness,
	}
}

func NewCmdCooling() *cobra.Command {
	o := DefaultCoolingOptions()
	cmd := &cobra.Command{
		Use:   "cooling",
		Short: "Theoretical cooling time of a wall, for one material or the whole catalog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			defer o.sync()
			return o.Run(cmd.Context(), cmd)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CoolingOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.MaterialID, "material", "m", o.MaterialID, "Material id (default: every catalog material)")
	fs.Float64VarP(&o.WallThickness, "wall", "w", o.WallThickness, "Wall thickness in mm")
}

func (o *CoolingOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if !(o.WallThickness > 0) {
		return fmt.Errorf("wall thickness must be positive, got %v", o.WallThickness)
	}
	return nil
}

func (o *CoolingOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	c, err := o.Catalog(ctx)
	if err != nil {
		return err
	}

	materials := c.Materials
	if o.MaterialID != "" {
		m, err := c.ResolveMaterial(o.MaterialID, catalog.LookupStrict)
		if err != nil {
			return err
		}
		materials = []catalog.Material{m}
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MATERIAL\tNAME\tWALL (mm)\tCOOLING (s)")
	for _, m := range materials {
		if err := estimate.ValidateThermal(m); err != nil {
			o.Logger().Warn("skipping material", zap.String("materialId", m.ID), zap.Error(err))
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", m.ID, m.Name, o.WallThickness, "n/a")
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\n", m.ID, m.Name, o.WallThickness, estimate.CoolingTime(m, o.WallThickness))
	}
	return tw.Flush()
}
