package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Simplici0/moldcost/internal/db"
	"github.com/Simplici0/moldcost/internal/migrations"
	"github.com/Simplici0/moldcost/internal/seed"
)

func NewCmdCatalog() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect or initialise the material, machine and region catalog.",
	}
	cmd.AddCommand(NewCmdCatalogList())
	cmd.AddCommand(NewCmdCatalogInit())
	return cmd
}

type CatalogListOptions struct {
	GlobalOptions

	Output string
}

func DefaultCatalogListOptions() *CatalogListOptions {
	return &CatalogListOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        textFormat,
	}
}

func NewCmdCatalogList() *cobra.Command {
	o := DefaultCatalogListOptions()
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List materials, machines and regions.",
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

func (o *CatalogListOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalListOutputTypes, ", ")))
}

func (o *CatalogListOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output, legalListOutputTypes)
}

func (o *CatalogListOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	c, err := o.Catalog(ctx)
	if err != nil {
		return err
	}
	if o.Output != textFormat {
		return printStructured(cmd.OutOrStdout(), o.Output, c)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MATERIAL\tNAME\tDENSITY\tUSD/KG\tMELT\tMOLD\tEJECT")
	for _, m := range c.Materials {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.0f\t%.0f\t%.0f\n", m.ID, m.Name, m.Density, m.PricePerKg, m.MeltTemp, m.MoldTemp, m.EjectTemp)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "MACHINE\tNAME\tCLAMP (kN)\tUSD/H\tSHOT (L)")
	for _, m := range c.Machines {
		fmt.Fprintf(tw, "%s\t%s\t%.0f\t%.2f\t%.2f\n", m.ID, m.Name, m.ClampingForce, m.HourlyRate, m.MeltingVolume)
	}
	if len(c.Regions) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "REGION\tNAME\tMULTIPLIER")
		for _, r := range c.Regions {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\n", r.ID, r.Name, r.Multiplier)
		}
	}
	return tw.Flush()
}

type CatalogInitOptions struct {
	GlobalOptions

	Path string
}

func DefaultCatalogInitOptions() *CatalogInitOptions {
	return &CatalogInitOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Path:          "moldcost.db",
	}
}

func NewCmdCatalogInit() *cobra.Command {
	o := DefaultCatalogInitOptions()
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or update a SQLite catalog database from the reference catalog.",
		Long: `Create or update a SQLite catalog database.

Migrations are applied, then every material, machine and region of the source
catalog (--catalog, or the embedded one) is inserted unless its id already
exists. Running it twice is harmless.`,
		Args: cobra.NoArgs,
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

func (o *CatalogInitOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Path, "db", o.Path, "SQLite database path")
}

func (o *CatalogInitOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.Path == "" {
		return fmt.Errorf("--db must not be empty")
	}
	if o.CatalogDB != "" {
		return fmt.Errorf("--catalog-db cannot be the seed source, use --catalog")
	}
	return nil
}

func (o *CatalogInitOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	// The seed source is a file or the embedded catalog, never the target.
	o.cfg.CatalogDB = ""
	source, err := o.Catalog(ctx)
	if err != nil {
		return err
	}

	sqlDB, err := db.Open(ctx, o.Path)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migrations.Up(sqlDB); err != nil {
		return err
	}
	version, err := migrations.Version(sqlDB)
	if err != nil {
		return err
	}

	stats, err := seed.Run(ctx, sqlDB, source)
	if err != nil {
		return err
	}

	o.Logger().Info("catalog database ready",
		zap.String("path", o.Path),
		zap.Int64("schemaVersion", version),
		zap.Int("inserted", stats.Inserts),
		zap.Int("skipped", stats.Skipped))

	fmt.Fprintf(cmd.OutOrStdout(), "%s: schema v%d, %d inserted, %d already present\n", o.Path, version, stats.Inserts, stats.Skipped)
	return nil
}
