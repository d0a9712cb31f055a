package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Simplici0/moldcost/internal/mhr"
)

type MHROptions struct {
	GlobalOptions

	Inputs mhr.Inputs
	Output string
}

func DefaultMHROptions() *MHROptions {
	return &MHROptions{
		GlobalOptions: DefaultGlobalOptions(),
		Inputs:        mhr.DefaultInputs(),
		Output:        textFormat,
	}
}

func NewCmdMHR() *cobra.Command {
	o := DefaultMHROptions()
	cmd := &cobra.Command{
		Use:   "mhr",
		Short: "Derive a machine hour rate from investment and operating figures.",
		Long: `Derive a machine hour rate from investment and operating figures.

The total can be passed to 'estimate --hourly-rate'.`,
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

func (o *MHROptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	in := &o.Inputs
	fs.Float64Var(&in.AcquisitionValue, "acquisition", in.AcquisitionValue, "Machine acquisition value, USD")
	fs.Float64Var(&in.InstallationPercent, "installation", in.InstallationPercent, "Installation expense, % of acquisition")
	fs.Float64Var(&in.DepreciationYears, "depreciation-years", in.DepreciationYears, "Depreciation period in years")
	fs.Float64Var(&in.InterestRatePercent, "interest", in.InterestRatePercent, "Imputed interest rate, %")
	fs.Float64Var(&in.LeasingRate, "leasing", in.LeasingRate, "Floor space leasing rate, USD/sqft/month")
	fs.Float64Var(&in.RatedPowerKW, "power", in.RatedPowerKW, "Rated power, kW")
	fs.Float64Var(&in.EnergyCostPerKWh, "energy-cost", in.EnergyCostPerKWh, "Energy cost, USD/kWh")
	fs.Float64Var(&in.MaintenancePercent, "maintenance", in.MaintenancePercent, "Yearly maintenance, % of investment")
	fs.Float64Var(&in.ProductionDays, "days", in.ProductionDays, "Production days per year")
	fs.Float64Var(&in.ShiftsPerDay, "shifts", in.ShiftsPerDay, "Shifts per day")
	fs.Float64Var(&in.HoursPerShift, "hours-per-shift", in.HoursPerShift, "Hours per shift")
	fs.Float64Var(&in.UtilizationPercent, "utilization", in.UtilizationPercent, "Utilization, %")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalListOutputTypes, ", ")))
}

func (o *MHROptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := validateOutput(o.Output, legalListOutputTypes); err != nil {
		return err
	}
	return mhr.Validate(o.Inputs)
}

func (o *MHROptions) Run(ctx context.Context, cmd *cobra.Command) error {
	b := mhr.Compute(o.Inputs)
	if o.Output != textFormat {
		return printStructured(cmd.OutOrStdout(), o.Output, b)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total investment\t%.2f USD\n", b.TotalInvestment)
	fmt.Fprintf(tw, "Capacity\t%.2f h/year\n", b.CapacityHours)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Depreciation\t%.2f USD/h\n", b.Depreciation)
	fmt.Fprintf(tw, "Interest\t%.2f USD/h\n", b.Interest)
	fmt.Fprintf(tw, "Space\t%.2f USD/h\n", b.Space)
	fmt.Fprintf(tw, "Fixed\t%.2f USD/h\n", b.Fixed)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Energy\t%.2f USD/h\n", b.Energy)
	fmt.Fprintf(tw, "Maintenance\t%.2f USD/h\n", b.Maintenance)
	fmt.Fprintf(tw, "Variable\t%.2f USD/h\n", b.Variable)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Machine hour rate\t%.2f USD/h\n", b.Total)
	return tw.Flush()
}
