package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"

	"github.com/Simplici0/moldcost/internal/catalog"
	"github.com/Simplici0/moldcost/internal/estimate"
	"github.com/Simplici0/moldcost/internal/report"
)

type EstimateOptions struct {
	GlobalOptions

	StateFile     string
	Output        string
	OutFile       string
	Strict        bool
	MaterialModel string
	HourlyRate    float64
}

func DefaultEstimateOptions() *EstimateOptions {
	return &EstimateOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        string(report.FormatText),
	}
}

func NewCmdEstimate() *cobra.Command {
	o := DefaultEstimateOptions()
	cmd := &cobra.Command{
		Use:   "estimate [-f STATE]",
		Short: "Estimate the per-part and annual cost of a molded part.",
		Long: `Estimate the cost of an injection molded part.

The reference project is used as a starting point; fields present in the
state file (YAML or JSON, "-" for stdin) replace its values.`,
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

func (o *EstimateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	formats := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		formats = append(formats, string(f))
	}

	fs.StringVarP(&o.StateFile, "file", "f", o.StateFile, "Estimation state file (YAML or JSON)")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(formats, ", ")))
	fs.StringVar(&o.OutFile, "out", o.OutFile, "Write the report to this file instead of stdout")
	fs.BoolVar(&o.Strict, "strict", o.Strict, "Fail on unknown material or machine ids instead of using the first catalog entry")
	fs.StringVar(&o.MaterialModel, "material-model", o.MaterialModel, "Material pricing: flat (catalog price, regrind discount) or layered (blend of the state's layers)")
	fs.Float64Var(&o.HourlyRate, "hourly-rate", o.HourlyRate, "Machine hour rate in USD/h, overrides the catalog rate")
}

func (o *EstimateOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	if o.MaterialModel != "" {
		o.cfg.MaterialModel = o.MaterialModel
	}
	return nil
}

func (o *EstimateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	formats := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		formats = append(formats, string(f))
	}
	if err := validateOutput(o.Output, formats); err != nil {
		return err
	}
	if report.Format(o.Output) == report.FormatXLSX && o.OutFile == "" {
		return errors.New("xlsx output requires --out")
	}

	if o.MaterialModel == "" {
		o.MaterialModel = o.cfg.MaterialModel
	}
	if _, err := estimate.ParseMaterialModel(o.MaterialModel); err != nil {
		return err
	}
	if o.HourlyRate < 0 {
		return fmt.Errorf("hourly rate must not be negative, got %v", o.HourlyRate)
	}
	return nil
}

func (o *EstimateOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	logger := o.Logger()

	state, err := o.loadState(cmd)
	if err != nil {
		return err
	}
	if err := estimate.Validate(state); err != nil {
		return err
	}

	c, err := o.Catalog(ctx)
	if err != nil {
		return err
	}

	mode := o.lookupMode(o.Strict)
	model, _ := estimate.ParseMaterialModel(o.MaterialModel)
	engine := estimate.NewEngine(c, estimate.Options{
		Lookup:        mode,
		MaterialModel: model,
		HourlyRate:    o.HourlyRate,
	})

	results, err := engine.Calculate(state)
	if err != nil {
		return fmt.Errorf("calculate estimate: %w", err)
	}
	warnResults(logger, c, state, results)

	rep := report.Build(state, results)
	renderer, err := report.NewRenderer(report.Format(o.Output))
	if err != nil {
		return err
	}

	if o.OutFile == "" {
		return renderer.Render(cmd.OutOrStdout(), rep)
	}
	return writeFile(o.OutFile, func(w io.Writer) error { return renderer.Render(w, rep) })
}

func (o *EstimateOptions) loadState(cmd *cobra.Command) (estimate.EstimationState, error) {
	state := estimate.DefaultState()
	if o.StateFile != "" {
		data, err := readInput(cmd, o.StateFile)
		if err != nil {
			return state, fmt.Errorf("read state file: %w", err)
		}
		if err := yaml.Unmarshal(data, &state); err != nil {
			return state, fmt.Errorf("decode state file %s: %w", o.StateFile, err)
		}
	}
	if state.ProjectNumber == "" {
		now := time.Now()
		state.ProjectNumber = estimate.NewProjectNumber(now, rand.New(rand.NewPCG(uint64(now.UnixNano()), 0)))
	}
	return state, nil
}

// warnResults logs what the engine itself keeps silent about.
func warnResults(logger *zap.Logger, c *catalog.Catalog, state estimate.EstimationState, results estimate.CalculationResults) {
	if results.ResolvedMaterialID != state.MaterialID {
		logger.Warn("unknown material id, using fallback",
			zap.String("materialId", state.MaterialID), zap.String("fallback", results.ResolvedMaterialID))
	}
	if results.ResolvedMachineID != state.MachineID {
		logger.Warn("unknown machine id, using fallback",
			zap.String("machineId", state.MachineID), zap.String("fallback", results.ResolvedMachineID))
	}
	if m, ok := c.Material(results.ResolvedMaterialID); ok {
		if err := estimate.ValidateThermal(m); err != nil {
			logger.Warn("material thermal data unusable for cooling estimates", zap.String("materialId", m.ID), zap.Error(err))
		}
	}
	if !results.IsTonnageValid {
		logger.Warn("required tonnage exceeds machine clamping force",
			zap.Float64("requiredTonnage", results.RequiredTonnage), zap.String("machineId", results.ResolvedMachineID))
	}
	if bad := results.NonFinite(); len(bad) > 0 {
		logger.Warn("estimate contains non-finite values", zap.Strings("fields", bad))
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
