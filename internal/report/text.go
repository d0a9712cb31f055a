package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

type TextRenderer struct{}

func (r *TextRenderer) SupportedFormat() Format {
	return FormatText
}

func (r *TextRenderer) Render(w io.Writer, rep *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p := rep.Project
	title := p.Name
	if p.Number != "" {
		title += " (" + p.Number + ")"
	}
	fmt.Fprintf(tw, "Project\t%s\n", title)
	if p.Client != "" {
		fmt.Fprintf(tw, "Client\t%s\n", p.Client)
	}
	fmt.Fprintf(tw, "Material / machine\t%s / %s, %d cavities\n", p.MaterialID, p.MachineID, p.Cavities)
	fmt.Fprintf(tw, "Annual volume\t%s\n", p.AnnualVolume.Text(0))
	fmt.Fprintln(tw)

	for _, f := range rep.KPIs {
		fmt.Fprintf(tw, "%s\t%s\n", f.Label, f)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "COMPONENT\tBASIS\tUSD/PART\tSHARE")
	for _, l := range rep.Breakdown {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%%\n", l.Label, l.Basis, l.USD.Text(4), l.Share.Text(1))
	}
	fmt.Fprintf(tw, "Total\t\t%s\t\n", rep.Total.Text(4))
	fmt.Fprintln(tw)

	for _, f := range rep.Technical {
		fmt.Fprintf(tw, "%s\t%s\n", f.Label, f)
	}

	for _, msg := range rep.Warnings {
		fmt.Fprintf(tw, "\nWARNING: %s", msg)
	}
	if len(rep.Warnings) > 0 {
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}
