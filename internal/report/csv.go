package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

type CSVRenderer struct{}

func (r *CSVRenderer) SupportedFormat() Format {
	return FormatCSV
}

func (r *CSVRenderer) Render(w io.Writer, rep *Report) error {
	var rows [][]string

	p := rep.Project
	rows = append(rows, []string{"INJECTION MOLDING COST ESTIMATE"})
	rows = append(rows, []string{"Project", p.Name})
	rows = append(rows, []string{"Project Number", p.Number})
	rows = append(rows, []string{"Client", p.Client})
	rows = append(rows, []string{"Material", p.MaterialID})
	rows = append(rows, []string{"Machine", p.MachineID})
	rows = append(rows, []string{"Cavities", fmt.Sprintf("%d", p.Cavities)})
	rows = append(rows, []string{"Annual Volume", p.AnnualVolume.Text(0)})
	rows = append(rows, []string{""})

	rows = r.addFigures(rows, "KEY FIGURES", rep.KPIs)

	rows = append(rows, []string{"COST BREAKDOWN"})
	rows = append(rows, []string{"Component", "Basis", "USD per Part", "Share %"})
	for _, l := range rep.Breakdown {
		rows = append(rows, []string{l.Label, l.Basis, l.USD.Text(6), l.Share.Text(2)})
	}
	rows = append(rows, []string{"Total", "", rep.Total.Text(6), ""})
	rows = append(rows, []string{""})

	rows = r.addFigures(rows, "TECHNICAL", rep.Technical)

	if len(rep.Warnings) > 0 {
		rows = append(rows, []string{"WARNINGS"})
		for _, msg := range rep.Warnings {
			rows = append(rows, []string{msg})
		}
	}

	writer := csv.NewWriter(w)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

func (r *CSVRenderer) addFigures(rows [][]string, title string, figures []Figure) [][]string {
	rows = append(rows, []string{title})
	rows = append(rows, []string{"Metric", "Value", "Unit"})
	for _, f := range figures {
		rows = append(rows, []string{f.Label, f.Value.Text(f.Precision), f.Unit})
	}
	return append(rows, []string{""})
}
