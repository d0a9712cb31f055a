package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Summary"
	SheetBreakdown = "Breakdown"
)

type XLSXRenderer struct{}

func (r *XLSXRenderer) SupportedFormat() Format {
	return FormatXLSX
}

func (r *XLSXRenderer) Render(w io.Writer, rep *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetBreakdown); err != nil {
		return fmt.Errorf("failed to create breakdown sheet: %w", err)
	}

	p := rep.Project
	summary := [][]any{
		{"Project", p.Name},
		{"Project Number", p.Number},
		{"Client", p.Client},
		{"Region", p.Region},
		{"Commodity", p.Commodity},
		{"Material", p.MaterialID},
		{"Machine", p.MachineID},
		{"Cavities", p.Cavities},
		{"Annual Volume", cellValue(p.AnnualVolume)},
		{},
		{"Metric", "Value", "Unit"},
	}
	for _, fig := range rep.KPIs {
		summary = append(summary, []any{fig.Label, cellValue(fig.Value), fig.Unit})
	}
	for _, fig := range rep.Technical {
		summary = append(summary, []any{fig.Label, cellValue(fig.Value), fig.Unit})
	}
	for _, msg := range rep.Warnings {
		summary = append(summary, []any{"Warning", msg})
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	breakdown := [][]any{{"Component", "Basis", "USD per Part", "Share %"}}
	for _, l := range rep.Breakdown {
		breakdown = append(breakdown, []any{l.Label, l.Basis, cellValue(l.USD), cellValue(l.Share)})
	}
	breakdown = append(breakdown, []any{"Total", "", cellValue(rep.Total)})
	if err := writeRows(f, SheetBreakdown, breakdown); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// cellValue keeps finite amounts numeric so the sheet can sum them.
func cellValue(a Amount) any {
	if !a.Finite() {
		return a.Text(0)
	}
	return float64(a)
}
