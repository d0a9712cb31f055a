// Package report turns an estimate into a document for people: a plain text
// summary, JSON, YAML, CSV or an Excel workbook.
package report

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatCSV, FormatXLSX}
}

type Renderer interface {
	Render(w io.Writer, r *Report) error
	SupportedFormat() Format
}

// Amount is a number that may be NaN or infinite. Such values marshal as JSON
// null and print as "n/a".
type Amount float64

func (a Amount) Finite() bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Finite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(a))
}

// Text prints a with prec decimals.
func (a Amount) Text(prec int) string {
	if !a.Finite() {
		return "n/a"
	}
	return strconv.FormatFloat(float64(a), 'f', prec, 64)
}

type Project struct {
	Name         string `json:"name"`
	Number       string `json:"number,omitempty"`
	Client       string `json:"client,omitempty"`
	Region       string `json:"region,omitempty"`
	Commodity    string `json:"commodity,omitempty"`
	MaterialID   string `json:"materialId"`
	MachineID    string `json:"machineId"`
	Cavities     int    `json:"cavities"`
	AnnualVolume Amount `json:"annualVolume"`
}

// Figure is a single labelled value such as a KPI or a technical result.
type Figure struct {
	Label     string `json:"label"`
	Value     Amount `json:"value"`
	Unit      string `json:"unit"`
	Precision int    `json:"-"`
}

func (f Figure) String() string {
	v := f.Value.Text(f.Precision)
	if f.Unit == "" || !f.Value.Finite() {
		return v
	}
	return v + " " + f.Unit
}

// CostLine is one row of the per-part cost cascade.
type CostLine struct {
	Label string `json:"label"`
	Basis string `json:"basis"`
	USD   Amount `json:"usd"`
	Share Amount `json:"share"` // % of the total per part
}

type Report struct {
	Project   Project    `json:"project"`
	KPIs      []Figure   `json:"kpis"`
	Breakdown []CostLine `json:"breakdown"`
	Total     Amount     `json:"totalCostPerPart"`
	Technical []Figure   `json:"technical"`
	Warnings  []string   `json:"warnings,omitempty"`
}
