// Package report renders breakdown reports: one xlsx per target property,
// a row per component instance, and a TOTAL row.
package report

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/sysarch/reportgen/pkg/extract"
	"github.com/sysarch/reportgen/pkg/model"
)

// Spec describes one breakdown report.
type Spec struct {
	Name     string // registry action name
	Title    string // sheet name and human title
	Property string // sanitized stereotype property to sum
	Header   string // value column header
	FileName string // output file, overwritten on every run
}

var (
	Mass = Spec{
		Name:     "mass_breakdown",
		Title:    "Mass Breakdown",
		Property: "Mass",
		Header:   "Mass (kg)",
		FileName: "mass_breakdown.xlsx",
	}
	Cost = Spec{
		Name:     "cost_breakdown",
		Title:    "Cost Breakdown",
		Property: "Cost",
		Header:   "Cost",
		FileName: "cost_breakdown.xlsx",
	}
	AirResistance = Spec{
		Name:     "air_resistance_breakdown",
		Title:    "Air Resistance Breakdown",
		Property: "AirResistance",
		Header:   "Air Resistance",
		FileName: "air_resistance_breakdown.xlsx",
	}
)

// Row is one component instance's contribution.
type Row struct {
	Occurrence string
	Component  string
	Value      float64
}

// Breakdown is a fully aggregated report, ready to write.
type Breakdown struct {
	Spec  Spec
	Rows  []Row
	Total float64
}

// Build re-extracts occurrence groups from the tree and sums the target
// property. Missing or non-numeric values contribute zero.
func Build(root *model.Architecture, spec Spec) *Breakdown {
	b := &Breakdown{Spec: spec}
	for _, g := range extract.Groups(root) {
		for _, m := range g.Members {
			v, _ := m.Props.Get(spec.Property)
			val := v.Float()
			b.Rows = append(b.Rows, Row{Occurrence: g.Key, Component: m.Name, Value: val})
			b.Total += val
		}
	}
	return b
}

// Write renders the breakdown to dir as a single-sheet xlsx, overwriting
// any prior file. Styling is best-effort: a styling failure is logged and
// the unstyled data file is still written.
func (b *Breakdown) Write(dir string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := b.Spec.Title
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", errors.Wrapf(err, "failed to create sheet %q", sheet)
	}

	header := []interface{}{"Occurrence", "Component", b.Spec.Header}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", errors.Wrap(err, "failed to write header row")
	}
	for i, r := range b.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{r.Occurrence, r.Component, r.Value}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}
	totalCell, _ := excelize.CoordinatesToCellName(1, len(b.Rows)+2)
	total := []interface{}{"TOTAL", "", b.Total}
	if err := f.SetSheetRow(sheet, totalCell, &total); err != nil {
		return "", errors.Wrap(err, "failed to write total row")
	}

	if err := applyStyling(f, sheet, len(b.Rows)); err != nil {
		logrus.WithError(err).WithField("report", b.Spec.Name).
			Warn("report styling failed, writing unstyled file")
	}

	path := filepath.Join(dir, b.Spec.FileName)
	if err := f.SaveAs(path); err != nil {
		return "", errors.Wrapf(err, "failed to write report file %s", path)
	}
	return path, nil
}
