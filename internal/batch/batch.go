// Package batch runs flexural analyses over the rows of a spreadsheet and
// writes the results back as a workbook.
package batch

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/rccalc/internal/flexure"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/xuri/excelize/v2"
)

// Columns expected on the first sheet, after one header row
var Columns = []string{"name", "b (mm)", "h (mm)", "cover (mm)", "fc (MPa)", "fy (MPa)", "As (mm²)", "M (kN·m)"}

// required is the number of leading columns that must be present; M is optional
const required = 7

// ErrEmptySheet is returned when the workbook has no data rows
var ErrEmptySheet = errors.New("batch: sheet has no data rows")

// Row is one section read from the workbook
type Row struct {
	Line  int // 1-based sheet row
	Name  string
	B     float64
	H     float64
	Cover float64
	Fc    float64
	Fy    float64
	As    float64
	M     float64 // kN·m, 0 when not given
	Err   error   // parse failure, the row is reported but not analyzed
}

// Result pairs a row with its analysis
type Result struct {
	Row      Row
	Analysis *flexure.AnalysisResult
	Err      error
}

// Adequate reports Mu >= M for rows that carry a design moment
func (r Result) Adequate() bool {
	if r.Err != nil || r.Analysis == nil {
		return false
	}
	return r.Row.M <= 0 || r.Analysis.Mu >= r.Row.M*1e6
}

// ReadFlexureRows reads the first sheet of an xlsx workbook. Blank rows are
// skipped; rows that cannot be parsed are returned with Err set.
func ReadFlexureRows(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	var out []Row
	for i := 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		out = append(out, parseRow(i+1, rows[i]))
	}
	if len(out) == 0 {
		return nil, ErrEmptySheet
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseRow(line int, cells []string) Row {
	row := Row{Line: line}
	if len(cells) < required {
		row.Err = fmt.Errorf("row %d: expected %d columns, got %d", line, required, len(cells))
		return row
	}
	row.Name = strings.TrimSpace(cells[0])

	fields := []*float64{&row.B, &row.H, &row.Cover, &row.Fc, &row.Fy, &row.As}
	for j, dst := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(cells[j+1]), 64)
		if err != nil {
			row.Err = fmt.Errorf("row %d column %q: %w", line, Columns[j+1], err)
			return row
		}
		*dst = v
	}
	if len(cells) > required && strings.TrimSpace(cells[required]) != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(cells[required]), 64)
		if err != nil {
			row.Err = fmt.Errorf("row %d column %q: %w", line, Columns[required], err)
			return row
		}
		row.M = v
	}
	return row
}

// Run analyzes every row against the profile. Failures are kept per row.
func Run(rows []Row, p profile.Profile) []Result {
	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		res := Result{Row: row}
		if row.Err != nil {
			res.Err = row.Err
			results = append(results, res)
			continue
		}

		g, err := section.NewGeometry(row.B, row.H, row.Cover, 0)
		if err != nil {
			res.Err = fmt.Errorf("row %d: %w", row.Line, err)
			results = append(results, res)
			continue
		}
		beam := flexure.NewSinglyReinforced(g, section.Material{Fc: row.Fc, Fy: row.Fy}, p)
		if res.Analysis, err = beam.Analyze(row.As); err != nil {
			res.Err = fmt.Errorf("row %d: %w", row.Line, err)
		}
		results = append(results, res)
	}
	return results
}

var resultHeader = []interface{}{
	"name", "x (mm)", "ξ", "ξb", "ρ", "Mu (kN·m)", "M (kN·m)",
	"over-reinforced", "ρ ≥ ρmin", "ρ ≤ ρmax", "adequate", "notes",
}

// WriteResults writes the results as a single-sheet xlsx workbook
func WriteResults(w io.Writer, results []Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &resultHeader); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "L1", bold); err != nil {
		return err
	}

	for i, res := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := resultRow(res)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 16); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "L", "L", 60); err != nil {
		return err
	}
	return f.Write(w)
}

func resultRow(res Result) []interface{} {
	name := res.Row.Name
	if name == "" {
		name = fmt.Sprintf("row %d", res.Row.Line)
	}
	if res.Err != nil {
		return []interface{}{name, "", "", "", "", "", "", "", "", "", false, res.Err.Error()}
	}

	a := res.Analysis
	var m interface{} = ""
	if res.Row.M > 0 {
		m = res.Row.M
	}
	return []interface{}{
		name,
		round(a.X, 1),
		round(a.Xi, 4),
		a.XiB,
		round(a.Rho, 5),
		round(a.Mu/1e6, 2),
		m,
		a.OverReinforced,
		a.MeetsMinReinf,
		a.MeetsMaxReinf,
		res.Adequate(),
		a.Message,
	}
}

func round(v float64, places int) float64 {
	s := strconv.FormatFloat(v, 'f', places, 64)
	r, _ := strconv.ParseFloat(s, 64)
	return r
}
