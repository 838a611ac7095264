// Package report renders the sizing-run summary document: key findings,
// the constants the run assumed, and the full per-threshold table.
package report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/BanAutomation/battery-api/internal/model"
	"github.com/BanAutomation/battery-api/internal/sweep"
)

// Payback periods beyond this are not worth recommending.
const maxReasonablePaybackYears = 10.0

// Params carries the run constants quoted in the report narrative.
type Params struct {
	Unit        model.UnitSpec
	Economics   model.EconomicsParams
	Window      model.Window
	SweepStart  float64
	SweepEnd    float64
	SweepStep   float64
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Build renders the report for an ordered sweep result. Rows are presented
// unmodified, in the order given.
func Build(rows []sweep.Row, p Params) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Battery Storage Sizing Analysis", false)

	writeSummaryPage(pdf, rows, p)
	writeTablePage(pdf, rows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummaryPage(pdf *gofpdf.Fpdf, rows []sweep.Row, p Params) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Battery Storage Sizing Analysis", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Analysis period: %s to %s, daily window %s",
		fmtDate(p.PeriodStart), fmtDate(p.PeriodEnd), p.Window), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	bestPayback, bestEfficiency, under5y := pickFindings(rows)

	section(pdf, "Key Findings")
	if bestPayback == nil {
		line(pdf, "No configuration achieves a payback under %.0f years in the analysis range.",
			maxReasonablePaybackYears)
	} else {
		line(pdf, "Best payback: %.2f years at a %.0f kW threshold (%d kWh, %d units, %.1f kW peak reduction).",
			*bestPayback.PaybackYears, bestPayback.ThresholdKW, bestPayback.MinCapacityKWh,
			bestPayback.MinUnitsRequired, bestPayback.HighestPeakShavedKW)
	}
	if bestEfficiency != nil {
		line(pdf, "Highest efficiency: %.4f kW/kWh at a %.0f kW threshold (payback %.2f years, %d kWh).",
			*bestEfficiency.Efficiency, bestEfficiency.ThresholdKW,
			*bestEfficiency.PaybackYears, bestEfficiency.MinCapacityKWh)
	}
	if len(under5y) > 0 {
		minH, maxH := under5y[0].ThresholdKW, under5y[0].ThresholdKW
		minCap, maxCap := under5y[0].MinCapacityKWh, under5y[0].MinCapacityKWh
		for _, r := range under5y[1:] {
			minH = math.Min(minH, r.ThresholdKW)
			maxH = math.Max(maxH, r.ThresholdKW)
			if r.MinCapacityKWh < minCap {
				minCap = r.MinCapacityKWh
			}
			if r.MinCapacityKWh > maxCap {
				maxCap = r.MinCapacityKWh
			}
		}
		line(pdf, "%d configurations achieve a payback under 5 years, at thresholds %.0f-%.0f kW and %d-%d kWh installed.",
			len(under5y), minH, maxH, minCap, maxCap)
	} else {
		line(pdf, "No configuration achieves a payback under 5 years with the current economics; consider reviewing capital cost or additional revenue streams.")
	}
	pdf.Ln(4)

	section(pdf, "Economic Parameters")
	line(pdf, "Capital cost: %.0f per kWh", p.Economics.CapexPerKWh)
	line(pdf, "MD tariff: %.2f per kW, billed %d periods per year",
		p.Economics.DemandTariffPerKW, p.Economics.BillingPeriodsPerYear)
	line(pdf, "Battery unit: %.0f kWh nameplate, %.0f kW max discharge",
		p.Unit.NameplateEnergyKWh, p.Unit.MaxPowerKW)
	pdf.Ln(4)

	section(pdf, "Analysis Range")
	line(pdf, "Threshold sweep: %.0f to %.0f kW in %.0f kW steps (one step past the bound included)",
		p.SweepStart, p.SweepEnd, math.Abs(p.SweepStep))
	line(pdf, "Thresholds evaluated: %d", len(rows))
}

func writeTablePage(pdf *gofpdf.Fpdf, rows []sweep.Row) {
	pdf.AddPageFormat("L", gofpdf.SizeType{Wd: 210, Ht: 297})
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Threshold Sweep Results", "", 1, "L", false, 0, "")

	widths := []float64{18, 22, 24, 22, 24, 14, 18, 38, 18, 20, 12, 12, 12, 12}
	pdf.SetFont("Helvetica", "B", 6.5)
	for i, name := range sweep.Columns {
		pdf.CellFormat(widths[i], 6, name, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 6.5)
	for _, r := range rows {
		cells := []string{
			fmt.Sprintf("%.0f", r.ThresholdKW),
			fmt.Sprintf("%.3f", r.HighestEnergyKWh),
			fmtDate(r.HighestEnergyDay),
			fmt.Sprintf("%.3f", r.HighestPeakShavedKW),
			fmtDate(r.HighestPeakDay),
			fmt.Sprintf("%d", r.MinUnitsRequired),
			fmt.Sprintf("%d", r.MinCapacityKWh),
			string(r.LimitingFactor),
			fmtOptional(r.PaybackYears, "%.3f"),
			fmtOptional(r.Efficiency, "%.6f"),
			fmtBool(r.FitsUnits[0]),
			fmtBool(r.FitsUnits[1]),
			fmtBool(r.FitsUnits[2]),
			fmtBool(r.FitsUnits[3]),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 5, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// pickFindings scans rows with defined economics for the best payback and
// best efficiency under the reasonable-payback cutoff, plus all rows under a
// 5-year payback.
func pickFindings(rows []sweep.Row) (bestPayback, bestEfficiency *sweep.Row, under5y []sweep.Row) {
	for i := range rows {
		r := &rows[i]
		if r.PaybackYears == nil || r.Efficiency == nil {
			continue
		}
		if *r.PaybackYears > maxReasonablePaybackYears {
			continue
		}
		if bestPayback == nil || *r.PaybackYears < *bestPayback.PaybackYears {
			bestPayback = r
		}
		if bestEfficiency == nil || *r.Efficiency > *bestEfficiency.Efficiency {
			bestEfficiency = r
		}
		if *r.PaybackYears <= 5 {
			under5y = append(under5y, *r)
		}
	}
	return bestPayback, bestEfficiency, under5y
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func line(pdf *gofpdf.Fpdf, format string, args ...any) {
	pdf.MultiCell(0, 5.5, fmt.Sprintf(format, args...), "", "L", false)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func fmtOptional(x *float64, format string) string {
	if x == nil {
		return "-"
	}
	return fmt.Sprintf(format, *x)
}

func fmtBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
