package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BanAutomation/battery-api/internal/config"
	"github.com/BanAutomation/battery-api/internal/data"
	"github.com/BanAutomation/battery-api/internal/demand"
	"github.com/BanAutomation/battery-api/internal/model"
	"github.com/BanAutomation/battery-api/internal/report"
	"github.com/BanAutomation/battery-api/internal/sweep"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "sweep":
		cmdSweep(os.Args[2:])
	case "days":
		cmdDays(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli sweep --data demand.xlsx --config configs/default.yaml --out-csv results/sweep.csv --out-pdf results/report.pdf")
	fmt.Println("  cli days  --data demand.xlsx --config configs/default.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - sweep writes the per-threshold stats CSV and the PDF summary report")
	fmt.Println("  - days prints the qualifying day series after window filtering")
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to demand workbook (xlsx)")
	cfgPath := fs.String("config", "configs/default.yaml", "Path to YAML config")
	outCSV := fs.String("out-csv", "results/threshold_sweep_stats.csv", "Output CSV path")
	outPDF := fs.String("out-pdf", "results/threshold_sweep_report.pdf", "Output PDF path")
	_ = fs.Parse(args)

	if *dataPath == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}

	cfg, days := loadDays(*dataPath, *cfgPath)

	thresholds, err := sweep.BuildThresholds(cfg.Sweep.StartKW, cfg.Sweep.EndKW, cfg.Sweep.StepKW)
	if err != nil {
		fatal(err)
	}
	result, err := sweep.New().Run(days, cfg.IntervalHours, thresholds, cfg.ToUnitSpec(), cfg.ToEconomics())
	if err != nil {
		fatal(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outCSV), 0o755); err != nil {
		fatal(err)
	}
	if err := sweep.WriteCSVFile(*outCSV, result.Rows); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(result.Rows), *outCSV)

	periodStart, periodEnd := demand.Span(days)
	pdfBytes, err := report.Build(result.Rows, report.Params{
		Unit:        cfg.ToUnitSpec(),
		Economics:   cfg.ToEconomics(),
		Window:      cfg.ToWindow(),
		SweepStart:  cfg.Sweep.StartKW,
		SweepEnd:    cfg.Sweep.EndKW,
		SweepStep:   cfg.Sweep.StepKW,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	if err != nil {
		fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(*outPDF), 0o755); err != nil {
		fatal(err)
	}
	if err := os.WriteFile(*outPDF, pdfBytes, 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote report to %s\n", *outPDF)
}

func cmdDays(args []string) {
	fs := flag.NewFlagSet("days", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to demand workbook (xlsx)")
	cfgPath := fs.String("config", "configs/default.yaml", "Path to YAML config")
	_ = fs.Parse(args)

	if *dataPath == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}

	_, days := loadDays(*dataPath, *cfgPath)

	fmt.Printf("%-12s %-8s %-10s %-10s\n", "date", "samples", "peak_kw", "first/last")
	for _, day := range days {
		peak := 0.0
		for _, d := range day.DemandKW {
			if d > peak {
				peak = d
			}
		}
		fmt.Printf("%-12s %-8d %-10.1f %s/%s\n",
			day.Date.Format("2006-01-02"),
			len(day.DemandKW),
			peak,
			day.Labels[0],
			day.Labels[len(day.Labels)-1],
		)
	}
}

func loadDays(dataPath, cfgPath string) (*config.Config, []model.DaySeries) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal(err)
	}

	f, err := os.Open(dataPath)
	if err != nil {
		fatal(err)
	}
	defer f.Close()

	readings, err := data.ReadDemandXLSX(f, cfg.Sheet)
	if err != nil {
		fatal(err)
	}
	days, err := demand.LoadMonths(readings, cfg.ToSelectors(), cfg.ToWindow())
	if err != nil {
		fatal(err)
	}
	return cfg, days
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
