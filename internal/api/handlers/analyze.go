package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BanAutomation/battery-api/internal/api/models"
	"github.com/BanAutomation/battery-api/internal/config"
	"github.com/BanAutomation/battery-api/internal/data"
	"github.com/BanAutomation/battery-api/internal/demand"
	"github.com/BanAutomation/battery-api/internal/report"
	"github.com/BanAutomation/battery-api/internal/storage"
	"github.com/BanAutomation/battery-api/internal/sweep"
)

// Artifact names; the store prefixes them with a unique key.
const (
	csvArtifactName = "threshold_sweep_stats.csv"
	pdfArtifactName = "threshold_sweep_report.pdf"
)

// AnalyzeHandler runs the sizing pipeline for uploaded demand workbooks.
type AnalyzeHandler struct {
	cfg    *config.Config
	store  storage.Store
	logger *zap.Logger
}

func NewAnalyzeHandler(cfg *config.Config, store storage.Store, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{cfg: cfg, store: store, logger: logger}
}

// Analyze handles POST /api/v1/analyze: workbook in, artifact URLs out.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "a workbook file upload is required")
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "failed to open uploaded file")
		return
	}
	defer src.Close()

	sheet := req.SheetName
	if sheet == "" {
		sheet = h.cfg.Sheet
	}

	readings, err := data.ReadDemandXLSX(src, sheet)
	if err != nil {
		var srcErr *data.SourceError
		if errors.As(err, &srcErr) {
			respondError(c, http.StatusBadRequest, srcErr.Code, srcErr.Message)
			return
		}
		respondError(c, http.StatusBadRequest, "INVALID_WORKBOOK", err.Error())
		return
	}

	days, err := demand.LoadMonths(readings, h.cfg.ToSelectors(), h.cfg.ToWindow())
	if err != nil {
		var noData *demand.NoDataError
		var noDays *demand.NoQualifyingDaysError
		switch {
		case errors.As(err, &noData):
			respondError(c, http.StatusBadRequest, "NO_DATA", noData.Error())
		case errors.As(err, &noDays):
			respondError(c, http.StatusBadRequest, "NO_QUALIFYING_DAYS", noDays.Error())
		default:
			respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		}
		return
	}

	thresholds, err := sweep.BuildThresholds(h.cfg.Sweep.StartKW, h.cfg.Sweep.EndKW, h.cfg.Sweep.StepKW)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_SWEEP", err.Error())
		return
	}

	result, err := sweep.New().Run(days, h.cfg.IntervalHours, thresholds, h.cfg.ToUnitSpec(), h.cfg.ToEconomics())
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_SWEEP", err.Error())
		return
	}

	var csvBuf bytes.Buffer
	if err := sweep.WriteCSV(&csvBuf, result.Rows); err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYSIS_ERROR", err.Error())
		return
	}

	periodStart, periodEnd := demand.Span(days)
	pdfBytes, err := report.Build(result.Rows, report.Params{
		Unit:        h.cfg.ToUnitSpec(),
		Economics:   h.cfg.ToEconomics(),
		Window:      h.cfg.ToWindow(),
		SweepStart:  h.cfg.Sweep.StartKW,
		SweepEnd:    h.cfg.Sweep.EndKW,
		SweepStep:   h.cfg.Sweep.StepKW,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYSIS_ERROR", err.Error())
		return
	}

	ctx := c.Request.Context()
	csvURL, err := h.store.Put(ctx, csvArtifactName, csvBuf.Bytes(), "text/csv")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}
	pdfURL, err := h.store.Put(ctx, pdfArtifactName, pdfBytes, "application/pdf")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	resp := models.AnalyzeResponse{
		ID:           uuid.New().String(),
		CSVURL:       csvURL,
		PDFURL:       pdfURL,
		RowCount:     len(result.Rows),
		DaysAnalyzed: len(days),
	}
	if req.IncludeRows {
		resp.Rows = make([]models.SweepRow, 0, len(result.Rows))
		for _, r := range result.Rows {
			resp.Rows = append(resp.Rows, models.FromSweepRow(r))
		}
	}

	h.logger.Info("analysis completed",
		zap.String("id", resp.ID),
		zap.Int("days", resp.DaysAnalyzed),
		zap.Int("rows", resp.RowCount),
		zap.String("csv_url", csvURL),
		zap.String("pdf_url", pdfURL),
	)
	c.JSON(http.StatusOK, resp)
}

// GetConfig handles GET /api/v1/config, exposing the effective run settings.
func (h *AnalyzeHandler) GetConfig(c *gin.Context) {
	months := make([]string, 0, len(h.cfg.Months))
	for _, sel := range h.cfg.ToSelectors() {
		months = append(months, sel.String())
	}
	c.JSON(http.StatusOK, models.ConfigResponse{
		Sheet:         h.cfg.Sheet,
		IntervalHours: h.cfg.IntervalHours,
		WindowStart:   h.cfg.Window.StartHour,
		WindowEnd:     h.cfg.Window.EndHour,
		Months:        months,
		Sweep: models.SweepSettings{
			StartKW: h.cfg.Sweep.StartKW,
			EndKW:   h.cfg.Sweep.EndKW,
			StepKW:  h.cfg.Sweep.StepKW,
		},
		Unit: models.UnitSettings{
			NameplateEnergyKWh: h.cfg.Unit.NameplateEnergyKWh,
			MaxPowerKW:         h.cfg.Unit.MaxPowerKW,
		},
		Economics: models.EconomicsValues{
			CapexPerKWh:           h.cfg.Economics.CapexPerKWh,
			DemandTariffPerKW:     h.cfg.Economics.DemandTariffPerKW,
			BillingPeriodsPerYear: h.cfg.Economics.BillingPeriodsPerYear,
		},
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}
