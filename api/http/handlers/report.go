package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/skillgap/api/http/presenter"
	"github.com/artem13815/skillgap/pkg/analysis"
	"github.com/artem13815/skillgap/pkg/metrics"
	"github.com/artem13815/skillgap/pkg/report"
)

type reportBuilder interface {
	Build(results []analysis.Result) (report.Report, error)
}

type ReportHandler struct {
	builder reportBuilder
	log     *zap.Logger
}

func NewReportHandler(builder reportBuilder, log *zap.Logger) *ReportHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportHandler{builder: builder, log: log}
}

// Download собирает PDF-отчёт из результатов анализа, присланных клиентом.
// @Summary Скачать PDF-отчёт
// @Tags    Отчёт
// @Accept  json
// @Produce application/pdf
// @Param   input body object true "{\"jobs\": [результаты анализа]}"
// @Success 200 {file} file "Career_Report.pdf"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /report [post]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	jobs, err := report.ValidatePayload(c.Body())
	if err != nil {
		metrics.ReportsTotal.WithLabelValues("invalid").Inc()
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	rep, err := h.builder.Build(jobs)
	metrics.ReportDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ReportsTotal.WithLabelValues("failed").Inc()
		h.log.Error("build report", zap.Int("jobs", len(jobs)), zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "failed to generate report")
	}
	metrics.ReportsTotal.WithLabelValues("ok").Inc()

	return presenter.File(c, rep.Filename, rep.ContentType, rep.Data)
}
