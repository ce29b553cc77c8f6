package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillgap/api/http/presenter"
	"github.com/artem13815/skillgap/pkg/analysis"
)

var errFileTooLarge = errors.New("file too large")

type AnalysisHandler struct {
	uc analysis.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewAnalysisHandler(uc analysis.UseCase, maxBytes int64) *AnalysisHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &AnalysisHandler{uc: uc, maxBytes: maxBytes}
}

// Analyze сопоставляет навыки пользователя со всеми профессиями каталога.
// Навыки берутся из загруженного резюме (поле resume, PDF/DOCX) либо из поля skills.
// Если не передано ни то, ни другое, анализ выполняется с пустым набором навыков.
// @Summary Анализ навыков по резюме или списку
// @Tags    Анализ
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file   false "Файл резюме (PDF или DOCX)"
// @Param   skills formData string false "Навыки через запятую или свободный текст"
// @Success 200 {object} analysis.Outcome
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 413 {object} presenter.ErrorResponse
// @Router  /analyze [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	if fh, err := c.FormFile("resume"); err == nil && fh != nil && fh.Filename != "" {
		file, err := fh.Open()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
		}
		defer file.Close()

		data, err := readAtMost(file, h.maxBytes)
		if errors.Is(err, errFileTooLarge) {
			return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
		}
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.JSON(c, http.StatusOK, h.uc.AnalyzeDocument(fh.Filename, data))
	}

	if skills := c.FormValue("skills"); strings.TrimSpace(skills) != "" {
		return presenter.JSON(c, http.StatusOK, h.uc.AnalyzeManual(skills))
	}
	return presenter.JSON(c, http.StatusOK, h.uc.AnalyzeNothing())
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", errFileTooLarge, max)
	}
	return b, nil
}
