package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillgap/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: liveness, the process is up and serving.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Ready reports every checker: "ok" or its error text.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status, code := "ready", fiber.StatusOK
	checks := fiber.Map{}
	for _, st := range h.svc.Statuses(ctx) {
		if st.Err != nil {
			checks[st.Name] = st.Err.Error()
			status, code = "not_ready", fiber.StatusServiceUnavailable
			continue
		}
		checks[st.Name] = "ok"
	}
	return c.Status(code).JSON(fiber.Map{"status": status, "checks": checks})
}
