package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"shortlink/internal/domain"
)

func (h *Handler) PoolStats(c echo.Context) error {
	stats, err := h.poolService.Stats(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to read key pool", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errPoolStatsFailed)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ReplenishPool(c echo.Context) error {
	var req domain.ReplenishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if req.Target <= 0 {
		return c.JSON(http.StatusBadRequest, errInvalidTarget)
	}

	ctx := c.Request().Context()
	added, err := h.poolService.Replenish(ctx, req.Target)
	if err != nil {
		h.logger.Error("failed to replenish key pool",
			slog.Int("added", added),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errReplenishFailed)
	}

	stats, err := h.poolService.Stats(ctx)
	if err != nil {
		h.logger.Error("failed to read key pool", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errPoolStatsFailed)
	}
	return c.JSON(http.StatusOK, domain.ReplenishResponse{Added: added, Available: stats.Available})
}
