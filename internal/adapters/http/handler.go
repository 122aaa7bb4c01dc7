package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/b2jena/pokemon-dance/internal/app"
	"github.com/b2jena/pokemon-dance/internal/domain"
	"github.com/b2jena/pokemon-dance/internal/render"
)

type Handler struct {
	feed     *app.Feed
	stage    *app.Stage
	page     *render.HTML
	gatherer prometheus.Gatherer
}

func NewHandler(feed *app.Feed, stage *app.Stage, page *render.HTML, gatherer prometheus.Gatherer) *Handler {
	return &Handler{feed: feed, stage: stage, page: page, gatherer: gatherer}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/", h.Page)
	e.GET("/v1/stage", h.GetStage)
	e.DELETE("/v1/stage", h.ClearStage)
	e.POST("/v1/stage/shuffle", h.Shuffle)
	e.POST("/v1/stage/cards", h.AddCard)
	e.POST("/v1/stage/cards/:id/activate", h.Activate)
	e.POST("/v1/stage/cards/:id/hover", h.Hover)
	e.GET("/v1/narration", h.Narration)
	if h.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Page(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.page.Render(&buf, h.stage.View()); err != nil {
		return mapError(c, err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *Handler) GetStage(c echo.Context) error {
	return c.JSON(http.StatusOK, toStageResponse(h.stage.View(), requestID(c)))
}

func (h *Handler) ClearStage(c echo.Context) error {
	h.stage.Clear()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Shuffle(c echo.Context) error {
	if err := h.stage.Shuffle(); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toStageResponse(h.stage.View(), requestID(c)))
}

func (h *Handler) AddCard(c echo.Context) error {
	card, err := h.feed.AddRandom(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toCardResponse(card))
}

func (h *Handler) Activate(c echo.Context) error {
	card, err := h.stage.Activate(c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toCardResponse(card))
}

func (h *Handler) Hover(c echo.Context) error {
	on := true
	if raw := c.QueryParam("on"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "on must be a boolean"})
		}
		on = parsed
	}

	card, err := h.stage.Hover(c.Param("id"), on)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toCardResponse(card))
}

func (h *Handler) Narration(c echo.Context) error {
	text := h.stage.View().Narrating
	return c.JSON(http.StatusOK, NarrationResponse{Text: text, Active: text != ""})
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrCardNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrShuffleDisabled), errors.Is(err, domain.ErrStageCleared):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		slog.Warn("request cancelled", "request_id", requestID(c), "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "request cancelled"})
	default:
		slog.Error("internal error", "request_id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
