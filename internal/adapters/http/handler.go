package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/henryperkins/Tarot-Master/internal/app"
	"github.com/henryperkins/Tarot-Master/internal/catalog"
	"github.com/henryperkins/Tarot-Master/internal/domain"
	"github.com/henryperkins/Tarot-Master/internal/entitlement"
	"github.com/henryperkins/Tarot-Master/internal/ports"
)

const headerTier = "X-Subscription-Tier"

const maxQuestionLen = 500

type Handler struct {
	svc     *app.ReadingService
	catalog *catalog.Catalog
}

func NewHandler(svc *app.ReadingService, cat *catalog.Catalog) *Handler {
	return &Handler{svc: svc, catalog: cat}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	e.GET("/v1/spreads", h.ListSpreads)
	e.GET("/v1/spreads/:id", h.GetSpread)
	e.GET("/v1/cards", h.ListCards)
	e.GET("/v1/cards/:id", h.GetCard)
	e.GET("/v1/tiers", h.ListTiers)

	e.POST("/v1/readings", h.StartReading)
	e.GET("/v1/readings/:id", h.GetReading)
	e.POST("/v1/readings/:id/reveal", h.Reveal)
	e.POST("/v1/readings/:id/reveal-all", h.RevealAll)
	e.POST("/v1/readings/:id/narrative", h.Narrative)

	e.GET("/v1/journal", h.ListJournal)
	e.GET("/v1/journal/:id", h.GetJournalEntry)
	e.PATCH("/v1/journal/:id", h.UpdateJournalEntry)
	e.DELETE("/v1/journal/:id", h.DeleteJournalEntry)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListSpreads(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Spreads())
}

// GetSpread serves the named spread, falling back to the default layout
// for an unrecognized id.
func (h *Handler) GetSpread(c echo.Context) error {
	spread, ok := h.catalog.SpreadByID(c.Param("id"))
	if !ok {
		spread = h.catalog.DefaultSpread()
	}
	return c.JSON(http.StatusOK, spread)
}

func (h *Handler) ListCards(c echo.Context) error {
	if suit := c.QueryParam("suit"); suit != "" {
		return c.JSON(http.StatusOK, toCardSummaries(h.catalog.BySuit(domain.Suit(suit))))
	}
	if arcana := c.QueryParam("arcana"); arcana != "" {
		return c.JSON(http.StatusOK, toCardSummaries(h.catalog.ByArcana(domain.Arcana(arcana))))
	}
	return c.JSON(http.StatusOK, toCardSummaries(h.catalog.Cards()))
}

func (h *Handler) GetCard(c echo.Context) error {
	card, ok := h.catalog.CardByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "card not found"})
	}
	return c.JSON(http.StatusOK, card)
}

func (h *Handler) ListTiers(c echo.Context) error {
	return c.JSON(http.StatusOK, entitlement.Tiers())
}

func (h *Handler) StartReading(c echo.Context) error {
	var req StartReadingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if len(req.Question) > maxQuestionLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question must be at most 500 characters"})
	}

	tier := entitlement.Tier(c.Request().Header.Get(headerTier))
	if tier == "" {
		tier = entitlement.TierFree
	}

	session, err := h.svc.StartReading(c.Request().Context(), app.StartRequest{
		SpreadID: req.SpreadID,
		Question: req.Question,
		Tier:     tier,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toReadingResponse(session))
}

func (h *Handler) GetReading(c echo.Context) error {
	session, err := h.svc.Session(c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toReadingResponse(session))
}

func (h *Handler) Reveal(c echo.Context) error {
	var req RevealRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	session, err := h.svc.Reveal(c.Request().Context(), c.Param("id"), req.PositionID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toReadingResponse(session))
}

func (h *Handler) RevealAll(c echo.Context) error {
	session, err := h.svc.RevealAll(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toReadingResponse(session))
}

func (h *Handler) Narrative(c echo.Context) error {
	narrative, err := h.svc.Narrative(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, NarrativeResponse{Narrative: narrative})
}

func (h *Handler) ListJournal(c echo.Context) error {
	filter := ports.ListFilter{FavoritesOnly: c.QueryParam("favorites") == "true"}
	entries, err := h.svc.Journal(c.Request().Context(), filter)
	if err != nil {
		return mapError(c, err)
	}
	if entries == nil {
		entries = []ports.ReadingRecord{}
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) GetJournalEntry(c echo.Context) error {
	entry, err := h.svc.JournalEntry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) UpdateJournalEntry(c echo.Context) error {
	var req UpdateEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	entry, err := h.svc.UpdateEntry(c.Request().Context(), c.Param("id"), ports.EntryUpdate{
		Notes:    req.Notes,
		Favorite: req.Favorite,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) DeleteJournalEntry(c echo.Context) error {
	if err := h.svc.DeleteEntry(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrReadingNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSpreadNotAllowed):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidSpread), errors.Is(err, domain.ErrUnknownPosition):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrReadingIncomplete), errors.Is(err, domain.ErrNarrativeExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUpstreamLLM):
		slog.Error("upstream LLM failure", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream LLM failure"})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
