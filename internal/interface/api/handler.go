package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"

	"travelplan-service/internal/domain/entity"
	"travelplan-service/internal/domain/repository"
	"travelplan-service/internal/usecase"
	"travelplan-service/pkg/logger"
	"travelplan-service/pkg/parser"
	"travelplan-service/templates"
)

// Handler exposes parsing, routing and itinerary lookup over HTTP
type Handler struct {
	parser        *parser.ResponseParser
	router        usecase.CategoryRouter
	responseRepo  repository.AgentResponseRepository
	itineraryRepo repository.ItineraryRepository
	cache         *cache.Cache
	logger        logger.Logger
}

// NewHandler creates a new handler; parse results are cached for cacheTTL
func NewHandler(
	responseParser *parser.ResponseParser,
	router usecase.CategoryRouter,
	responseRepo repository.AgentResponseRepository,
	itineraryRepo repository.ItineraryRepository,
	cacheTTL time.Duration,
	logger logger.Logger,
) *Handler {
	return &Handler{
		parser:        responseParser,
		router:        router,
		responseRepo:  responseRepo,
		itineraryRepo: itineraryRepo,
		cache:         cache.New(cacheTTL, 2*cacheTTL),
		logger:        logger,
	}
}

// Register mounts the API routes under g
func (h *Handler) Register(g *echo.Group) {
	g.POST("/parse", h.parse)
	g.POST("/responses", h.submitResponse)
	g.GET("/itineraries/:responseId", h.getItinerary)
	g.GET("/itineraries/:responseId/summary", h.getItinerarySummary)
	g.POST("/route", h.route)
	g.POST("/intent", h.intent)
}

type parseRequest struct {
	Text string `json:"text"`
}

type submitResponseRequest struct {
	SessionID string           `json:"sessionId"`
	Agent     string           `json:"agent"`
	Query     entity.TripQuery `json:"query"`
	Text      string           `json:"text"`
}

type submitResponseResponse struct {
	ResponseID string `json:"responseId"`
	Status     string `json:"status"`
}

type routeRequest struct {
	Message string `json:"message"`
}

type routeResponse struct {
	Category string `json:"category"`
}

type intentRequest struct {
	Text        string `json:"text"`
	DefaultCity string `json:"defaultCity"`
}

type summaryResponse struct {
	ResponseID string `json:"responseId"`
	Summary    string `json:"summary"`
}

func (h *Handler) parse(c echo.Context) error {
	var req parseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key := cacheKey(req.Text)
	if cached, ok := h.cache.Get(key); ok {
		return c.JSON(http.StatusOK, cached)
	}

	result := h.parser.Parse(req.Text)
	h.cache.SetDefault(key, result)

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) submitResponse(c echo.Context) error {
	var req submitResponseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	response := &entity.AgentResponse{
		ResponseID:    uuid.NewString(),
		SessionID:     req.SessionID,
		Agent:         req.Agent,
		Query:         req.Query.Normalize(),
		Text:          req.Text,
		ReceivedAt:    time.Now(),
		ProcessStatus: entity.StatusPending,
	}

	if err := h.responseRepo.Save(c.Request().Context(), response); err != nil {
		h.logger.Error("Failed to save agent response", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store response")
	}

	h.logger.Info("Agent response queued", "responseID", response.ResponseID, "agent", response.Agent)

	return c.JSON(http.StatusAccepted, submitResponseResponse{
		ResponseID: response.ResponseID,
		Status:     response.ProcessStatus,
	})
}

func (h *Handler) getItinerary(c echo.Context) error {
	itinerary, err := h.findItinerary(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, itinerary)
}

func (h *Handler) getItinerarySummary(c echo.Context) error {
	itinerary, err := h.findItinerary(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaryResponse{
		ResponseID: itinerary.ResponseID,
		Summary:    templates.ItinerarySummary(itinerary),
	})
}

func (h *Handler) findItinerary(c echo.Context) (*entity.Itinerary, error) {
	responseID := c.Param("responseId")

	itinerary, err := h.itineraryRepo.FindByResponseID(c.Request().Context(), responseID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "itinerary not found")
		}
		h.logger.Error("Failed to load itinerary", "responseID", responseID, "error", err)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "failed to load itinerary")
	}
	return itinerary, nil
}

func (h *Handler) route(c echo.Context) error {
	var req routeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	return c.JSON(http.StatusOK, routeResponse{Category: h.router.Route(req.Message)})
}

func (h *Handler) intent(c echo.Context) error {
	var req intentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, parser.ParseIntent(req.Text, req.DefaultCity))
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
