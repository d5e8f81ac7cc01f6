package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"airbnb-advisor/chat"
	"airbnb-advisor/models"
	"airbnb-advisor/recommend"
	"airbnb-advisor/services"
	"airbnb-advisor/utils"
)

// Handlers wires the HTTP surface to the engine and services
type Handlers struct {
	engine    *recommend.Engine
	search    *services.SearchService
	forecast  *services.ForecastService
	report    *models.InsightReport
	assistant *chat.Client // nil when no API key is configured
	sysPrompt chat.Message
	logger    *utils.Logger
}

// NewHandlers creates the handler set. assistant may be nil; the assistant
// endpoint then reports itself unavailable.
func NewHandlers(
	engine *recommend.Engine,
	search *services.SearchService,
	forecast *services.ForecastService,
	report *models.InsightReport,
	assistant *chat.Client,
	sysPrompt chat.Message,
	logger *utils.Logger,
) *Handlers {
	return &Handlers{
		engine:    engine,
		search:    search,
		forecast:  forecast,
		report:    report,
		assistant: assistant,
		sysPrompt: sysPrompt,
		logger:    logger,
	}
}

// HandleChat serves POST /api/chat: one free-text message in, the rule-based
// recommendation plus the extracted preferences out
func (h *Handlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSONError(w, http.StatusBadRequest, "field 'message' is required")
		return
	}

	prefs, reply := h.engine.Respond(req.Message)
	respondJSON(w, http.StatusOK, ChatResponse{
		Reply:       reply,
		Preferences: toPreferencesDTO(prefs),
	})
}

// HandleAssistant serves POST /api/assistant: a full conversation history in,
// the LLM reply out. The system prompt is prepended server-side when the
// caller didn't include one.
func (h *Handlers) HandleAssistant(w http.ResponseWriter, r *http.Request) {
	if h.assistant == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "assistant is not configured: set OPENAI_API_KEY")
		return
	}

	var req AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeJSONError(w, http.StatusBadRequest, "field 'messages' is required")
		return
	}

	history := req.Messages
	if history[0].Role != chat.RoleSystem {
		history = append([]chat.Message{h.sysPrompt}, history...)
	}

	reply, err := h.assistant.Complete(r.Context(), history)
	if err != nil {
		h.logger.Error("Assistant completion failed: %v", err)
		respondJSON(w, http.StatusBadGateway, AssistantResponse{Reply: chat.ErrorReply})
		return
	}

	respondJSON(w, http.StatusOK, AssistantResponse{Reply: reply})
}

// HandleSearch serves GET /api/search with the property-search filters as
// query parameters
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := services.SearchQuery{
		Neighbourhoods: splitParam(q.Get("neighbourhoods")),
		RoomTypes:      splitParam(q.Get("room_types")),
		PriceMin:       parseFloatParam(q.Get("price_min")),
		PriceMax:       parseFloatParam(q.Get("price_max")),
		MinRating:      parseFloatParam(q.Get("min_rating")),
		MinReviews:     parseIntParam(q.Get("min_reviews")),
		VerifiedOnly:   q.Get("verified_only") == "true",
		InstantBook:    q.Get("instant_book") == "true",
		SortBy:         q.Get("sort_by"),
		Offset:         parseIntParam(q.Get("offset")),
		Limit:          parseIntParam(q.Get("limit")),
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	result := h.search.Search(query)

	listings := make([]ListingDTO, len(result.Listings))
	for i, l := range result.Listings {
		listings[i] = toListingDTO(l)
	}
	respondJSON(w, http.StatusOK, SearchResponse{Total: result.Total, Listings: listings})
}

// HandleMarket serves GET /api/market with the precomputed market report
func (h *Handlers) HandleMarket(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, MarketResponse{
		TotalListings:      h.report.TotalListings,
		AveragePrice:       h.report.AveragePrice,
		MinPrice:           h.report.MinPrice,
		MaxPrice:           h.report.MaxPrice,
		MedianReviews:      h.report.MedianReviews,
		PeakSeasonPremium:  h.report.PeakSeasonPremium,
		SeasonalVolatility: h.report.SeasonalVolatility,
		Neighbourhoods:     h.report.NeighbourhoodStats,
		RoomTypes:          h.report.RoomTypeStats,
	})
}

// HandleForecast serves GET /api/forecast?neighbourhoods=a,b
func (h *Handlers) HandleForecast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	neighbourhoods := splitParam(q.Get("neighbourhoods"))
	if len(neighbourhoods) == 0 {
		writeJSONError(w, http.StatusBadRequest, "parameter 'neighbourhoods' is required")
		return
	}
	roomTypes := splitParam(q.Get("room_types"))

	respondJSON(w, http.StatusOK, ForecastResponse{
		Points:  h.forecast.PriceForecast(neighbourhoods, time.Now()),
		Outlook: h.forecast.DemandOutlook(neighbourhoods, roomTypes),
	})
}

// HandleHealth serves GET /healthz
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloatParam(raw string) float64 {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return val
}

func parseIntParam(raw string) int {
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return val
}
