package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/wonny/divscreen/internal/calendar"
	"github.com/wonny/divscreen/internal/contracts"
	"github.com/wonny/divscreen/internal/quotes"
	"github.com/wonny/divscreen/internal/screener"
	"github.com/wonny/divscreen/pkg/logger"
)

// ScreenHandler serves the screening pipeline: records joined with live
// quotes, classified, filtered and aggregated.
type ScreenHandler struct {
	store  contracts.RecordStore
	quotes *quotes.Service
	logger *logger.Logger
}

// NewScreenHandler creates a new screening handler
func NewScreenHandler(store contracts.RecordStore, quoteSvc *quotes.Service, log *logger.Logger) *ScreenHandler {
	return &ScreenHandler{
		store:  store,
		quotes: quoteSvc,
		logger: log,
	}
}

// ScreenResponse is the payload for screening endpoints
type ScreenResponse struct {
	Count    int                        `json:"count"`
	Preset   string                     `json:"preset,omitempty"`
	Criteria screener.Criteria          `json:"criteria"`
	Results  []contracts.EnrichedRecord `json:"results"`
}

// Screen evaluates every stored record and returns the filtered rows
// GET /api/screen?preset=...  or  ?signals=...&sectors=...&min_discount=...
func (h *ScreenHandler) Screen(w http.ResponseWriter, r *http.Request) {
	criteria, preset, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	enriched, err := h.evaluate(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Screening run failed")
		respondError(w, http.StatusInternalServerError, "Failed to evaluate records")
		return
	}

	results := screener.Apply(enriched, criteria)

	respondJSON(w, http.StatusOK, ScreenResponse{
		Count:    len(results),
		Preset:   preset,
		Criteria: criteria,
		Results:  results,
	})
}

// Summary aggregates the filtered rows into portfolio-level statistics
// GET /api/summary (accepts the same query parameters as /api/screen)
func (h *ScreenHandler) Summary(w http.ResponseWriter, r *http.Request) {
	criteria, _, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	enriched, err := h.evaluate(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Summary run failed")
		respondError(w, http.StatusInternalServerError, "Failed to evaluate records")
		return
	}

	respondJSON(w, http.StatusOK, screener.Aggregate(screener.Apply(enriched, criteria)))
}

// Calendar returns the dividend payout schedule grouped by month
// GET /api/calendar?top=N
func (h *ScreenHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	enriched, err := h.evaluate(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Calendar run failed")
		respondError(w, http.StatusInternalServerError, "Failed to evaluate records")
		return
	}

	schedule := calendar.MonthlySchedule(enriched)

	if topStr := r.URL.Query().Get("top"); topStr != "" {
		top, err := strconv.Atoi(topStr)
		if err != nil || top <= 0 {
			respondError(w, http.StatusBadRequest, "top must be a positive integer")
			return
		}
		schedule = calendar.TopMonths(schedule, top)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"months": schedule,
	})
}

// PresetInfo describes one named filter preset
type PresetInfo struct {
	Name     string            `json:"name"`
	Criteria screener.Criteria `json:"criteria"`
}

// Presets lists the named filter presets
// GET /api/presets
func (h *ScreenHandler) Presets(w http.ResponseWriter, r *http.Request) {
	infos := make([]PresetInfo, 0, len(screener.PresetNames))
	for _, name := range screener.PresetNames {
		criteria, _ := screener.PresetCriteria(name)
		infos = append(infos, PresetInfo{Name: name, Criteria: criteria})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"presets": infos,
	})
}

// evaluate runs the full pipeline: load records, snapshot quotes, enrich
func (h *ScreenHandler) evaluate(ctx context.Context) ([]contracts.EnrichedRecord, error) {
	records, err := h.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	tickers := make([]string, 0, len(records))
	for _, rec := range records {
		tickers = append(tickers, rec.Ticker)
	}

	book := h.quotes.Snapshot(ctx, tickers)

	return screener.EnrichAll(records, book), nil
}

// criteriaFromQuery builds filter criteria from query parameters. A
// preset parameter wins over ad-hoc parameters.
func criteriaFromQuery(q url.Values) (screener.Criteria, string, error) {
	if preset := q.Get("preset"); preset != "" {
		criteria, ok := screener.PresetCriteria(preset)
		if !ok {
			return screener.Criteria{}, "", fmt.Errorf("unknown preset: %q", preset)
		}
		return criteria, preset, nil
	}

	var criteria screener.Criteria

	if raw := q.Get("signals"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			signal, err := contracts.ParseSignal(strings.TrimSpace(part))
			if err != nil {
				return screener.Criteria{}, "", err
			}
			criteria.Signals = append(criteria.Signals, signal)
		}
	}

	if raw := q.Get("sectors"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if sector := strings.TrimSpace(part); sector != "" {
				criteria.Sectors = append(criteria.Sectors, sector)
			}
		}
	}

	bounds := []struct {
		param string
		dest  **float64
	}{
		{"min_discount", &criteria.MinDiscount},
		{"min_yield", &criteria.MinYield},
		{"min_roe", &criteria.MinROE},
		{"max_dpr", &criteria.MaxDPR},
	}
	for _, b := range bounds {
		raw := q.Get(b.param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return screener.Criteria{}, "", fmt.Errorf("%s must be a number", b.param)
		}
		*b.dest = screener.Bound(v)
	}

	return criteria, "", nil
}
