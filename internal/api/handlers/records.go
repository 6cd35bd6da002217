package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/divscreen/internal/contracts"
	"github.com/wonny/divscreen/internal/store"
	"github.com/wonny/divscreen/pkg/logger"
)

// RecordsHandler manages the fundamentals records behind the screener
type RecordsHandler struct {
	store  contracts.RecordStore
	logger *logger.Logger
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(recordStore contracts.RecordStore, log *logger.Logger) *RecordsHandler {
	return &RecordsHandler{
		store:  recordStore,
		logger: log,
	}
}

// List returns every stored fundamentals record
// GET /api/records
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list records")
		respondError(w, http.StatusInternalServerError, "Failed to list records")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(records),
		"records": records,
	})
}

// Get returns one record by ticker
// GET /api/records/{ticker}
func (h *RecordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	record, err := h.store.Get(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Record not found")
			return
		}
		h.logger.WithError(err).WithField("ticker", ticker).Error("Failed to get record")
		respondError(w, http.StatusInternalServerError, "Failed to get record")
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// Upsert creates or replaces a record
// POST /api/records
func (h *RecordsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var record contracts.FundamentalsRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := record.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Upsert(r.Context(), &record); err != nil {
		h.logger.WithError(err).WithField("ticker", record.Ticker).Error("Failed to upsert record")
		respondError(w, http.StatusInternalServerError, "Failed to save record")
		return
	}

	h.logger.WithField("ticker", record.Ticker).Info("Record saved")
	respondJSON(w, http.StatusOK, record)
}

// Delete removes a record by ticker
// DELETE /api/records/{ticker}
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	if err := h.store.Delete(r.Context(), ticker); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Record not found")
			return
		}
		h.logger.WithError(err).WithField("ticker", ticker).Error("Failed to delete record")
		respondError(w, http.StatusInternalServerError, "Failed to delete record")
		return
	}

	h.logger.WithField("ticker", ticker).Info("Record deleted")
	w.WriteHeader(http.StatusNoContent)
}

// ImportResponse reports the outcome of a CSV import
type ImportResponse struct {
	Imported int              `json:"imported"`
	Rejected []store.RowError `json:"rejected"`
}

// Import ingests a CSV body of fundamentals records. Malformed rows are
// rejected individually; valid rows are still saved.
// POST /api/records/import
func (h *RecordsHandler) Import(w http.ResponseWriter, r *http.Request) {
	result, err := store.ReadCSV(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	imported := 0
	rejected := result.Rejected
	for i := range result.Records {
		record := result.Records[i]
		if err := h.store.Upsert(r.Context(), &record); err != nil {
			h.logger.WithError(err).WithField("ticker", record.Ticker).Error("Failed to save imported record")
			// Earlier rows are already saved; report how far the import got
			respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"error":    "Failed to save imported records",
				"ticker":   record.Ticker,
				"imported": imported,
			})
			return
		}
		imported++
	}

	h.logger.WithFields(map[string]interface{}{
		"imported": imported,
		"rejected": len(rejected),
	}).Info("CSV import complete")

	if rejected == nil {
		rejected = []store.RowError{}
	}
	respondJSON(w, http.StatusOK, ImportResponse{
		Imported: imported,
		Rejected: rejected,
	})
}

// Export streams every record as a CSV attachment
// GET /api/records/export
func (h *RecordsHandler) Export(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list records for export")
		respondError(w, http.StatusInternalServerError, "Failed to export records")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="records.csv"`)

	if err := store.WriteCSV(w, records); err != nil {
		h.logger.WithError(err).Error("Failed to write CSV export")
	}
}
