// Package transport exposes the HTTP read API over the content store.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200

	qrImageSize = 256
)

type (
	// ContentReader is the store surface the API reads from.
	ContentReader interface {
		ContentByTxID(ctx context.Context, network model.Network, txID string) (model.ContentRecord, bool, error)
		RecentContent(ctx context.Context, network model.Network, limit int) ([]model.ContentRecord, error)
	}

	// Metrics observes served requests. A nil Metrics disables observation.
	Metrics interface {
		ObserveRequest(route, method string, code int, started time.Time)
	}
)

// ContentHandler serves decoded content records.
type ContentHandler struct {
	store        ContentReader
	metrics      Metrics
	network      model.Network
	shareBaseURL string
	logger       *zap.Logger
}

// NewContentHandler returns a ContentHandler for one network. The QR
// endpoint links shareBaseURL/<txid>.
func NewContentHandler(store ContentReader, metrics Metrics, network model.Network, shareBaseURL string, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		store:        store,
		metrics:      metrics,
		network:      network,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
		logger:       logger,
	}
}

// Register mounts the API routes on mux.
func (h *ContentHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/content", h.instrument("/v1/content", h.listContent))
	mux.HandleFunc("GET /v1/content/{txid}", h.instrument("/v1/content/{txid}", h.getContent))
	mux.HandleFunc("GET /v1/content/{txid}/qr", h.instrument("/v1/content/{txid}/qr", h.getContentQR))
	mux.HandleFunc("GET /healthz", h.instrument("/healthz", h.health))
}

func (h *ContentHandler) listContent(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	records, err := h.store.RecentContent(r.Context(), h.network, limit)
	if err != nil {
		h.logger.Error("recent content lookup failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]contentResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, newContentResponse(rec))
	}
	h.writeJSON(w, http.StatusOK, listResponse{Items: items})
}

func (h *ContentHandler) getContent(w http.ResponseWriter, r *http.Request) {
	txID := r.PathValue("txid")

	rec, ok, err := h.store.ContentByTxID(r.Context(), h.network, txID)
	if err != nil {
		h.logger.Error("content lookup failed", zap.String("tx_id", txID), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		h.writeError(w, http.StatusNotFound, "content not found")
		return
	}
	h.writeJSON(w, http.StatusOK, newContentResponse(rec))
}

func (h *ContentHandler) getContentQR(w http.ResponseWriter, r *http.Request) {
	txID := r.PathValue("txid")

	_, ok, err := h.store.ContentByTxID(r.Context(), h.network, txID)
	if err != nil {
		h.logger.Error("content lookup failed", zap.String("tx_id", txID), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		h.writeError(w, http.StatusNotFound, "content not found")
		return
	}

	png, err := qrcode.Encode(h.shareBaseURL+"/"+txID, qrcode.Medium, qrImageSize)
	if err != nil {
		h.logger.Error("qr encode failed", zap.String("tx_id", txID), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Error("qr write failed", zap.String("tx_id", txID), zap.Error(err))
	}
}

func (h *ContentHandler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// instrument wraps next so the response code and duration are recorded
// under a fixed route label.
func (h *ContentHandler) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next(w, r)
			return
		}
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		h.metrics.ObserveRequest(route, r.Method, rec.status, started)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *ContentHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("response encode failed", zap.Error(err))
	}
}

func (h *ContentHandler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, map[string]string{"error": msg})
}
