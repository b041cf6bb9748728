package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"geohash-service/config"
	"geohash-service/geohash"
	"geohash-service/location"
	"geohash-service/metrics"
	"geohash-service/models"
)

// Operation names used for metrics and usage counters.
const (
	opEncode    = "encode"
	opDecode    = "decode"
	opNeighbors = "neighbors"
	opBBox      = "bbox"
)

var errPrecision = errors.New("invalid precision")

// UsageRecorder counts calls per operation. cache.UsageStore implements it.
type UsageRecorder interface {
	Incr(ctx context.Context, operation string) error
	Counts(ctx context.Context) (map[string]int64, error)
}

// Handler serves the geohash operations over HTTP.
type Handler struct {
	cfg     config.GeohashConfig
	usage   UsageRecorder
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewHandler returns a Handler. usage may be nil when usage counting is disabled.
func NewHandler(cfg config.GeohashConfig, usage UsageRecorder, m *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{cfg: cfg, usage: usage, metrics: m, logger: logger}
}

// EncodeLocation handles POST /encode with any supported location shape.
func (h *Handler) EncodeLocation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, opEncode, start, http.StatusBadRequest, fmt.Errorf("invalid request payload: %w", err))
		return
	}
	if len(req.Location) == 0 {
		h.fail(w, r, opEncode, start, http.StatusBadRequest, &location.FormatError{Reason: "missing location"})
		return
	}

	n := h.cfg.DefaultPrecision
	if req.Precision != nil {
		n = *req.Precision
	}
	if err := h.checkPrecision(n); err != nil {
		h.fail(w, r, opEncode, start, http.StatusBadRequest, err)
		return
	}

	hash, err := location.EncodeJSON(req.Location, n)
	if err != nil {
		h.fail(w, r, opEncode, start, statusFor(err), err)
		return
	}
	h.metrics.Precision.Observe(float64(n))
	h.succeed(w, r, opEncode, start, models.EncodeResponse{Geohash: hash})
}

// EncodeQuery handles GET /encode?location=<lat,lon | POINT (lon lat)>&precision=n.
func (h *Handler) EncodeQuery(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	n := h.cfg.DefaultPrecision
	if raw := q.Get("precision"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(w, r, opEncode, start, http.StatusBadRequest, fmt.Errorf("%w: %q", errPrecision, raw))
			return
		}
		n = v
	}
	if err := h.checkPrecision(n); err != nil {
		h.fail(w, r, opEncode, start, http.StatusBadRequest, err)
		return
	}

	hash, err := location.EncodeString(q.Get("location"), n)
	if err != nil {
		h.fail(w, r, opEncode, start, statusFor(err), err)
		return
	}
	h.metrics.Precision.Observe(float64(n))
	h.succeed(w, r, opEncode, start, models.EncodeResponse{Geohash: hash})
}

// Decode handles GET /decode/{hash} and answers with a GeoJSON Feature.
func (h *Handler) Decode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	decoded, err := geohash.Decode(mux.Vars(r)["hash"])
	if err != nil {
		h.fail(w, r, opDecode, start, statusFor(err), err)
		return
	}
	h.succeed(w, r, opDecode, start, decoded)
}

// Neighbors handles GET /neighbors/{hash}.
func (h *Handler) Neighbors(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	hash := mux.Vars(r)["hash"]
	neighbors, err := geohash.Neighbors(hash)
	if err != nil {
		h.fail(w, r, opNeighbors, start, statusFor(err), err)
		return
	}
	h.succeed(w, r, opNeighbors, start, models.NeighborsResponse{Geohash: hash, Neighbors: neighbors})
}

// BBox handles GET /bbox/{hash}.
func (h *Handler) BBox(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	hash := mux.Vars(r)["hash"]
	box, err := geohash.BBox(hash)
	if err != nil {
		h.fail(w, r, opBBox, start, statusFor(err), err)
		return
	}

	corners := make([][2]float64, 0, len(box))
	for _, p := range box {
		corners = append(corners, [2]float64{p.Longitude, p.Latitude})
	}
	h.succeed(w, r, opBBox, start, models.BBoxResponse{Geohash: hash, BBox: corners})
}

// Stats handles GET /stats with the per-operation call totals.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.usage == nil {
		writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "usage counting is disabled"})
		return
	}
	counts, err := h.usage.Counts(r.Context())
	if err != nil {
		h.logger.Error("read usage counters", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read usage counters"})
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) checkPrecision(n int) error {
	if n < 1 || n > h.cfg.MaxPrecision {
		return fmt.Errorf("%w: %d is outside 1-%d", errPrecision, n, h.cfg.MaxPrecision)
	}
	return nil
}

func (h *Handler) succeed(w http.ResponseWriter, r *http.Request, op string, start time.Time, body any) {
	h.metrics.Observe(op, metrics.OutcomeOK, start)
	h.count(r.Context(), op)
	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, start time.Time, status int, err error) {
	outcome := metrics.OutcomeInvalid
	if status >= http.StatusInternalServerError {
		outcome = metrics.OutcomeError
		h.logger.Error("geohash operation failed", "operation", op, "error", err)
	} else {
		h.logger.Debug("rejected request", "operation", op, "error", err)
	}
	h.metrics.Observe(op, outcome, start)
	h.count(r.Context(), op)
	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}

// count records a call; a failing usage store never fails the request.
func (h *Handler) count(ctx context.Context, op string) {
	if h.usage == nil {
		return
	}
	if err := h.usage.Incr(ctx, op); err != nil {
		h.logger.Warn("increment usage counter", "operation", op, "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, location.ErrFormat), errors.Is(err, geohash.ErrInvalidCharacter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
