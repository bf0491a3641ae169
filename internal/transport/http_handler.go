package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
	"github.com/goodnatureofminers/popminer/internal/pop/registry"
	"github.com/goodnatureofminers/popminer/internal/pop/service"
)

// DefaultListLimit is used when GET /operations has no limit.
const DefaultListLimit = 50

// MaxListLimit caps the limit query parameter.
const MaxListLimit = 1000

// HTTPHandler serves the operation status API.
type HTTPHandler struct {
	miner  Miner
	events EventReader
	logger *zap.Logger
}

// NewHTTPHandler builds the handler. events may be nil, which disables the
// operation log endpoint.
func NewHTTPHandler(miner Miner, events EventReader, logger *zap.Logger) (*HTTPHandler, error) {
	if miner == nil {
		return nil, errors.New("miner is required")
	}
	return &HTTPHandler{miner: miner, events: events, logger: logger.Named("http")}, nil
}

// Routes registers the API on mux.
func (h *HTTPHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /operations", h.listOperations)
	mux.HandleFunc("POST /operations", h.mine)
	mux.HandleFunc("GET /operations/{id}", h.getOperation)
	mux.HandleFunc("GET /operations/{id}/events", h.operationEvents)
	mux.HandleFunc("GET /chains", h.chains)
}

type mineRequest struct {
	Chain  string `json:"chain"`
	Height uint64 `json:"height"`
}

type operationView struct {
	model.OperationSummary
	CreatedAt time.Time   `json:"created_at"`
	State     model.State `json:"state_detail"`
}

type eventView struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

type errorView struct {
	Error string `json:"error"`
}

func (h *HTTPHandler) listOperations(w http.ResponseWriter, r *http.Request) {
	limit := DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeError(w, http.StatusBadRequest, errors.New("limit must be a positive integer"))
			return
		}
		limit = min(n, MaxListLimit)
	}

	summaries, err := h.miner.Summaries(r.Context(), limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if summaries == nil {
		summaries = []model.OperationSummary{}
	}
	h.writeJSON(w, http.StatusOK, summaries)
}

func (h *HTTPHandler) getOperation(w http.ResponseWriter, r *http.Request) {
	op, err := h.miner.Operation(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if op == nil {
		h.writeError(w, http.StatusNotFound, errors.New("operation not found"))
		return
	}
	h.writeJSON(w, http.StatusOK, operationView{
		OperationSummary: op.Summary(),
		CreatedAt:        op.CreatedAt,
		State:            op.State,
	})
}

func (h *HTTPHandler) operationEvents(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		h.writeError(w, http.StatusNotImplemented, errors.New("operation log is not available"))
		return
	}
	events, err := h.events.OperationEvents(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]eventView, 0, len(events))
	for _, ev := range events {
		out = append(out, eventView{Time: ev.Time, Level: string(ev.Level), Message: ev.Message})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) mine(w http.ResponseWriter, r *http.Request) {
	var req mineRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.Chain == "" {
		h.writeError(w, http.StatusBadRequest, errors.New("chain is required"))
		return
	}

	op, err := h.miner.Mine(r.Context(), req.Chain, req.Height)
	switch {
	case errors.Is(err, registry.ErrUnknownChain):
		h.writeError(w, http.StatusNotFound, err)
		return
	case errors.Is(err, service.ErrNotStarted):
		h.writeError(w, http.StatusServiceUnavailable, err)
		return
	case err != nil:
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, op.Summary())
}

func (h *HTTPHandler) chains(w http.ResponseWriter, _ *http.Request) {
	chains := h.miner.Chains()
	if chains == nil {
		chains = []string{}
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"chains": chains})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, code int, err error) {
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Int("code", code), zap.Error(err))
	}
	h.writeJSON(w, code, errorView{Error: err.Error()})
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
