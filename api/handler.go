package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/rata"

	"github.com/pivotal-cf/pw-alert/lgctx"
	"github.com/pivotal-cf/pw-alert/strength"
)

const maxRequestBytes = 4096

//go:generate counterfeiter . Evaluator

type Evaluator interface {
	Evaluate(ctx context.Context, logger lager.Logger, id string, password string) (strength.Analysis, error)
}

type EvaluateRequest struct {
	Password string `json:"password"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewHandler(logger lager.Logger, evaluator Evaluator) (http.Handler, error) {
	return rata.NewRouter(Routes, rata.Handlers{
		Evaluate: &evaluateHandler{logger: logger, evaluator: evaluator},
		Health:   &healthHandler{logger: logger},
	})
}

type evaluateHandler struct {
	logger    lager.Logger
	evaluator Evaluator
}

func (h *evaluateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(SessionIDHeader)

	ctx := lgctx.NewContext(r.Context(), h.logger)
	logger := lgctx.WithSession(ctx, "evaluate-request", lager.Data{"session-id": id})
	logger.Debug("starting")
	defer logger.Debug("done")

	var req EvaluateRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req)
	if err != nil {
		logger.Error("invalid-request", err)
		writeJSON(logger, w, http.StatusBadRequest, ErrorResponse{Error: "request body must be a JSON object with a password"})
		return
	}

	analysis, err := h.evaluator.Evaluate(ctx, logger, id, req.Password)
	switch {
	case err == nil:
		writeJSON(logger, w, http.StatusOK, analysis)
	case errors.Is(err, strength.ErrEmptyPassword):
		writeJSON(logger, w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, strength.ErrSuperseded):
		logger.Info("superseded")
		writeJSON(logger, w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Info("client-gone")
	default:
		logger.Error("evaluate-failed", err)
		writeJSON(logger, w, http.StatusInternalServerError, ErrorResponse{Error: "evaluation failed"})
	}
}

type healthHandler struct {
	logger lager.Logger
}

func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger.Session("health-request"), w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(logger lager.Logger, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("write-response-failed", err, lager.Data{"status": status})
	}
}
