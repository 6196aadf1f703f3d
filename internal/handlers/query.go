package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/tool-agent/internal/dto"
	"github.com/GregMSThompson/tool-agent/internal/errs"
	"github.com/GregMSThompson/tool-agent/internal/response"
)

const maxQueryBodyBytes = 1 << 20

type AgentService interface {
	Query(ctx context.Context, query string) (dto.QueryResponse, error)
	Status(ctx context.Context) dto.StatusResponse
}

type queryHandlers struct {
	ResponseHandler response.ResponseHandler
	AgentSvc        AgentService
}

func NewQueryHandlers(deps *Deps) *queryHandlers {
	return &queryHandlers{
		ResponseHandler: deps.ResponseHandler,
		AgentSvc:        deps.AgentSvc,
	}
}

func (h *queryHandlers) QueryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Query)
	return r
}

func (h *queryHandlers) Query(w http.ResponseWriter, r *http.Request) {
	var body dto.QueryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQueryBodyBytes)).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if strings.TrimSpace(body.Query) == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("Query cannot be empty"))
		return
	}

	resp, err := h.AgentSvc.Query(r.Context(), body.Query)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *queryHandlers) Status(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AgentSvc.Status(r.Context()))
}
