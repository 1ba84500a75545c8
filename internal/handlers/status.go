package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lwalden/chartview-backend/internal/dto"
	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
	"github.com/lwalden/chartview-backend/internal/response"
)

type StatusService interface {
	Create(ctx context.Context, clientName string) (*models.StatusCheck, error)
	List(ctx context.Context) ([]models.StatusCheck, error)
}

type statusHandlers struct {
	ResponseHandler response.ResponseHandler
	StatusSvc       StatusService
}

func NewStatusHandlers(deps *Deps) *statusHandlers {
	return &statusHandlers{
		ResponseHandler: deps.ResponseHandler,
		StatusSvc:       deps.StatusSvc,
	}
}

func (h *statusHandlers) Root(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"message": "Hello World"})
}

func (h *statusHandlers) CreateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("request body is not valid JSON"))
		return
	}
	sc, err := h.StatusSvc.Create(r.Context(), req.ClientName)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, sc)
}

func (h *statusHandlers) ListStatus(w http.ResponseWriter, r *http.Request) {
	checks, err := h.StatusSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, checks)
}
