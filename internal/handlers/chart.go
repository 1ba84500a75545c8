package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lwalden/chartview-backend/internal/dto"
	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
	"github.com/lwalden/chartview-backend/internal/response"
)

type ChartService interface {
	Upload(ctx context.Context, filename string, content []byte) (*dto.UploadResponse, error)
	Generate(ctx context.Context, req dto.GenerateChartRequest) (*dto.GenerateChartResponse, error)
	List(ctx context.Context) ([]models.Chart, error)
	Get(ctx context.Context, id string) (*models.Chart, error)
}

type chartHandlers struct {
	ResponseHandler response.ResponseHandler
	ChartSvc        ChartService
}

func NewChartHandlers(deps *Deps) *chartHandlers {
	return &chartHandlers{
		ResponseHandler: deps.ResponseHandler,
		ChartSvc:        deps.ChartSvc,
	}
}

// UploadCSV accepts a multipart form with the file under the "file" field.
func (h *chartHandlers) UploadCSV(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("multipart field 'file' is required"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	resp, err := h.ChartSvc.Upload(r.Context(), header.Filename, content)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *chartHandlers) GenerateChart(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("request body is not valid JSON"))
		return
	}
	resp, err := h.ChartSvc.Generate(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *chartHandlers) ListCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := h.ChartSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, charts)
}

func (h *chartHandlers) GetChart(w http.ResponseWriter, r *http.Request) {
	chartID := chi.URLParam(r, "chartID")
	c, err := h.ChartSvc.Get(r.Context(), chartID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, c)
}
