package handlers

import (
	"log/slog"

	"github.com/lwalden/chartview-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	ChartSvc        ChartService
	StatusSvc       StatusService
}
