package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

type statusStore interface {
	Create(ctx context.Context, sc *models.StatusCheck) error
	List(ctx context.Context) ([]models.StatusCheck, error)
}

type statusService struct {
	store statusStore
}

func NewStatusService(store statusStore) *statusService {
	return &statusService{store: store}
}

func (s *statusService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	if clientName == "" {
		return nil, errs.NewValidationError("client_name is required")
	}

	sc := &models.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.store.Create(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *statusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	return s.store.List(ctx)
}
