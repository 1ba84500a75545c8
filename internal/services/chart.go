package services

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lwalden/chartview-backend/internal/dataset"
	"github.com/lwalden/chartview-backend/internal/dto"
	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
	"github.com/lwalden/chartview-backend/internal/render"
	"github.com/lwalden/chartview-backend/pkg/logger"
)

// Default config values applied when the client leaves them unset.
const (
	defaultColorScheme = "viridis"
	defaultTitle       = "Chart"
	defaultWidth       = 800
	defaultHeight      = 600
)

// chartStore is the storage interface for chart records.
type chartStore interface {
	Save(ctx context.Context, c *models.Chart) error
	GetAll(ctx context.Context) ([]models.Chart, error)
	GetByID(ctx context.Context, id string) (*models.Chart, error)
}

type chartService struct {
	store         chartStore
	renderTimeout time.Duration
}

func NewChartService(store chartStore, renderTimeout time.Duration) *chartService {
	return &chartService{store: store, renderTimeout: renderTimeout}
}

// Upload validates the file extension, infers the CSV schema, and returns
// the schema plus the raw bytes base64-encoded so the client can echo
// them back on generate. Nothing is persisted at this stage.
func (s *chartService) Upload(ctx context.Context, filename string, content []byte) (*dto.UploadResponse, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return nil, errs.NewValidationError("Only CSV files are allowed")
	}

	summary, err := dataset.Infer(content)
	if err != nil {
		return nil, err
	}

	return &dto.UploadResponse{
		Filename:           filename,
		Data:               base64.StdEncoding.EncodeToString(content),
		Columns:            summary.Columns,
		NumericColumns:     summary.NumericColumns,
		CategoricalColumns: summary.CategoricalColumns,
		Preview:            summary.Preview,
		RowCount:           summary.RowCount,
		ColumnCount:        summary.ColumnCount,
	}, nil
}

// Generate decodes the submitted CSV, renders the requested chart, and
// persists the record. The record is only saved with its image: a render
// failure leaves no trace in the store.
func (s *chartService) Generate(ctx context.Context, req dto.GenerateChartRequest) (*dto.GenerateChartResponse, error) {
	raw, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, errs.NewValidationError("data is not valid base64")
	}

	ds, err := dataset.Parse(raw)
	if err != nil {
		return nil, err
	}

	cfg := applyConfigDefaults(req.Config)

	start := time.Now()
	img, err := s.renderWithTimeout(ctx, ds, cfg)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("chart rendered",
		"chart_type", cfg.ChartType,
		"duration_ms", time.Since(start).Milliseconds(),
		"bytes", len(img))

	c := &models.Chart{
		ID:         uuid.New().String(),
		Filename:   req.Filename,
		Data:       req.Data,
		Config:     cfg,
		ChartImage: base64.StdEncoding.EncodeToString(img),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}

	return &dto.GenerateChartResponse{
		ID:         c.ID,
		ChartImage: c.ChartImage,
		Message:    "Chart generated successfully",
	}, nil
}

func (s *chartService) List(ctx context.Context) ([]models.Chart, error) {
	return s.store.GetAll(ctx)
}

func (s *chartService) Get(ctx context.Context, id string) (*models.Chart, error) {
	return s.store.GetByID(ctx, id)
}

// renderWithTimeout bounds the CPU-bound render so an adversarial dataset
// cannot stall a worker indefinitely. On timeout the render goroutine is
// abandoned; its buffered channel lets it finish without leaking.
func (s *chartService) renderWithTimeout(ctx context.Context, ds *dataset.Dataset, cfg models.ChartConfig) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()

	type result struct {
		img []byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		img, err := render.Render(ds, cfg)
		ch <- result{img: img, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errs.NewRenderError("chart rendering timed out", ctx.Err())
	case r := <-ch:
		return r.img, r.err
	}
}

func applyConfigDefaults(cfg models.ChartConfig) models.ChartConfig {
	if cfg.ColorScheme == "" {
		cfg.ColorScheme = defaultColorScheme
	}
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	return cfg
}
