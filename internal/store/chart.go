package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

type chartStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

func NewChartStore(client *firestore.Client) *chartStore {
	return &chartStore{
		client:     client,
		collection: client.Collection("charts"),
	}
}

// Save inserts the record under its pre-assigned id. Create (not Set)
// guarantees an existing record is never overwritten.
func (s *chartStore) Save(ctx context.Context, c *models.Chart) error {
	_, err := s.collection.Doc(c.ID).Create(ctx, c)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to save chart", err)
	}
	return nil
}

// GetAll returns every stored chart. Decoding through the model strips
// any storage-engine metadata from what callers see.
func (s *chartStore) GetAll(ctx context.Context) ([]models.Chart, error) {
	iter := s.collection.Documents(ctx)
	defer iter.Stop()

	charts := make([]models.Chart, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list charts", err)
		}
		var c models.Chart
		if err := doc.DataTo(&c); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse chart data", err)
		}
		charts = append(charts, c)
	}
	return charts, nil
}

func (s *chartStore) GetByID(ctx context.Context, id string) (*models.Chart, error) {
	doc, err := s.collection.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("Chart not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get chart", err)
	}
	var c models.Chart
	if err := doc.DataTo(&c); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse chart data", err)
	}
	return &c, nil
}
