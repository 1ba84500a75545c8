package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

type statusStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

func NewStatusStore(client *firestore.Client) *statusStore {
	return &statusStore{
		client:     client,
		collection: client.Collection("status_checks"),
	}
}

func (s *statusStore) Create(ctx context.Context, sc *models.StatusCheck) error {
	_, err := s.collection.Doc(sc.ID).Create(ctx, sc)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to save status check", err)
	}
	return nil
}

func (s *statusStore) List(ctx context.Context) ([]models.StatusCheck, error) {
	iter := s.collection.Documents(ctx)
	defer iter.Stop()

	checks := make([]models.StatusCheck, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list status checks", err)
		}
		var sc models.StatusCheck
		if err := doc.DataTo(&sc); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse status check data", err)
		}
		checks = append(checks, sc)
	}
	return checks, nil
}
