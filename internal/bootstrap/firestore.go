package bootstrap

import (
	"context"

	"cloud.google.com/go/firestore"
)

// InitFirestore opens the shared client for the chart and status-check
// collections. The client honors FIRESTORE_EMULATOR_HOST, which is how the
// store tests run without real credentials.
func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	return firestore.NewClient(ctx, projectID)
}
