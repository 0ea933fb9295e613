package progress

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const progressCollection = "hunt_progress"

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository instantiates a Firestore-backed repository.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

type progressDocument struct {
	Value string `firestore:"value"`
}

func (r *firestoreRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrMissingKey
	}

	snap, err := r.client.Collection(progressCollection).Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}

	var doc progressDocument
	if err := snap.DataTo(&doc); err != nil {
		return "", fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return doc.Value, nil
}

func (r *firestoreRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrMissingKey
	}

	_, err := r.client.Collection(progressCollection).Doc(key).Set(ctx, map[string]any{
		"value":      value,
		"updated_at": firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
