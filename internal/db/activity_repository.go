package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"pulsetrack-backend-go/internal/models"
)

const (
	activitiesCollection = "activities"
	entriesSubcollection = "entries"
)

// firestoreActivityRepository implements the ActivityRepository interface
// using Firestore. Records live under activities/{userID}/entries, so a
// record belongs exclusively to the user whose key it was written under.
type firestoreActivityRepository struct {
	client *firestore.Client
}

// NewFirestoreActivityRepository creates a new instance of firestoreActivityRepository.
func NewFirestoreActivityRepository(client *firestore.Client) ActivityRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ActivityRepository.")
	}
	return &firestoreActivityRepository{client: client}
}

func (r *firestoreActivityRepository) entries(userID string) *firestore.CollectionRef {
	return r.client.Collection(activitiesCollection).Doc(userID).Collection(entriesSubcollection)
}

// Append adds a new activity document with an auto-generated ID. The
// Timestamp field carries the serverTimestamp tag: Firestore replaces it with
// its own commit time, the client never computes it.
func (r *firestoreActivityRepository) Append(ctx context.Context, userID string, activity *models.Activity) (string, error) {
	if userID == "" {
		return "", errors.New("userID cannot be empty for Append operation")
	}
	docRef := r.entries(userID).NewDoc()
	activity.ID = docRef.ID // Set the ID in the model before saving

	if _, err := docRef.Create(ctx, activity); err != nil {
		return "", fmt.Errorf("failed to append activity for user '%s': %w", userID, err)
	}
	return docRef.ID, nil
}

// List returns one snapshot of the user's activity collection. An empty
// collection is not an error; it yields an empty slice.
func (r *firestoreActivityRepository) List(ctx context.Context, userID string) ([]models.Activity, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for List operation")
	}
	docs, err := r.entries(userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list activities for user '%s': %w", userID, err)
	}
	return decodeActivityDocs(docs)
}

// Subscribe opens a Firestore snapshot listener on the user's collection and
// forwards each delivery as a full replacement snapshot. The goroutine and
// the listener stop when ctx is cancelled; there is no other unsubscribe
// path. A decode failure is pushed as an erroring snapshot and ends the
// subscription rather than passing a partially decoded state through.
func (r *firestoreActivityRepository) Subscribe(ctx context.Context, userID string) (<-chan ActivitySnapshot, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for Subscribe operation")
	}

	updates := make(chan ActivitySnapshot, 1)
	snapIter := r.entries(userID).Query.Snapshots(ctx)

	go func() {
		defer close(updates)
		defer snapIter.Stop()

		for {
			qsnap, err := snapIter.Next()
			if err != nil {
				if ctx.Err() != nil {
					return // Cancelled by the caller; not an error.
				}
				updates <- ActivitySnapshot{Err: fmt.Errorf("activity subscription for user '%s' failed: %w", userID, err)}
				return
			}

			docs, err := qsnap.Documents.GetAll()
			if err != nil {
				updates <- ActivitySnapshot{Err: fmt.Errorf("failed to read snapshot for user '%s': %w", userID, err)}
				return
			}

			records, err := decodeActivityDocs(docs)
			if err != nil {
				updates <- ActivitySnapshot{Err: err}
				return
			}

			select {
			case updates <- ActivitySnapshot{Records: records}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

// decodeActivityDocs materializes typed records from raw documents, attaching
// each document ID, and fails closed: one malformed record rejects the whole
// snapshot instead of trusting the store's shape.
func decodeActivityDocs(docs []*firestore.DocumentSnapshot) ([]models.Activity, error) {
	records := make([]models.Activity, 0, len(docs))
	for _, doc := range docs {
		var activity models.Activity
		if err := doc.DataTo(&activity); err != nil {
			return nil, fmt.Errorf("%w: failed to decode document '%s': %v", models.ErrMalformedActivity, doc.Ref.ID, err)
		}
		activity.ID = doc.Ref.ID
		if err := activity.Validate(); err != nil {
			return nil, err
		}
		records = append(records, activity)
	}
	return records, nil
}
