package busyRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorbase/database"
	"tutorbase/models"
	"tutorbase/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrBusyWindowNotFound is returned when a delete targets a window that does
// not exist (or belongs to another tutor).
var ErrBusyWindowNotFound = errors.New("busy window not found")

// BusyRepository defines data access for external and manual busy windows.
type BusyRepository interface {
	// ListInRange returns the tutor's busy windows intersecting [from, to).
	ListInRange(tutorID string, from, to time.Time) ([]models.BusyWindow, error)
	Create(window *models.BusyWindow) error
	// Delete removes one of the tutor's windows; scoping by tutor keeps one
	// tutor from deleting another's blocks.
	Delete(tutorID, id string) error
	// DeleteEndedBefore prunes windows that ended before the cutoff and
	// returns the number removed.
	DeleteEndedBefore(cutoff time.Time) (int64, error)
}

// MongoBusyRepo implements BusyRepository using MongoDB.
type MongoBusyRepo struct {
	coll *mongo.Collection
}

// NewMongoBusyRepo creates a new instance of BusyRepository using MongoDB.
func NewMongoBusyRepo() BusyRepository {
	coll := database.Database().Collection("busy_windows")
	repo := &MongoBusyRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create busy window indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBusyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tutorId", Value: 1}, {Key: "start", Value: 1}}},
		{Keys: bson.D{{Key: "end", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListInRange returns the tutor's busy windows intersecting [from, to),
// ordered by start time.
func (r *MongoBusyRepo) ListInRange(tutorID string, from, to time.Time) ([]models.BusyWindow, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"tutorId": tutorID,
		"start":   bson.M{"$lt": to},
		"end":     bson.M{"$gt": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list busy windows for tutor %s: %w", tutorID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.BusyWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("failed to decode busy windows: %w", err)
	}
	return windows, nil
}

// Create inserts a new busy window document.
func (r *MongoBusyRepo) Create(window *models.BusyWindow) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, window)
	if err != nil {
		return fmt.Errorf("failed to create busy window: %w", err)
	}
	return nil
}

// Delete removes a tutor's busy window by its ID.
func (r *MongoBusyRepo) Delete(tutorID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "tutorId": tutorID})
	if err != nil {
		return fmt.Errorf("failed to delete busy window %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrBusyWindowNotFound
	}
	return nil
}

// DeleteEndedBefore prunes busy windows that ended before the cutoff.
func (r *MongoBusyRepo) DeleteEndedBefore(cutoff time.Time) (int64, error) {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"end": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to prune busy windows: %w", err)
	}
	return result.DeletedCount, nil
}
