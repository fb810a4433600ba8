package tutorRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tutorbase/database"
	"tutorbase/models"
	"tutorbase/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoTutorRepo implements TutorRepository using MongoDB with a Redis
// read-through cache in front of profile reads.
type MongoTutorRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoTutorRepo creates a new instance of TutorRepository using MongoDB.
func NewMongoTutorRepo() TutorRepository {
	coll := database.Database().Collection("tutors")
	repo := &MongoTutorRepo{coll: coll, cache: utils.GetCacheClient()}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create tutor indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTutorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func cacheKey(id string) string {
	return utils.TutorCachePrefix + id
}

// GetByID retrieves a tutor profile, serving from Redis when possible.
func (r *MongoTutorRepo) GetByID(id string) (*models.TutorProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if raw, err := r.cache.Get(ctx, cacheKey(id)).Result(); err == nil {
		var cached models.TutorProfile
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return &cached, nil
		}
		// A corrupt entry falls through to Mongo and is rewritten below.
	}

	var tutor models.TutorProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tutor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tutor with id %s: %w", id, err)
	}

	if raw, err := json.Marshal(&tutor); err == nil {
		if err := r.cache.Set(ctx, cacheKey(id), raw, utils.TutorCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache tutor profile",
				zap.String("tutorId", id), zap.Error(err))
		}
	}
	return &tutor, nil
}

// UpdateAvailability replaces the tutor's weekly availability template and
// drops the cached profile so the next read sees the new template.
func (r *MongoTutorRepo) UpdateAvailability(id string, windows []models.WeeklyAvailabilityWindow) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"availability": windows}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for tutor %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tutor with id %s not found", id)
	}
	return r.InvalidateCache(id)
}

// InvalidateCache removes a tutor's cached profile.
func (r *MongoTutorRepo) InvalidateCache(id string) error {
	ctx, cancel := newContext(2 * time.Second)
	defer cancel()

	if err := r.cache.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache for tutor %s: %w", id, err)
	}
	return nil
}
