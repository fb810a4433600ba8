package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorbase/database"
	"tutorbase/models"
	"tutorbase/services/scheduling"
	"tutorbase/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrBookingConflict is returned when the requested window was claimed by
// another booking between the availability read and the commit.
var ErrBookingConflict = errors.New("booking window no longer available")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Database().Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create booking indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tutorId", Value: 1}, {Key: "scheduledAt", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// activeInRangeFilter matches non-cancelled bookings for the tutor whose
// [scheduledAt, endAt) window intersects [from, to). The cancelled family is
// excluded by status prefix so new cancellation variants never block slots.
func activeInRangeFilter(tutorID string, from, to time.Time) bson.M {
	return bson.M{
		"tutorId":     tutorID,
		"status":      bson.M{"$not": primitive.Regex{Pattern: "^cancelled", Options: ""}},
		"scheduledAt": bson.M{"$lt": to},
		"endAt":       bson.M{"$gt": from},
	}
}

// ListActiveInRange returns the tutor's non-cancelled bookings intersecting
// [from, to), ordered by start time.
func (r *MongoBookingRepo) ListActiveInRange(tutorID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, activeInRangeFilter(tutorID, from, to), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for tutor %s: %w", tutorID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// checkCommit is the commit-time admission decision: given a transaction-fresh
// read of the tutor's bookings, the slot may be inserted only if the same
// conflict predicate that produced the availability still passes. A writer who
// lost the race gets ErrBookingConflict.
func checkCommit(slot models.BookableSlot, existing []models.Booking, busy []models.BusyWindow, bufferMinutes int) error {
	if scheduling.HasConflict(slot, existing, busy, bufferMinutes) {
		return ErrBookingConflict
	}
	return nil
}

// CommitBooking inserts the booking inside a mongo session transaction. The
// conflict check is re-run against a fresh read of the tutor's bookings so a
// slot that was free when availability was computed cannot be double-booked
// by a racing request.
func (r *MongoBookingRepo) CommitBooking(ctx context.Context, booking *models.Booking, busy []models.BusyWindow, bufferMinutes int) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.EndAt = booking.End()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	slot := models.BookableSlot{
		Start:           booking.ScheduledAt,
		End:             booking.EndAt,
		DurationMinutes: booking.DurationMinutes,
	}
	buffer := time.Duration(bufferMinutes) * time.Minute

	txnFn := func(sc mongo.SessionContext) error {
		// Fresh read inside the transaction: widen by the buffer so bookings
		// whose buffered window reaches into the slot are seen.
		from := slot.Start.Add(-buffer)
		to := slot.End.Add(buffer)

		cursor, err := r.coll.Find(sc, activeInRangeFilter(booking.TutorID, from, to))
		if err != nil {
			return fmt.Errorf("conflict re-check read failed: %w", err)
		}
		var existing []models.Booking
		if err := cursor.All(sc, &existing); err != nil {
			return fmt.Errorf("conflict re-check decode failed: %w", err)
		}

		if err := checkCommit(slot, existing, busy, bufferMinutes); err != nil {
			return err
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return ErrBookingConflict
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}
