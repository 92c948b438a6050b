package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

var _ BookingRepository = (*MongoBookingRepo)(nil)

// NewMongoBookingRepo constructs a BookingRepository backed by the bookings collection of db.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection(database.BookingsCollection)}
}

func (r *MongoBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *MongoBookingRepo) GetByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"patient": patient})
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// InsertIfAbsent performs the existence check and the insert as one upsert
// keyed on (treatment, date, patient), so two identical concurrent requests
// cannot both insert.
func (r *MongoBookingRepo) InsertIfAbsent(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := uniquenessFilter(booking)
	candidate := *booking
	candidate.ID = primitive.NewObjectID()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var existing models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$setOnInsert": candidate}, opts).Decode(&existing)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		// Nothing matched, so the upsert inserted the candidate.
		booking.ID = candidate.ID
		return nil, nil
	case mongo.IsDuplicateKeyError(err):
		// Lost an upsert race against the unique index; report the winner.
		if err := r.coll.FindOne(ctx, filter).Decode(&existing); err != nil {
			return nil, fmt.Errorf("failed to load conflicting booking: %w", err)
		}
		return &existing, nil
	case err != nil:
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	return &existing, nil
}

func uniquenessFilter(b *models.Booking) bson.M {
	return bson.M{
		"treatment": b.Treatment,
		"date":      b.Date,
		"patient":   b.Patient,
	}
}
