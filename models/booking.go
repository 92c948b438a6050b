package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's reservation of one slot of a treatment on a date.
// (Treatment, Date, Patient) is unique across the bookings collection.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TreatmentID string             `bson:"treatmentId,omitempty" json:"treatmentId,omitempty"`
	Treatment   string             `bson:"treatment" json:"treatment" binding:"required"`
	Date        string             `bson:"date" json:"date" binding:"required"`
	Slot        string             `bson:"slot" json:"slot" binding:"required"`
	Patient     string             `bson:"patient" json:"patient" binding:"required"`
	PatientName string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
}

// BookingInsertResult mirrors the acknowledgement returned to clients after an insert.
type BookingInsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// BookingOutcome is the response body of a booking attempt. Exactly one of
// Result (on success) or Booking (the conflicting record) is set.
type BookingOutcome struct {
	Success bool                 `json:"success"`
	Result  *BookingInsertResult `json:"result,omitempty"`
	Booking *Booking             `json:"booking,omitempty"`
}
