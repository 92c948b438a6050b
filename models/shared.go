package models

// WriteResult is the summary of an update or upsert, shaped like the
// acknowledgement document returned by the store.
type WriteResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// ConfirmationPayload is the body of a booking confirmation task.
type ConfirmationPayload struct {
	BookingID string `json:"bookingId"`
	Treatment string `json:"treatment"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Patient   string `json:"patient"`
}
