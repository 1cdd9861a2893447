package entities

import "encoding/json"

// BookingRequest is the inbound booking body, kept as raw fields so that
// presence can be told apart from emptiness and values pass through as sent.
type BookingRequest map[string]json.RawMessage

type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id"`
	Message   string `json:"message"`
}
